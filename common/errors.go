package common

import (
	"errors"
	"fmt"
)

// ErrorKind tells callers whether an operation can be retried, must be
// surfaced to the caller, or needs operator intervention.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindStateConflict ErrorKind = "state_conflict"
	KindTransient     ErrorKind = "transient"
	KindPermanent     ErrorKind = "permanent"
)

// codes for permanent on-chain policy failures
const (
	CodeContractPaused      = "contract_paused"
	CodeMissingRole         = "missing_role"
	CodeInsufficientBalance = "insufficient_balance"
	CodeGasStarved          = "gas_starved"
)

type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewStateConflictError(message string) *Error {
	return &Error{Kind: KindStateConflict, Message: message}
}

func NewTransientError(message string, cause error) *Error {
	return &Error{Kind: KindTransient, Message: message, Cause: cause}
}

func NewPermanentError(code string, message string) *Error {
	return &Error{Kind: KindPermanent, Code: code, Message: message}
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsValidation(err error) bool {
	return IsKind(err, KindValidation)
}

func IsStateConflict(err error) bool {
	return IsKind(err, KindStateConflict)
}

func IsTransient(err error) bool {
	return IsKind(err, KindTransient)
}

func IsPermanent(err error) bool {
	return IsKind(err, KindPermanent)
}

// ErrorCode returns the policy code of a permanent error, or "".
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsGasStarved reports whether settlement should be put on hold because the
// minter account cannot pay for gas.
func IsGasStarved(err error) bool {
	return ErrorCode(err) == CodeGasStarved
}
