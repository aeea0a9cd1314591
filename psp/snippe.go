package psp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"

	log "github.com/sirupsen/logrus"
)

// Collection and payout channels supported by Snippe.
const (
	ChannelMobile = "mobile"
	ChannelCard   = "card"
)

// Snippe-side terminal states for payments and payouts.
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
	PaymentStatusExpired   = "expired"
	PaymentStatusVoided    = "voided"

	PayoutStatusCompleted = "completed"
	PayoutStatusPending   = "pending"
	PayoutStatusFailed    = "failed"
	PayoutStatusReversed  = "reversed"
)

type PaymentRequest struct {
	Amount     int64
	Phone      string
	Email      string
	Firstname  string
	Lastname   string
	WebhookURL string
	Metadata   map[string]interface{}
}

type PaymentResult struct {
	Reference string
}

type PaymentStatus struct {
	Status      string
	Amount      int64
	CompletedAt string
}

type PayoutRequest struct {
	Amount     int64
	Phone      string
	Name       string
	Narration  string
	WebhookURL string
	Metadata   map[string]interface{}
}

type PayoutResult struct {
	Reference         string
	ExternalReference string
	Fee               int64
	Total             int64
}

type PayoutStatus struct {
	Status        string
	FailureReason string
}

type SnippeClient interface {
	InitiatePayment(request PaymentRequest) (*PaymentResult, error)
	GetPaymentStatus(reference string) (*PaymentStatus, error)
	SendPayout(request PayoutRequest) (*PayoutResult, error)
	GetPayoutStatus(reference string) (*PayoutStatus, error)
	GetPayoutFee(amount int64) (*PayoutResult, error)
}

type snippeClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient() SnippeClient {
	return &snippeClient{
		baseURL: strings.TrimSuffix(app.Config.Snippe.BaseURL, "/"),
		apiKey:  app.Config.Snippe.APIKey,
		client: &http.Client{
			Timeout: time.Duration(app.Config.Snippe.TimeoutMillis) * time.Millisecond,
		},
	}
}

type snippeAmount struct {
	Value int64 `json:"value"`
}

type snippeEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		Reference         string        `json:"reference"`
		ExternalReference string        `json:"external_reference"`
		Status            string        `json:"status"`
		Amount            *snippeAmount `json:"amount"`
		Fees              *snippeAmount `json:"fees"`
		Total             *snippeAmount `json:"total"`
		CompletedAt       string        `json:"completed_at"`
		FailureReason     string        `json:"failure_reason"`
	} `json:"data"`
}

func (c *snippeClient) do(method string, path string, body interface{}) (*snippeEnvelope, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, common.NewTransientError("snippe request failed", err)
	}
	defer res.Body.Close()

	var envelope snippeEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, common.NewTransientError("snippe response decode failed", err)
	}

	return &envelope, nil
}

func (e *snippeEnvelope) err(fallback string) error {
	if e.Message != "" {
		return errors.New(e.Message)
	}
	return errors.New(fallback)
}

// InitiatePayment starts a mobile money collection for a deposit.
func (c *snippeClient) InitiatePayment(request PaymentRequest) (*PaymentResult, error) {
	firstname := request.Firstname
	if firstname == "" {
		firstname = "nTZS"
	}
	lastname := request.Lastname
	if lastname == "" {
		lastname = "User"
	}

	body := map[string]interface{}{
		"payment_type": ChannelMobile,
		"details": map[string]interface{}{
			"amount":   request.Amount,
			"currency": "TZS",
		},
		"phone_number": common.NormalizePhone(request.Phone),
		"customer": map[string]interface{}{
			"firstname": firstname,
			"lastname":  lastname,
			"email":     request.Email,
		},
		"metadata": request.Metadata,
	}
	if strings.HasPrefix(request.WebhookURL, "https://") {
		body["webhook_url"] = request.WebhookURL
	}

	envelope, err := c.do(http.MethodPost, "/v1/payments", body)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "success" || envelope.Data == nil || envelope.Data.Reference == "" {
		log.Error("[SNIPPE] Payment initiation failed: ", envelope.Message)
		return nil, envelope.err("payment initiation failed")
	}

	log.Info("[SNIPPE] Payment initiated: ", envelope.Data.Reference)

	return &PaymentResult{Reference: envelope.Data.Reference}, nil
}

// GetPaymentStatus checks a collection by its Snippe reference.
func (c *snippeClient) GetPaymentStatus(reference string) (*PaymentStatus, error) {
	envelope, err := c.do(http.MethodGet, "/v1/payments/"+reference, nil)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "success" || envelope.Data == nil {
		return &PaymentStatus{Status: PaymentStatusPending}, nil
	}

	status := &PaymentStatus{
		Status:      envelope.Data.Status,
		CompletedAt: envelope.Data.CompletedAt,
	}
	if envelope.Data.Amount != nil {
		status.Amount = envelope.Data.Amount.Value
	}
	return status, nil
}

// SendPayout disburses a withdrawal to a mobile money account.
func (c *snippeClient) SendPayout(request PayoutRequest) (*PayoutResult, error) {
	narration := request.Narration
	if narration == "" {
		narration = "nTZS withdrawal"
	}
	name := request.Name
	if name == "" {
		name = "nTZS User"
	}

	body := map[string]interface{}{
		"amount":          request.Amount,
		"channel":         ChannelMobile,
		"recipient_phone": common.NormalizePhone(request.Phone),
		"recipient_name":  name,
		"narration":       narration,
		"metadata":        request.Metadata,
	}
	if strings.HasPrefix(request.WebhookURL, "https://") {
		body["webhook_url"] = request.WebhookURL
	}

	envelope, err := c.do(http.MethodPost, "/v1/payouts/send", body)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "success" || envelope.Data == nil || envelope.Data.Reference == "" {
		log.Error("[SNIPPE] Payout failed: ", envelope.Message)
		return nil, envelope.err("payout initiation failed")
	}

	result := &PayoutResult{
		Reference:         envelope.Data.Reference,
		ExternalReference: envelope.Data.ExternalReference,
	}
	if envelope.Data.Fees != nil {
		result.Fee = envelope.Data.Fees.Value
	}
	if envelope.Data.Total != nil {
		result.Total = envelope.Data.Total.Value
	}

	log.Info("[SNIPPE] Payout initiated: ", result.Reference)

	return result, nil
}

// GetPayoutStatus checks a disbursement by its Snippe reference.
func (c *snippeClient) GetPayoutStatus(reference string) (*PayoutStatus, error) {
	envelope, err := c.do(http.MethodGet, "/v1/payouts/"+reference, nil)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "success" || envelope.Data == nil {
		return &PayoutStatus{Status: PayoutStatusPending}, nil
	}

	return &PayoutStatus{
		Status:        envelope.Data.Status,
		FailureReason: envelope.Data.FailureReason,
	}, nil
}

// GetPayoutFee quotes the disbursement fee before sending.
func (c *snippeClient) GetPayoutFee(amount int64) (*PayoutResult, error) {
	envelope, err := c.do(http.MethodGet, fmt.Sprintf("/v1/payouts/fee?amount=%d", amount), nil)
	if err != nil {
		return nil, err
	}

	if envelope.Status != "success" || envelope.Data == nil {
		return nil, envelope.err("failed to calculate payout fee")
	}

	result := &PayoutResult{Total: amount}
	if envelope.Data.Fees != nil {
		result.Fee = envelope.Data.Fees.Value
	}
	if envelope.Data.Total != nil {
		result.Total = envelope.Data.Total.Value
	}
	return result, nil
}
