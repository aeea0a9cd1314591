package ethereum

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// NTZSTokenABI covers the subset of the token contract the settlement
// engine interacts with: role gated mint and burn, supply and balance
// reads, pause state and the Transfer event.
const NTZSTokenABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"paused","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"MINTER_ROLE","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"BURNER_ROLE","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

// TokenTransfer represents a Transfer event raised by the token contract.
type TokenTransfer struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Raw   types.Log
}

type TokenContract interface {
	Address() common.Address
	Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error)
	Burn(opts *bind.TransactOpts, from common.Address, amount *big.Int) (*types.Transaction, error)
	Transfer(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error)
	TransferFrom(opts *bind.TransactOpts, from common.Address, to common.Address, amount *big.Int) (*types.Transaction, error)
	BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error)
	TotalSupply(opts *bind.CallOpts) (*big.Int, error)
	Paused(opts *bind.CallOpts) (bool, error)
	HasRole(opts *bind.CallOpts, role [32]byte, account common.Address) (bool, error)
	MinterRole(opts *bind.CallOpts) ([32]byte, error)
	BurnerRole(opts *bind.CallOpts) ([32]byte, error)
	ParseTransfer(log types.Log) (*TokenTransfer, error)
}

type tokenContract struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

func NewTokenContract(address common.Address, backend bind.ContractBackend) (TokenContract, error) {
	parsed, err := abi.JSON(strings.NewReader(NTZSTokenABI))
	if err != nil {
		return nil, err
	}
	return &tokenContract{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

func (t *tokenContract) Address() common.Address {
	return t.address
}

func (t *tokenContract) Mint(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "mint", to, amount)
}

func (t *tokenContract) Burn(opts *bind.TransactOpts, from common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "burn", from, amount)
}

func (t *tokenContract) Transfer(opts *bind.TransactOpts, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transfer", to, amount)
}

func (t *tokenContract) TransferFrom(opts *bind.TransactOpts, from common.Address, to common.Address, amount *big.Int) (*types.Transaction, error) {
	return t.contract.Transact(opts, "transferFrom", from, to, amount)
}

func (t *tokenContract) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (t *tokenContract) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "totalSupply")
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (t *tokenContract) Paused(opts *bind.CallOpts) (bool, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "paused")
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (t *tokenContract) HasRole(opts *bind.CallOpts, role [32]byte, account common.Address) (bool, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "hasRole", role, account)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (t *tokenContract) MinterRole(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "MINTER_ROLE")
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

func (t *tokenContract) BurnerRole(opts *bind.CallOpts) ([32]byte, error) {
	var out []interface{}
	err := t.contract.Call(opts, &out, "BURNER_ROLE")
	if err != nil {
		return [32]byte{}, err
	}
	return *abi.ConvertType(out[0], new([32]byte)).(*[32]byte), nil
}

func (t *tokenContract) ParseTransfer(log types.Log) (*TokenTransfer, error) {
	event := new(TokenTransfer)
	if len(log.Topics) == 0 || log.Topics[0] != t.abi.Events["Transfer"].ID {
		return nil, errors.New("log is not a Transfer event")
	}
	if err := t.contract.UnpackLog(event, "Transfer", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}
