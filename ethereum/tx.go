package ethereum

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
)

const (
	receiptPollInterval = 2 * time.Second
	receiptPollAttempts = 60
)

// NewCallOpts returns read call options bound to the configured RPC timeout.
// The returned cancel func must be deferred by the caller.
func NewCallOpts() (*bind.CallOpts, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(app.Config.Ethereum.RPCTimeoutMillis)*time.Millisecond)
	return &bind.CallOpts{Context: ctx, Pending: false}, cancel
}

// NewTransactor builds signing transact options for the given hex private key
// on the configured chain.
func NewTransactor(privateKeyHex string) (*bind.TransactOpts, ethCommon.Address, error) {
	privateKey, err := ethCrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, ethCommon.Address{}, err
	}
	return NewTransactorFromKey(privateKey)
}

// NewTransactorFromKey is NewTransactor for an already parsed key, used with
// keys derived from a partner seed.
func NewTransactorFromKey(privateKey *ecdsa.PrivateKey) (*bind.TransactOpts, ethCommon.Address, error) {
	chainID, ok := new(big.Int).SetString(app.Config.Ethereum.ChainID, 10)
	if !ok {
		return nil, ethCommon.Address{}, common.NewValidationError("invalid chain id: " + app.Config.Ethereum.ChainID)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, ethCommon.Address{}, err
	}

	return opts, ethCrypto.PubkeyToAddress(privateKey.PublicKey), nil
}

// WaitForReceipt polls until the transaction is mined and has the configured
// number of confirmations.
func WaitForReceipt(client EthereumClient, txHash string) (*types.Receipt, error) {
	confirmations := app.Config.Ethereum.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}

	var lastErr error
	for i := 0; i < receiptPollAttempts; i++ {
		if i > 0 {
			time.Sleep(receiptPollInterval)
		}

		receipt, err := client.GetTransactionReceipt(txHash)
		if err != nil {
			lastErr = err
			continue
		}

		blockNumber, err := client.GetBlockNumber()
		if err != nil {
			lastErr = err
			continue
		}

		confirmed := int64(blockNumber) - receipt.BlockNumber.Int64() + 1
		if confirmed < confirmations {
			lastErr = nil
			continue
		}

		return receipt, nil
	}

	return nil, common.NewTransientError("timed out waiting for receipt of "+txHash, lastErr)
}

// ClassifyTxError maps node and contract errors onto settlement error kinds so
// executors know whether to retry, hold, or fail a job.
func ClassifyTxError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "paused"), strings.Contains(msg, "enforcedpause"):
		return common.NewPermanentError(common.CodeContractPaused, err.Error())
	case strings.Contains(msg, "missing role"), strings.Contains(msg, "accesscontrol"):
		return common.NewPermanentError(common.CodeMissingRole, err.Error())
	case strings.Contains(msg, "insufficient funds"):
		return &common.Error{Kind: common.KindTransient, Code: common.CodeGasStarved, Message: err.Error(), Cause: err}
	case strings.Contains(msg, "burn amount exceeds balance"), strings.Contains(msg, "transfer amount exceeds balance"):
		return common.NewPermanentError(common.CodeInsufficientBalance, err.Error())
	case strings.Contains(msg, "nonce too low"), strings.Contains(msg, "replacement transaction underpriced"),
		strings.Contains(msg, "connection refused"), strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return common.NewTransientError(err.Error(), err)
	case strings.Contains(msg, "execution reverted"):
		return common.NewPermanentError("", err.Error())
	}

	return common.NewTransientError(err.Error(), err)
}
