package ethereum

import (
	"math/big"
	"testing"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/stretchr/testify/assert"
)

func newMintReceipt(to ethCommon.Address, value *big.Int) *types.Receipt {
	txLog := newTransferLog(ethCommon.Address{}, to, value)
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs:   []*types.Log{&txLog},
	}
}

func TestVerifyMintReceipt(t *testing.T) {
	contract := newTestTokenContract(t)

	recipient := ethCommon.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	amount := big.NewInt(1e18)

	t.Run("valid mint", func(t *testing.T) {
		err := VerifyMintReceipt(contract, newMintReceipt(recipient, amount), recipient, amount)

		assert.Nil(t, err)
	})

	t.Run("reverted transaction", func(t *testing.T) {
		receipt := newMintReceipt(recipient, amount)
		receipt.Status = types.ReceiptStatusFailed

		err := VerifyMintReceipt(contract, receipt, recipient, amount)

		assert.NotNil(t, err)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("recipient mismatch", func(t *testing.T) {
		other := ethCommon.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

		err := VerifyMintReceipt(contract, newMintReceipt(other, amount), recipient, amount)

		assert.NotNil(t, err)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("amount mismatch", func(t *testing.T) {
		err := VerifyMintReceipt(contract, newMintReceipt(recipient, big.NewInt(2e18)), recipient, amount)

		assert.NotNil(t, err)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("transfer not a mint", func(t *testing.T) {
		txLog := newTransferLog(recipient, recipient, amount)
		receipt := &types.Receipt{
			Status: types.ReceiptStatusSuccessful,
			Logs:   []*types.Log{&txLog},
		}

		err := VerifyMintReceipt(contract, receipt, recipient, amount)

		assert.NotNil(t, err)
	})

	t.Run("log from another contract", func(t *testing.T) {
		txLog := newTransferLog(ethCommon.Address{}, recipient, amount)
		txLog.Address = ethCommon.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
		receipt := &types.Receipt{
			Status: types.ReceiptStatusSuccessful,
			Logs:   []*types.Log{&txLog},
		}

		err := VerifyMintReceipt(contract, receipt, recipient, amount)

		assert.NotNil(t, err)
	})

	t.Run("no logs", func(t *testing.T) {
		receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

		err := VerifyMintReceipt(contract, receipt, recipient, amount)

		assert.NotNil(t, err)
	})
}
