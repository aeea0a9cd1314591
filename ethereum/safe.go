package ethereum

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/common"
)

var zeroAddress = ethCommon.Address{}

// PackMintCall encodes a mint(address,uint256) call for execution through an
// external multisig.
func PackMintCall(to ethCommon.Address, amount *big.Int) ([]byte, error) {
	parsed, err := abi.JSON(strings.NewReader(NTZSTokenABI))
	if err != nil {
		return nil, err
	}
	return parsed.Pack("mint", to, amount)
}

// FindMintTransfer scans a receipt for a Transfer emitted by the token
// contract from the zero address, i.e. a mint.
func FindMintTransfer(contract TokenContract, receipt *types.Receipt) (*TokenTransfer, error) {
	for _, txLog := range receipt.Logs {
		if txLog.Address != contract.Address() {
			continue
		}
		transfer, err := contract.ParseTransfer(*txLog)
		if err != nil {
			continue
		}
		if transfer.From == zeroAddress {
			return transfer, nil
		}
	}
	return nil, common.NewValidationError("no mint transfer found in receipt")
}

// VerifyMintReceipt checks that a receipt represents a successful mint of
// exactly amount to the expected recipient. Used to confirm mints executed
// out of band through the treasury Safe.
func VerifyMintReceipt(contract TokenContract, receipt *types.Receipt, to ethCommon.Address, amount *big.Int) error {
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.NewValidationError("transaction reverted")
	}

	transfer, err := FindMintTransfer(contract, receipt)
	if err != nil {
		return err
	}

	if transfer.To != to {
		return common.NewValidationError("mint recipient mismatch: expected " + to.Hex() + ", got " + transfer.To.Hex())
	}

	if transfer.Value.Cmp(amount) != 0 {
		return common.NewValidationError("mint amount mismatch: expected " + amount.String() + ", got " + transfer.Value.String())
	}

	return nil
}
