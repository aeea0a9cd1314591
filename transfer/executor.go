package transfer

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/wallet"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	ExecutorName = "TRANSFER EXECUTOR"
)

type ExecutorRunner struct {
	client         ethereum.EthereumClient
	token          ethereum.TokenContract
	lastTransferID string
}

func (x *ExecutorRunner) Run() {
	x.ProcessPending()
}

func (x *ExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastTransferID,
	}
}

// ClaimTransfer atomically claims the oldest pending transfer.
func (x *ExecutorRunner) ClaimTransfer() *models.Transfer {
	now := time.Now()
	transfer := &models.Transfer{}
	err := app.DB.FindOneAndUpdate(models.CollectionTransfers,
		bson.M{"status": models.TransferStatusPending},
		bson.M{"$set": bson.M{
			"status":     models.TransferStatusProcessing,
			"claimed_at": now,
			"updated_at": now,
		}},
		bson.M{"created_at": 1},
		transfer,
	)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Error("[TRANSFER] Error claiming transfer: ", err)
		}
		return nil
	}
	return transfer
}

func (x *ExecutorRunner) markFailed(transfer *models.Transfer, failure error) {
	log.Error("[TRANSFER] Transfer failed for ", transfer.Id.Hex(), ": ", failure)

	err := app.DB.UpdateOne(models.CollectionTransfers,
		bson.M{"_id": transfer.Id, "status": models.TransferStatusProcessing},
		bson.M{"$set": bson.M{
			"status":     models.TransferStatusFailed,
			"error":      failure.Error(),
			"updated_at": time.Now(),
		}})
	if err != nil {
		log.Error("[TRANSFER] Error marking transfer failed ", transfer.Id.Hex(), ": ", err)
	}

	app.RecordAudit("transfer_failed", "transfer", transfer.Id.Hex(), map[string]interface{}{
		"error": failure.Error(),
	})
}

// senderTransactor derives the sender's signing key from the partner seed.
// The key lives only for the duration of the call.
func (x *ExecutorRunner) senderTransactor(transfer *models.Transfer) (*bind.TransactOpts, error) {
	partnerID, err := primitive.ObjectIDFromHex(transfer.PartnerID)
	if err != nil {
		return nil, common.NewValidationError("invalid partner id")
	}

	var partner models.Partner
	if err := app.DB.FindOne(models.CollectionPartners, bson.M{"_id": partnerID}, &partner); err != nil {
		return nil, err
	}

	var fromWallet models.Wallet
	err = app.DB.FindOne(models.CollectionWallets,
		bson.M{"partner_id": transfer.PartnerID, "user_id": transfer.FromUserID}, &fromWallet)
	if err != nil {
		return nil, err
	}

	key, err := wallet.DerivePrivateKey(&partner, fromWallet.DerivationIndex)
	if err != nil {
		return nil, err
	}

	opts, sender, err := ethereum.NewTransactorFromKey(key)
	if err != nil {
		return nil, err
	}
	if sender.Hex() != ethCommon.HexToAddress(transfer.FromAddress).Hex() {
		return nil, common.NewPermanentError("", "derived sender does not match the transfer source")
	}
	return opts, nil
}

// HandleTransfer signs and submits a user to user transfer. Returns true when
// the transfer confirmed.
func (x *ExecutorRunner) HandleTransfer(transfer *models.Transfer) bool {
	amount := common.AmountToWei(transfer.Amount)

	callOpts, cancel := ethereum.NewCallOpts()
	balance, err := x.token.BalanceOf(callOpts, ethCommon.HexToAddress(transfer.FromAddress))
	cancel()
	if err != nil {
		x.markFailed(transfer, common.NewTransientError("error checking token balance", err))
		return false
	}
	if balance.Cmp(amount) < 0 {
		x.markFailed(transfer, common.NewPermanentError(common.CodeInsufficientBalance, "sender balance is below the transfer amount"))
		return false
	}

	opts, err := x.senderTransactor(transfer)
	if err != nil {
		x.markFailed(transfer, err)
		return false
	}

	tx, err := x.token.Transfer(opts, ethCommon.HexToAddress(transfer.ToAddress), amount)
	if err != nil {
		x.markFailed(transfer, ethereum.ClassifyTxError(err))
		return false
	}

	txHash := tx.Hash().Hex()
	log.Info("[TRANSFER] Submitted transfer ", transfer.Id.Hex(), ", tx: ", txHash)

	err = app.DB.UpdateOne(models.CollectionTransfers,
		bson.M{"_id": transfer.Id},
		bson.M{"$set": bson.M{"tx_hash": txHash, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[TRANSFER] Error persisting tx hash for transfer ", transfer.Id.Hex(), ": ", err)
	}

	receipt, err := ethereum.WaitForReceipt(x.client, txHash)
	if err != nil {
		log.Error("[TRANSFER] Error waiting for receipt of transfer ", transfer.Id.Hex(), ": ", err)
		return false
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		x.markFailed(transfer, common.NewPermanentError("", "transfer transaction reverted: "+txHash))
		return false
	}

	err = app.DB.UpdateOne(models.CollectionTransfers,
		bson.M{"_id": transfer.Id, "status": models.TransferStatusProcessing},
		bson.M{"$set": bson.M{"status": models.TransferStatusCompleted, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[TRANSFER] Error finalizing transfer ", transfer.Id.Hex(), ": ", err)
		return false
	}

	log.Info("[TRANSFER] Completed transfer ", transfer.Id.Hex())

	err = webhook.QueueEvent(transfer.PartnerID, models.EventTransferCompleted, map[string]interface{}{
		"transfer_id":  transfer.Id.Hex(),
		"from_user_id": transfer.FromUserID,
		"to_user_id":   transfer.ToUserID,
		"amount":       transfer.Amount,
		"tx_hash":      txHash,
	})
	if err != nil {
		log.Error("[TRANSFER] Error queueing completed event for transfer ", transfer.Id.Hex(), ": ", err)
	}

	app.RecordAudit("transfer_completed", "transfer", transfer.Id.Hex(), map[string]interface{}{
		"amount":  transfer.Amount,
		"tx_hash": txHash,
	})

	return true
}

func (x *ExecutorRunner) ProcessPending() {
	for {
		transfer := x.ClaimTransfer()
		if transfer == nil {
			return
		}
		x.lastTransferID = transfer.Id.Hex()
		x.HandleTransfer(transfer)
	}
}

func NewExecutor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.TransferExecutor.Enabled {
		log.Debug("[TRANSFER] Executor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[TRANSFER] Initializing executor")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[TRANSFER] Error initializing ethereum client: ", err)
	}

	token, err := ethereum.NewTokenContract(ethCommon.HexToAddress(app.Config.Ethereum.TokenAddress), client.GetClient())
	if err != nil {
		log.Fatal("[TRANSFER] Error initializing token contract: ", err)
	}

	x := &ExecutorRunner{
		client: client,
		token:  token,
	}

	log.Info("[TRANSFER] Initialized executor")

	return app.NewRunnerService(ExecutorName, x, wg, time.Duration(app.Config.TransferExecutor.IntervalMillis)*time.Millisecond)
}
