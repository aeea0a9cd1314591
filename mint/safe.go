package mint

import (
	"sync"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	SafeMonitorName = "SAFE MONITOR"
)

// SafeMintPayload is the transaction the treasury Safe signers execute for a
// high-value mint.
type SafeMintPayload struct {
	Safe  string `json:"safe"`
	To    string `json:"to"`
	Value string `json:"value"`
	Data  string `json:"data"`
}

// BuildSafeMintPayload builds the multisig call for a deposit awaiting a Safe
// mint.
func BuildSafeMintPayload(deposit *models.Deposit) (*SafeMintPayload, error) {
	if deposit.Status != models.DepositStatusMintRequiresSafe {
		return nil, common.NewStateConflictError("deposit does not require a safe mint")
	}

	data, err := ethereum.PackMintCall(
		ethCommon.HexToAddress(deposit.WalletAddress),
		common.AmountToWei(deposit.Amount),
	)
	if err != nil {
		return nil, err
	}

	return &SafeMintPayload{
		Safe:  app.Config.Ethereum.SafeAddress,
		To:    app.Config.Ethereum.TokenAddress,
		Value: "0",
		Data:  hexutil.Encode(data),
	}, nil
}

// RecordSafeMintTx attaches the executed Safe transaction hash to a deposit
// so the monitor can verify it.
func RecordSafeMintTx(depositID string, txHash string) error {
	id, err := primitive.ObjectIDFromHex(depositID)
	if err != nil {
		return common.NewValidationError("invalid deposit id")
	}
	if txHash == "" {
		return common.NewValidationError("tx hash is required")
	}

	var updated models.Deposit
	err = app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": id, "status": models.DepositStatusMintRequiresSafe, "mint_tx_hash": ""},
		bson.M{"$set": bson.M{"mint_tx_hash": txHash, "updated_at": time.Now()}},
		nil,
		&updated,
	)
	if err == mongo.ErrNoDocuments {
		return common.NewStateConflictError("deposit is not awaiting a safe mint")
	}
	if err != nil {
		return err
	}

	app.RecordAudit("safe_mint_recorded", "deposit", depositID, map[string]interface{}{
		"tx_hash": txHash,
	})
	return nil
}

type SafeMonitorRunner struct {
	client        ethereum.EthereumClient
	token         ethereum.TokenContract
	lastDepositID string
}

func (x *SafeMonitorRunner) Run() {
	x.CheckSafeMints()
}

func (x *SafeMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastDepositID,
	}
}

// HandleDeposit verifies the recorded Safe transaction actually minted the
// expected amount to the deposit wallet before finalizing.
func (x *SafeMonitorRunner) HandleDeposit(deposit *models.Deposit) bool {
	receipt, err := x.client.GetTransactionReceipt(deposit.MintTxHash)
	if err != nil {
		// not yet mined, check again next tick
		log.Debug("[SAFE] No receipt yet for deposit ", deposit.Id.Hex(), ": ", err)
		return false
	}

	blockNumber, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error("[SAFE] Error fetching block number: ", err)
		return false
	}
	confirmations := app.Config.Ethereum.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}
	if int64(blockNumber)-receipt.BlockNumber.Int64()+1 < confirmations {
		return false
	}

	err = ethereum.VerifyMintReceipt(x.token, receipt,
		ethCommon.HexToAddress(deposit.WalletAddress),
		common.AmountToWei(deposit.Amount))
	if err != nil {
		log.Error("[SAFE] Rejected safe mint for deposit ", deposit.Id.Hex(), ": ", err)
		updateErr := app.DB.UpdateOne(models.CollectionDeposits,
			bson.M{"_id": deposit.Id, "status": models.DepositStatusMintRequiresSafe},
			bson.M{"$set": bson.M{
				"status":     models.DepositStatusMintFailed,
				"error":      err.Error(),
				"updated_at": time.Now(),
			}})
		if updateErr != nil {
			log.Error("[SAFE] Error marking deposit failed ", deposit.Id.Hex(), ": ", updateErr)
		}
		app.RecordAudit("safe_mint_rejected", "deposit", deposit.Id.Hex(), map[string]interface{}{
			"tx_hash": deposit.MintTxHash,
			"error":   err.Error(),
		})
		return false
	}

	var finalized models.Deposit
	err = app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusMintRequiresSafe},
		bson.M{"$set": bson.M{"status": models.DepositStatusMinted, "updated_at": time.Now()}},
		nil,
		&finalized,
	)
	if err == mongo.ErrNoDocuments {
		log.Debug("[SAFE] Deposit ", deposit.Id.Hex(), " already finalized")
		return false
	}
	if err != nil {
		log.Error("[SAFE] Error finalizing deposit ", deposit.Id.Hex(), ": ", err)
		return false
	}

	RecordIssued(issuanceDay(), deposit.Amount)

	log.Info("[SAFE] Verified safe mint for deposit ", deposit.Id.Hex(), ", tx: ", deposit.MintTxHash)

	err = webhook.QueueEvent(deposit.PartnerID, models.EventDepositMinted, map[string]interface{}{
		"deposit_id":     deposit.Id.Hex(),
		"user_id":        deposit.UserID,
		"amount":         deposit.Amount,
		"wallet_address": deposit.WalletAddress,
		"tx_hash":        deposit.MintTxHash,
	})
	if err != nil {
		log.Error("[SAFE] Error queueing minted event for deposit ", deposit.Id.Hex(), ": ", err)
	}

	app.RecordAudit("mint_completed", "deposit", deposit.Id.Hex(), map[string]interface{}{
		"amount":  deposit.Amount,
		"tx_hash": deposit.MintTxHash,
		"safe":    true,
	})

	return true
}

func (x *SafeMonitorRunner) CheckSafeMints() {
	deposits := []models.Deposit{}
	err := app.DB.FindManyWithOptions(models.CollectionDeposits,
		bson.M{"status": models.DepositStatusMintRequiresSafe, "mint_tx_hash": bson.M{"$ne": ""}},
		bson.M{"created_at": 1},
		50,
		&deposits,
	)
	if err != nil {
		log.Error("[SAFE] Error fetching safe mints: ", err)
		return
	}

	for i := range deposits {
		deposit := deposits[i]
		x.lastDepositID = deposit.Id.Hex()
		x.HandleDeposit(&deposit)
	}
}

func NewSafeMonitor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.SafeMonitor.Enabled {
		log.Debug("[SAFE] Monitor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[SAFE] Initializing monitor")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[SAFE] Error initializing ethereum client: ", err)
	}

	token, err := ethereum.NewTokenContract(ethCommon.HexToAddress(app.Config.Ethereum.TokenAddress), client.GetClient())
	if err != nil {
		log.Fatal("[SAFE] Error initializing token contract: ", err)
	}

	x := &SafeMonitorRunner{
		client: client,
		token:  token,
	}

	log.Info("[SAFE] Initialized monitor")

	return app.NewRunnerService(SafeMonitorName, x, wg, time.Duration(app.Config.SafeMonitor.IntervalMillis)*time.Millisecond)
}
