package mint

import (
	"sync"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	ExecutorName = "MINT EXECUTOR"
)

type ExecutorRunner struct {
	client        ethereum.EthereumClient
	token         ethereum.TokenContract
	minterAddress ethCommon.Address
	lastDepositID string
}

func (x *ExecutorRunner) Run() {
	x.ReclaimStale()
	x.ProcessPending()
}

func (x *ExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastDepositID,
	}
}

// ReclaimStale resets claims whose worker died before submitting a
// transaction. Claims that already carry a tx hash are left alone.
func (x *ExecutorRunner) ReclaimStale() {
	window := app.Config.Settlement.ReclaimAfterMillis
	if window <= 0 {
		return
	}

	cutoff := time.Now().Add(-time.Duration(window) * time.Millisecond)
	for {
		var reclaimed models.Deposit
		err := app.DB.FindOneAndUpdate(models.CollectionDeposits,
			bson.M{
				"status":       models.DepositStatusMintProcessing,
				"mint_tx_hash": "",
				"claimed_at":   bson.M{"$lt": cutoff},
			},
			bson.M{"$set": bson.M{
				"status":     models.DepositStatusMintPending,
				"claimed_at": nil,
				"updated_at": time.Now(),
			}},
			bson.M{"claimed_at": 1},
			&reclaimed,
		)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				log.Error("[MINT] Error reclaiming stale deposits: ", err)
			}
			return
		}
		log.Warn("[MINT] Reclaimed stale deposit: ", reclaimed.Id.Hex())
	}
}

// ClaimDeposit atomically claims the oldest mint_pending deposit.
func (x *ExecutorRunner) ClaimDeposit() *models.Deposit {
	now := time.Now()
	deposit := &models.Deposit{}
	err := app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"status": models.DepositStatusMintPending},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusMintProcessing,
			"claimed_at": now,
			"updated_at": now,
		}},
		bson.M{"created_at": 1},
		deposit,
	)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Error("[MINT] Error claiming deposit: ", err)
		}
		return nil
	}
	return deposit
}

func (x *ExecutorRunner) releaseClaim(deposit *models.Deposit) {
	err := app.DB.UpdateOne(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusMintProcessing},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusMintPending,
			"claimed_at": nil,
			"updated_at": time.Now(),
		}})
	if err != nil {
		log.Error("[MINT] Error releasing deposit ", deposit.Id.Hex(), ": ", err)
	}
}

func (x *ExecutorRunner) markFailed(deposit *models.Deposit, failure error) {
	log.Error("[MINT] Mint failed for deposit ", deposit.Id.Hex(), ": ", failure)

	err := app.DB.UpdateOne(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusMintProcessing},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusMintFailed,
			"error":      failure.Error(),
			"updated_at": time.Now(),
		}})
	if err != nil {
		log.Error("[MINT] Error marking deposit failed ", deposit.Id.Hex(), ": ", err)
	}

	app.RecordAudit("mint_failed", "deposit", deposit.Id.Hex(), map[string]interface{}{
		"error": failure.Error(),
		"code":  common.ErrorCode(failure),
	})
}

// preflight checks the contract and minter can actually mint before any
// transaction is submitted.
func (x *ExecutorRunner) preflight() error {
	opts, cancel := ethereum.NewCallOpts()
	defer cancel()

	paused, err := x.token.Paused(opts)
	if err != nil {
		return common.NewTransientError("error checking pause state", err)
	}
	if paused {
		return common.NewPermanentError(common.CodeContractPaused, "token contract is paused")
	}

	role, err := x.token.MinterRole(opts)
	if err != nil {
		return common.NewTransientError("error fetching minter role", err)
	}
	hasRole, err := x.token.HasRole(opts, role, x.minterAddress)
	if err != nil {
		return common.NewTransientError("error checking minter role", err)
	}
	if !hasRole {
		return common.NewPermanentError(common.CodeMissingRole, "minter key does not have MINTER_ROLE")
	}

	balance, err := x.client.GetBalance(x.minterAddress.Hex())
	if err != nil {
		return common.NewTransientError("error checking minter gas balance", err)
	}
	if balance.Sign() == 0 {
		return &common.Error{
			Kind:    common.KindTransient,
			Code:    common.CodeGasStarved,
			Message: "minter has no gas",
		}
	}

	return nil
}

// HandleDeposit mints tokens for a claimed deposit. Returns true when the
// deposit reached minted.
func (x *ExecutorRunner) HandleDeposit(deposit *models.Deposit) bool {
	day := issuanceDay()

	reserved, err := ReserveIssuance(day, deposit.Amount)
	if err != nil {
		log.Error("[MINT] Error reserving issuance for deposit ", deposit.Id.Hex(), ": ", err)
		x.releaseClaim(deposit)
		return false
	}
	if !reserved {
		x.releaseClaim(deposit)
		return false
	}

	if err := x.preflight(); err != nil {
		ReleaseIssuance(day, deposit.Amount)
		x.markFailed(deposit, err)
		return false
	}

	opts, _, err := ethereum.NewTransactor(app.Config.Ethereum.MinterPrivateKey)
	if err != nil {
		ReleaseIssuance(day, deposit.Amount)
		x.markFailed(deposit, err)
		return false
	}

	tx, err := x.token.Mint(opts, ethCommon.HexToAddress(deposit.WalletAddress), common.AmountToWei(deposit.Amount))
	if err != nil {
		ReleaseIssuance(day, deposit.Amount)
		x.markFailed(deposit, ethereum.ClassifyTxError(err))
		return false
	}

	txHash := tx.Hash().Hex()
	log.Info("[MINT] Submitted mint for deposit ", deposit.Id.Hex(), ", tx: ", txHash)

	err = app.DB.UpdateOne(models.CollectionDeposits,
		bson.M{"_id": deposit.Id},
		bson.M{"$set": bson.M{"mint_tx_hash": txHash, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[MINT] Error persisting mint tx hash for deposit ", deposit.Id.Hex(), ": ", err)
	}

	receipt, err := ethereum.WaitForReceipt(x.client, txHash)
	if err != nil {
		// tx may still land, keep the claim and hash for the operator
		log.Error("[MINT] Error waiting for mint receipt of deposit ", deposit.Id.Hex(), ": ", err)
		updateErr := app.DB.UpdateOne(models.CollectionDeposits,
			bson.M{"_id": deposit.Id},
			bson.M{"$set": bson.M{"error": err.Error(), "updated_at": time.Now()}})
		if updateErr != nil {
			log.Error("[MINT] Error recording wait failure for deposit ", deposit.Id.Hex(), ": ", updateErr)
		}
		return false
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		ReleaseIssuance(day, deposit.Amount)
		x.markFailed(deposit, common.NewPermanentError("", "mint transaction reverted: "+txHash))
		return false
	}

	err = app.DB.UpdateOne(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusMintProcessing},
		bson.M{"$set": bson.M{"status": models.DepositStatusMinted, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[MINT] Error finalizing deposit ", deposit.Id.Hex(), ": ", err)
		return false
	}

	RecordIssued(day, deposit.Amount)

	log.Info("[MINT] Minted ", deposit.Amount, " TZS for deposit ", deposit.Id.Hex())

	err = webhook.QueueEvent(deposit.PartnerID, models.EventDepositMinted, map[string]interface{}{
		"deposit_id":     deposit.Id.Hex(),
		"user_id":        deposit.UserID,
		"amount":         deposit.Amount,
		"wallet_address": deposit.WalletAddress,
		"tx_hash":        txHash,
	})
	if err != nil {
		log.Error("[MINT] Error queueing minted event for deposit ", deposit.Id.Hex(), ": ", err)
	}

	app.RecordAudit("mint_completed", "deposit", deposit.Id.Hex(), map[string]interface{}{
		"amount":  deposit.Amount,
		"tx_hash": txHash,
	})

	return true
}

func (x *ExecutorRunner) ProcessPending() {
	for {
		deposit := x.ClaimDeposit()
		if deposit == nil {
			return
		}
		x.lastDepositID = deposit.Id.Hex()
		x.HandleDeposit(deposit)
	}
}

func NewExecutor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.MintExecutor.Enabled {
		log.Debug("[MINT] Executor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[MINT] Initializing executor")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[MINT] Error initializing ethereum client: ", err)
	}

	token, err := ethereum.NewTokenContract(ethCommon.HexToAddress(app.Config.Ethereum.TokenAddress), client.GetClient())
	if err != nil {
		log.Fatal("[MINT] Error initializing token contract: ", err)
	}

	_, minterAddress, err := ethereum.NewTransactor(app.Config.Ethereum.MinterPrivateKey)
	if err != nil {
		log.Fatal("[MINT] Invalid minter key: ", err)
	}

	x := &ExecutorRunner{
		client:        client,
		token:         token,
		minterAddress: minterAddress,
	}

	log.Info("[MINT] Initialized executor")

	return app.NewRunnerService(ExecutorName, x, wg, time.Duration(app.Config.MintExecutor.IntervalMillis)*time.Millisecond)
}
