package burn

import (
	"sync"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	ExecutorName = "BURN EXECUTOR"
)

type ExecutorRunner struct {
	client        ethereum.EthereumClient
	token         ethereum.TokenContract
	psp           psp.SnippeClient
	burnerAddress ethCommon.Address
	lastBurnID    string
}

func (x *ExecutorRunner) Run() {
	x.ReclaimStale()
	x.ProcessApproved()
	x.CheckPendingPayouts()
}

func (x *ExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastBurnID,
	}
}

// ReclaimStale resets claims whose worker died before submitting the burn.
// Claims with a tx hash are never reclaimed.
func (x *ExecutorRunner) ReclaimStale() {
	window := app.Config.Settlement.ReclaimAfterMillis
	if window <= 0 {
		return
	}

	cutoff := time.Now().Add(-time.Duration(window) * time.Millisecond)
	for {
		var reclaimed models.Burn
		err := app.DB.FindOneAndUpdate(models.CollectionBurns,
			bson.M{
				"status":       models.BurnStatusBurnSubmitted,
				"burn_tx_hash": "",
				"claimed_at":   bson.M{"$lt": cutoff},
			},
			bson.M{"$set": bson.M{
				"status":     models.BurnStatusApproved,
				"claimed_at": nil,
				"updated_at": time.Now(),
			}},
			bson.M{"claimed_at": 1},
			&reclaimed,
		)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				log.Error("[BURN] Error reclaiming stale burns: ", err)
			}
			return
		}
		log.Warn("[BURN] Reclaimed stale burn: ", reclaimed.Id.Hex())
	}
}

// ClaimBurn atomically claims the oldest approved burn.
func (x *ExecutorRunner) ClaimBurn() *models.Burn {
	now := time.Now()
	burn := &models.Burn{}
	err := app.DB.FindOneAndUpdate(models.CollectionBurns,
		bson.M{"status": models.BurnStatusApproved},
		bson.M{"$set": bson.M{
			"status":     models.BurnStatusBurnSubmitted,
			"claimed_at": now,
			"updated_at": now,
		}},
		bson.M{"created_at": 1},
		burn,
	)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Error("[BURN] Error claiming burn: ", err)
		}
		return nil
	}
	return burn
}

func (x *ExecutorRunner) markFailed(burn *models.Burn, failure error) {
	log.Error("[BURN] Burn failed for ", burn.Id.Hex(), ": ", failure)

	err := app.DB.UpdateOne(models.CollectionBurns,
		bson.M{"_id": burn.Id, "status": models.BurnStatusBurnSubmitted},
		bson.M{"$set": bson.M{
			"status":     models.BurnStatusFailed,
			"error":      failure.Error(),
			"updated_at": time.Now(),
		}})
	if err != nil {
		log.Error("[BURN] Error marking burn failed ", burn.Id.Hex(), ": ", err)
	}

	app.RecordAudit("burn_failed", "burn", burn.Id.Hex(), map[string]interface{}{
		"error": failure.Error(),
		"code":  common.ErrorCode(failure),
	})
}

func (x *ExecutorRunner) preflight(burn *models.Burn) error {
	opts, cancel := ethereum.NewCallOpts()
	defer cancel()

	paused, err := x.token.Paused(opts)
	if err != nil {
		return common.NewTransientError("error checking pause state", err)
	}
	if paused {
		return common.NewPermanentError(common.CodeContractPaused, "token contract is paused")
	}

	role, err := x.token.BurnerRole(opts)
	if err != nil {
		return common.NewTransientError("error fetching burner role", err)
	}
	hasRole, err := x.token.HasRole(opts, role, x.burnerAddress)
	if err != nil {
		return common.NewTransientError("error checking burner role", err)
	}
	if !hasRole {
		return common.NewPermanentError(common.CodeMissingRole, "burner key does not have BURNER_ROLE")
	}

	tokenBalance, err := x.token.BalanceOf(opts, ethCommon.HexToAddress(burn.WalletAddress))
	if err != nil {
		return common.NewTransientError("error checking token balance", err)
	}
	if tokenBalance.Cmp(common.AmountToWei(burn.Amount)) < 0 {
		return common.NewPermanentError(common.CodeInsufficientBalance, "wallet balance is below the burn amount")
	}

	gasBalance, err := x.client.GetBalance(x.burnerAddress.Hex())
	if err != nil {
		return common.NewTransientError("error checking burner gas balance", err)
	}
	if gasBalance.Sign() == 0 {
		return &common.Error{
			Kind:    common.KindTransient,
			Code:    common.CodeGasStarved,
			Message: "burner has no gas",
		}
	}

	return nil
}

// initiatePayout sends the fiat disbursement after a confirmed burn. A payout
// failure never reverts the burn, it only flags the payout sub-state.
func (x *ExecutorRunner) initiatePayout(burn *models.Burn) {
	result, err := x.psp.SendPayout(psp.PayoutRequest{
		Amount: burn.Amount,
		Phone:  burn.RecipientPhone,
		Metadata: map[string]interface{}{
			"burn_request_id": burn.Id.Hex(),
		},
	})
	if err != nil {
		log.Error("[BURN] Payout initiation failed for burn ", burn.Id.Hex(), ": ", err)
		updateErr := app.DB.UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id},
			bson.M{"$set": bson.M{
				"payout_status": models.PayoutStatusFailed,
				"payout_error":  err.Error(),
				"updated_at":    time.Now(),
			}})
		if updateErr != nil {
			log.Error("[BURN] Error recording payout failure for burn ", burn.Id.Hex(), ": ", updateErr)
		}
		app.RecordAudit("payout_failed", "burn", burn.Id.Hex(), map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	err = app.DB.UpdateOne(models.CollectionBurns,
		bson.M{"_id": burn.Id},
		bson.M{"$set": bson.M{
			"payout_status":    models.PayoutStatusPending,
			"payout_reference": result.Reference,
			"platform_fee":     result.Fee,
			"updated_at":       time.Now(),
		}})
	if err != nil {
		log.Error("[BURN] Error recording payout for burn ", burn.Id.Hex(), ": ", err)
	}

	log.Info("[BURN] Initiated payout ", result.Reference, " for burn ", burn.Id.Hex())

	app.RecordAudit("payout_initiated", "burn", burn.Id.Hex(), map[string]interface{}{
		"payout_reference": result.Reference,
		"platform_fee":     result.Fee,
	})
}

// HandleBurn burns tokens for a claimed withdrawal and triggers the fiat
// payout. Returns true when the burn confirmed.
func (x *ExecutorRunner) HandleBurn(burn *models.Burn) bool {
	if err := x.preflight(burn); err != nil {
		x.markFailed(burn, err)
		return false
	}

	opts, _, err := ethereum.NewTransactor(app.Config.Ethereum.MinterPrivateKey)
	if err != nil {
		x.markFailed(burn, err)
		return false
	}

	tx, err := x.token.Burn(opts, ethCommon.HexToAddress(burn.WalletAddress), common.AmountToWei(burn.Amount))
	if err != nil {
		x.markFailed(burn, ethereum.ClassifyTxError(err))
		return false
	}

	txHash := tx.Hash().Hex()
	log.Info("[BURN] Submitted burn for ", burn.Id.Hex(), ", tx: ", txHash)

	err = app.DB.UpdateOne(models.CollectionBurns,
		bson.M{"_id": burn.Id},
		bson.M{"$set": bson.M{"burn_tx_hash": txHash, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[BURN] Error persisting burn tx hash for ", burn.Id.Hex(), ": ", err)
	}

	receipt, err := ethereum.WaitForReceipt(x.client, txHash)
	if err != nil {
		// tx may still land, keep the claim and hash for the operator
		log.Error("[BURN] Error waiting for burn receipt of ", burn.Id.Hex(), ": ", err)
		updateErr := app.DB.UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id},
			bson.M{"$set": bson.M{"error": err.Error(), "updated_at": time.Now()}})
		if updateErr != nil {
			log.Error("[BURN] Error recording wait failure for burn ", burn.Id.Hex(), ": ", updateErr)
		}
		return false
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		x.markFailed(burn, common.NewPermanentError("", "burn transaction reverted: "+txHash))
		return false
	}

	err = app.DB.UpdateOne(models.CollectionBurns,
		bson.M{"_id": burn.Id, "status": models.BurnStatusBurnSubmitted},
		bson.M{"$set": bson.M{"status": models.BurnStatusBurned, "updated_at": time.Now()}})
	if err != nil {
		log.Error("[BURN] Error finalizing burn ", burn.Id.Hex(), ": ", err)
		return false
	}

	log.Info("[BURN] Burned ", burn.Amount, " TZS for ", burn.Id.Hex())

	app.RecordAudit("burn_completed", "burn", burn.Id.Hex(), map[string]interface{}{
		"amount":  burn.Amount,
		"tx_hash": txHash,
	})

	x.initiatePayout(burn)

	err = webhook.QueueEvent(burn.PartnerID, models.EventWithdrawalBurned, map[string]interface{}{
		"burn_request_id": burn.Id.Hex(),
		"user_id":         burn.UserID,
		"amount":          burn.Amount,
		"tx_hash":         txHash,
	})
	if err != nil {
		log.Error("[BURN] Error queueing burned event for ", burn.Id.Hex(), ": ", err)
	}

	return true
}

// CheckPendingPayouts reconciles payout sub-state with the processor.
func (x *ExecutorRunner) CheckPendingPayouts() {
	burns := []models.Burn{}
	err := app.DB.FindManyWithOptions(models.CollectionBurns,
		bson.M{"payout_status": models.PayoutStatusPending, "payout_reference": bson.M{"$ne": ""}},
		bson.M{"created_at": 1},
		50,
		&burns,
	)
	if err != nil {
		log.Error("[BURN] Error fetching pending payouts: ", err)
		return
	}

	for i := range burns {
		burn := burns[i]
		status, err := x.psp.GetPayoutStatus(burn.PayoutReference)
		if err != nil {
			log.Error("[BURN] Error checking payout ", burn.PayoutReference, ": ", err)
			continue
		}

		switch status.Status {
		case psp.PayoutStatusCompleted:
			err = app.DB.UpdateOne(models.CollectionBurns,
				bson.M{"_id": burn.Id, "payout_status": models.PayoutStatusPending},
				bson.M{"$set": bson.M{"payout_status": models.PayoutStatusCompleted, "updated_at": time.Now()}})
			if err != nil {
				log.Error("[BURN] Error completing payout for burn ", burn.Id.Hex(), ": ", err)
			}
		case psp.PayoutStatusFailed, psp.PayoutStatusReversed:
			err = app.DB.UpdateOne(models.CollectionBurns,
				bson.M{"_id": burn.Id, "payout_status": models.PayoutStatusPending},
				bson.M{"$set": bson.M{
					"payout_status": models.PayoutStatusFailed,
					"payout_error":  status.FailureReason,
					"updated_at":    time.Now(),
				}})
			if err != nil {
				log.Error("[BURN] Error failing payout for burn ", burn.Id.Hex(), ": ", err)
			}
		}
	}
}

func (x *ExecutorRunner) ProcessApproved() {
	for {
		burn := x.ClaimBurn()
		if burn == nil {
			return
		}
		x.lastBurnID = burn.Id.Hex()
		x.HandleBurn(burn)
	}
}

func NewExecutor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.BurnExecutor.Enabled {
		log.Debug("[BURN] Executor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[BURN] Initializing executor")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[BURN] Error initializing ethereum client: ", err)
	}

	token, err := ethereum.NewTokenContract(ethCommon.HexToAddress(app.Config.Ethereum.TokenAddress), client.GetClient())
	if err != nil {
		log.Fatal("[BURN] Error initializing token contract: ", err)
	}

	_, burnerAddress, err := ethereum.NewTransactor(app.Config.Ethereum.MinterPrivateKey)
	if err != nil {
		log.Fatal("[BURN] Invalid burner key: ", err)
	}

	x := &ExecutorRunner{
		client:        client,
		token:         token,
		psp:           psp.NewClient(),
		burnerAddress: burnerAddress,
	}

	log.Info("[BURN] Initialized executor")

	return app.NewRunnerService(ExecutorName, x, wg, time.Duration(app.Config.BurnExecutor.IntervalMillis)*time.Millisecond)
}
