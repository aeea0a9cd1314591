package mint

import (
	"sync"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	MonitorName = "DEPOSIT MONITOR"
)

type MonitorRunner struct {
	client        psp.SnippeClient
	lastDepositID string
}

func (x *MonitorRunner) Run() {
	x.CheckSubmittedDeposits()
}

func (x *MonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastDepositID,
	}
}

// ApplyPaymentStatus advances a submitted deposit from the processor's view
// of the collection. Returns true when the deposit reached a new status.
func ApplyPaymentStatus(deposit *models.Deposit, status *psp.PaymentStatus) bool {
	switch status.Status {
	case psp.PaymentStatusCompleted:
		return confirmFiat(deposit)
	case psp.PaymentStatusFailed, psp.PaymentStatusExpired, psp.PaymentStatusVoided:
		return rejectDeposit(deposit, "payment "+status.Status)
	default:
		return false
	}
}

func confirmFiat(deposit *models.Deposit) bool {
	next := models.DepositStatusMintPending
	if deposit.Amount >= app.Config.Settlement.SafeMintThreshold {
		next = models.DepositStatusMintRequiresSafe
	}

	now := time.Now()
	var confirmed models.Deposit
	err := app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted},
		bson.M{"$set": bson.M{
			"status":            next,
			"fiat_confirmed_at": now,
			"updated_at":        now,
		}},
		nil,
		&confirmed,
	)
	if err == mongo.ErrNoDocuments {
		log.Debug("[MINT] Deposit ", deposit.Id.Hex(), " already advanced")
		return false
	}
	if err != nil {
		log.Error("[MINT] Error confirming fiat for deposit ", deposit.Id.Hex(), ": ", err)
		return false
	}

	log.Info("[MINT] Fiat confirmed for deposit ", deposit.Id.Hex(), ", status: ", next)

	app.RecordAudit("fiat_confirmed", "deposit", deposit.Id.Hex(), map[string]interface{}{
		"amount": deposit.Amount,
		"status": next,
	})
	return true
}

func rejectDeposit(deposit *models.Deposit, reason string) bool {
	var rejected models.Deposit
	err := app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusRejected,
			"error":      reason,
			"updated_at": time.Now(),
		}},
		nil,
		&rejected,
	)
	if err == mongo.ErrNoDocuments {
		log.Debug("[MINT] Deposit ", deposit.Id.Hex(), " already advanced")
		return false
	}
	if err != nil {
		log.Error("[MINT] Error rejecting deposit ", deposit.Id.Hex(), ": ", err)
		return false
	}

	log.Info("[MINT] Rejected deposit ", deposit.Id.Hex(), ": ", reason)

	err = webhook.QueueEvent(deposit.PartnerID, models.EventDepositRejected, map[string]interface{}{
		"deposit_id": deposit.Id.Hex(),
		"user_id":    deposit.UserID,
		"amount":     deposit.Amount,
		"reason":     reason,
	})
	if err != nil {
		log.Error("[MINT] Error queueing rejected event for deposit ", deposit.Id.Hex(), ": ", err)
	}

	app.RecordAudit("deposit_rejected", "deposit", deposit.Id.Hex(), map[string]interface{}{
		"reason": reason,
	})
	return true
}

// HandleDeposit checks one submitted deposit against the processor.
func (x *MonitorRunner) HandleDeposit(deposit *models.Deposit) bool {
	status, err := x.client.GetPaymentStatus(deposit.PspReference)
	if err != nil {
		log.Error("[MINT] Error checking payment ", deposit.PspReference, ": ", err)
		return false
	}
	return ApplyPaymentStatus(deposit, status)
}

func (x *MonitorRunner) CheckSubmittedDeposits() {
	deposits := []models.Deposit{}
	err := app.DB.FindManyWithOptions(models.CollectionDeposits,
		bson.M{"status": models.DepositStatusSubmitted, "psp_reference": bson.M{"$ne": ""}},
		bson.M{"created_at": 1},
		50,
		&deposits,
	)
	if err != nil {
		log.Error("[MINT] Error fetching submitted deposits: ", err)
		return
	}

	for i := range deposits {
		deposit := deposits[i]
		x.lastDepositID = deposit.Id.Hex()
		x.HandleDeposit(&deposit)
	}
}

func NewMonitor(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.DepositMonitor.Enabled {
		log.Debug("[MINT] Deposit monitor disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[MINT] Initializing deposit monitor")

	x := &MonitorRunner{
		client: psp.NewClient(),
	}

	log.Info("[MINT] Initialized deposit monitor")

	return app.NewRunnerService(MonitorName, x, wg, time.Duration(app.Config.DepositMonitor.IntervalMillis)*time.Millisecond)
}
