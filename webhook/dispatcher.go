package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	log "github.com/sirupsen/logrus"
)

const (
	DispatcherName = "WEBHOOK DISPATCHER"

	maxAttempts   int64 = 3
	batchSize     int64 = 20
	baseBackoff         = 30 * time.Second
	clientTimeout       = 10 * time.Second
)

type DispatcherRunner struct {
	client      *http.Client
	lastEventID string
}

func (x *DispatcherRunner) Run() {
	x.ProcessQueue()
}

func (x *DispatcherRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastEventID,
	}
}

// retryBackoff returns the delay before the next delivery attempt:
// 30s, 120s, 480s for attempts 1, 2, 3.
func retryBackoff(attempts int64) time.Duration {
	backoff := baseBackoff
	for i := int64(1); i < attempts; i++ {
		backoff *= 4
	}
	return backoff
}

func signPayload(secret string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func (x *DispatcherRunner) findPartner(partnerID string) (*models.Partner, error) {
	id, err := primitive.ObjectIDFromHex(partnerID)
	if err != nil {
		return nil, err
	}

	var partner models.Partner
	if err := app.DB.FindOne(models.CollectionPartners, bson.M{"_id": id}, &partner); err != nil {
		return nil, err
	}
	return &partner, nil
}

func (x *DispatcherRunner) markFailed(event *models.WebhookEvent, attempts int64, statusCode int64) {
	err := app.DB.UpdateOne(models.CollectionWebhookEvents,
		bson.M{"_id": event.Id},
		bson.M{"$set": bson.M{
			"status":           models.WebhookStatusFailed,
			"attempts":         attempts,
			"last_attempt_at":  time.Now(),
			"last_status_code": statusCode,
			"updated_at":       time.Now(),
		}},
	)
	if err != nil {
		log.Error("[WEBHOOK DISPATCHER] Error marking event failed: ", err)
	}
}

func (x *DispatcherRunner) scheduleRetry(event *models.WebhookEvent, attempts int64, statusCode int64) {
	if attempts >= maxAttempts {
		x.markFailed(event, attempts, statusCode)
		return
	}

	nextRetry := time.Now().Add(retryBackoff(attempts))
	err := app.DB.UpdateOne(models.CollectionWebhookEvents,
		bson.M{"_id": event.Id},
		bson.M{"$set": bson.M{
			"attempts":         attempts,
			"last_attempt_at":  time.Now(),
			"next_retry_at":    nextRetry,
			"last_status_code": statusCode,
			"updated_at":       time.Now(),
		}},
	)
	if err != nil {
		log.Error("[WEBHOOK DISPATCHER] Error scheduling retry: ", err)
	}
}

// HandleEvent delivers a single pending event to its partner endpoint.
func (x *DispatcherRunner) HandleEvent(event *models.WebhookEvent) bool {
	logger := log.WithField("event_id", event.Id.Hex()).WithField("event_type", event.EventType)

	partner, err := x.findPartner(event.PartnerID)
	if err != nil {
		logger.Error("[WEBHOOK DISPATCHER] Error fetching partner: ", err)
		return false
	}

	if partner.WebhookURL == "" {
		logger.Debug("[WEBHOOK DISPATCHER] Partner has no webhook url, marking failed")
		x.markFailed(event, event.Attempts, 0)
		return true
	}

	attempts := event.Attempts + 1
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	req, err := http.NewRequest(http.MethodPost, partner.WebhookURL, bytes.NewReader([]byte(event.Payload)))
	if err != nil {
		logger.Error("[WEBHOOK DISPATCHER] Error building request: ", err)
		x.scheduleRetry(event, attempts, 0)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Timestamp", timestamp)
	if partner.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", signPayload(partner.WebhookSecret, timestamp+"."+event.Payload))
	}

	res, err := x.client.Do(req)
	if err != nil {
		logger.Warn("[WEBHOOK DISPATCHER] Delivery error: ", err)
		x.scheduleRetry(event, attempts, 0)
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		logger.Warn("[WEBHOOK DISPATCHER] Delivery rejected with status ", res.StatusCode)
		x.scheduleRetry(event, attempts, int64(res.StatusCode))
		return false
	}

	err = app.DB.UpdateOne(models.CollectionWebhookEvents,
		bson.M{"_id": event.Id},
		bson.M{"$set": bson.M{
			"status":           models.WebhookStatusDelivered,
			"attempts":         attempts,
			"last_attempt_at":  time.Now(),
			"last_status_code": int64(res.StatusCode),
			"updated_at":       time.Now(),
		}},
	)
	if err != nil {
		logger.Error("[WEBHOOK DISPATCHER] Error marking event delivered: ", err)
		return false
	}

	logger.Info("[WEBHOOK DISPATCHER] Delivered event")
	return true
}

// ProcessQueue delivers a batch of due pending events in creation order.
func (x *DispatcherRunner) ProcessQueue() bool {
	log.Debug("[WEBHOOK DISPATCHER] Processing webhook queue")

	filter := bson.M{
		"status":        models.WebhookStatusPending,
		"next_retry_at": bson.M{"$lte": time.Now()},
	}

	var events []models.WebhookEvent
	err := app.DB.FindManyWithOptions(models.CollectionWebhookEvents, filter, bson.M{"created_at": 1}, batchSize, &events)
	if err != nil {
		log.Error("[WEBHOOK DISPATCHER] Error fetching pending events: ", err)
		return false
	}

	var success = true
	for i := range events {
		event := events[i]
		success = x.HandleEvent(&event) && success
		x.lastEventID = event.Id.Hex()
	}

	log.Debug("[WEBHOOK DISPATCHER] Finished processing webhook queue")
	return success
}

func NewDispatcher(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.WebhookDispatcher.Enabled {
		log.Debug("[WEBHOOK DISPATCHER] Disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[WEBHOOK DISPATCHER] Initializing webhook dispatcher")

	x := &DispatcherRunner{
		client: &http.Client{Timeout: clientTimeout},
	}

	log.Info("[WEBHOOK DISPATCHER] Initialized webhook dispatcher")

	return app.NewRunnerService(DispatcherName, x, wg, time.Duration(app.Config.WebhookDispatcher.IntervalMillis)*time.Millisecond)
}
