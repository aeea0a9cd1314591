package webhook

import (
	"encoding/json"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/models"
)

// Payload is the body delivered to partner webhook endpoints.
type Payload struct {
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data"`
	Timestamp string                 `json:"timestamp"`
}

// QueueEvent enqueues a partner webhook event for delivery. The event is
// picked up by the dispatcher on its next tick.
func QueueEvent(partnerID string, eventType string, data map[string]interface{}) error {
	payload := Payload{
		Event:     eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	now := time.Now()
	doc := models.WebhookEvent{
		PartnerID:   partnerID,
		EventType:   eventType,
		Payload:     string(encoded),
		Status:      models.WebhookStatusPending,
		Attempts:    0,
		NextRetryAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return app.DB.InsertOne(models.CollectionWebhookEvents, doc)
}
