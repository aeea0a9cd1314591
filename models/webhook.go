package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionWebhookEvents = "webhookEvents"
)

// types of webhook event status
const (
	WebhookStatusPending   = "pending"
	WebhookStatusDelivered = "delivered"
	WebhookStatusFailed    = "failed"
)

// types of webhook event
const (
	EventDepositMinted     = "deposit.minted"
	EventDepositRejected   = "deposit.rejected"
	EventWithdrawalBurned  = "withdrawal.burned"
	EventWalletProvisioned = "wallet.provisioned"
	EventTransferCompleted = "transfer.completed"
)

type WebhookEvent struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PartnerID      string              `bson:"partner_id" json:"partner_id"`
	EventType      string              `bson:"event_type" json:"event_type"`
	Payload        string              `bson:"payload" json:"payload"`
	Status         string              `bson:"status" json:"status"`
	Attempts       int64               `bson:"attempts" json:"attempts"`
	LastAttemptAt  *time.Time          `bson:"last_attempt_at" json:"last_attempt_at"`
	NextRetryAt    *time.Time          `bson:"next_retry_at" json:"next_retry_at"`
	LastStatusCode int64               `bson:"last_status_code" json:"last_status_code"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}
