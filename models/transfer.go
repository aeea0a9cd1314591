package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionTransfers = "transfers"
)

// types of transfer status
const (
	TransferStatusPending    = "pending"
	TransferStatusProcessing = "processing"
	TransferStatusCompleted  = "completed"
	TransferStatusFailed     = "failed"
)

type Transfer struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PartnerID   string              `bson:"partner_id" json:"partner_id"`
	FromUserID  string              `bson:"from_user_id" json:"from_user_id"`
	ToUserID    string              `bson:"to_user_id" json:"to_user_id"`
	FromAddress string              `bson:"from_address" json:"from_address"`
	ToAddress   string              `bson:"to_address" json:"to_address"`
	Amount      int64               `bson:"amount" json:"amount"`
	Status      string              `bson:"status" json:"status"`
	TxHash      string              `bson:"tx_hash" json:"tx_hash"`
	Error       string              `bson:"error" json:"error"`
	ClaimedAt   *time.Time          `bson:"claimed_at" json:"claimed_at"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}
