package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionWallets = "wallets"
)

// types of wallet status
const (
	WalletStatusPending      = "pending"
	WalletStatusProvisioning = "provisioning"
	WalletStatusActive       = "active"
	WalletStatusFailed       = "failed"
)

const ChainBase = "base"

type Wallet struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string              `bson:"user_id" json:"user_id"`
	PartnerID       string              `bson:"partner_id" json:"partner_id"`
	Chain           string              `bson:"chain" json:"chain"`
	Address         string              `bson:"address" json:"address"`
	DerivationIndex int64               `bson:"derivation_index" json:"derivation_index"`
	Status          string              `bson:"status" json:"status"`
	Error           string              `bson:"error" json:"error"`
	ClaimedAt       *time.Time          `bson:"claimed_at" json:"claimed_at"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

type Partner struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name            string              `bson:"name" json:"name"`
	WebhookURL      string              `bson:"webhook_url" json:"webhook_url"`
	WebhookSecret   string              `bson:"webhook_secret" json:"webhook_secret"`
	EncryptedSeed   string              `bson:"encrypted_seed" json:"encrypted_seed"`
	NextWalletIndex int64               `bson:"next_wallet_index" json:"next_wallet_index"`
	Active          bool                `bson:"active" json:"active"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

const (
	CollectionPartners = "partners"
)
