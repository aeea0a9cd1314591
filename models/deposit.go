package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionDeposits = "deposits"
)

// types of deposit status
const (
	DepositStatusSubmitted        = "submitted"
	DepositStatusMintPending      = "mint_pending"
	DepositStatusMintRequiresSafe = "mint_requires_safe"
	DepositStatusMintProcessing   = "mint_processing"
	DepositStatusMinted           = "minted"
	DepositStatusMintFailed       = "mint_failed"
	DepositStatusRejected         = "rejected"
	DepositStatusCancelled        = "cancelled"
)

type Deposit struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          string              `bson:"user_id" json:"user_id"`
	PartnerID       string              `bson:"partner_id" json:"partner_id"`
	WalletAddress   string              `bson:"wallet_address" json:"wallet_address"`
	Amount          int64               `bson:"amount" json:"amount"`
	Status          string              `bson:"status" json:"status"`
	IdempotencyKey  string              `bson:"idempotency_key" json:"idempotency_key"`
	PspReference    string              `bson:"psp_reference" json:"psp_reference"`
	PspChannel      string              `bson:"psp_channel" json:"psp_channel"`
	BuyerPhone      string              `bson:"buyer_phone" json:"buyer_phone"`
	FiatConfirmedAt *time.Time          `bson:"fiat_confirmed_at" json:"fiat_confirmed_at"`
	MintTxHash      string              `bson:"mint_tx_hash" json:"mint_tx_hash"`
	Error           string              `bson:"error" json:"error"`
	ClaimedAt       *time.Time          `bson:"claimed_at" json:"claimed_at"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}
