package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionBurns = "burns"
)

// types of burn status
const (
	BurnStatusRequested              = "requested"
	BurnStatusRequiresSecondApproval = "requires_second_approval"
	BurnStatusApproved               = "approved"
	BurnStatusBurnSubmitted          = "burn_submitted"
	BurnStatusBurned                 = "burned"
	BurnStatusFailed                 = "failed"
	BurnStatusRejected               = "rejected"
)

// payout sub-state, independent of burn status
const (
	PayoutStatusPending   = "pending"
	PayoutStatusCompleted = "completed"
	PayoutStatusFailed    = "failed"
)

type Burn struct {
	Id               *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID           string              `bson:"user_id" json:"user_id"`
	PartnerID        string              `bson:"partner_id" json:"partner_id"`
	WalletAddress    string              `bson:"wallet_address" json:"wallet_address"`
	Amount           int64               `bson:"amount" json:"amount"`
	Status           string              `bson:"status" json:"status"`
	RecipientPhone   string              `bson:"recipient_phone" json:"recipient_phone"`
	FirstApproverID  string              `bson:"first_approver_id" json:"first_approver_id"`
	FirstApprovedAt  *time.Time          `bson:"first_approved_at" json:"first_approved_at"`
	SecondApproverID string              `bson:"second_approver_id" json:"second_approver_id"`
	SecondApprovedAt *time.Time          `bson:"second_approved_at" json:"second_approved_at"`
	BurnTxHash       string              `bson:"burn_tx_hash" json:"burn_tx_hash"`
	Error            string              `bson:"error" json:"error"`
	PayoutReference  string              `bson:"payout_reference" json:"payout_reference"`
	PayoutStatus     string              `bson:"payout_status" json:"payout_status"`
	PayoutError      string              `bson:"payout_error" json:"payout_error"`
	PlatformFee      int64               `bson:"platform_fee" json:"platform_fee"`
	ClaimedAt        *time.Time          `bson:"claimed_at" json:"claimed_at"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updated_at"`
}
