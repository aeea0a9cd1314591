package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionReconciliationEntries = "reconciliationEntries"
)

// types of reconciliation entry
const (
	EntryTypeUntrackedMint    = "untracked_mint"
	EntryTypeTestMint         = "test_mint"
	EntryTypeManualCorrection = "manual_correction"
	EntryTypeDoubleMint       = "double_mint"
	EntryTypeOther            = "other"
)

// ReconciliationEntry is an append-only record explaining supply that is not
// backed by a minted deposit.
type ReconciliationEntry struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TxHash    string              `bson:"tx_hash" json:"tx_hash"`
	ToAddress string              `bson:"to_address" json:"to_address"`
	Amount    int64               `bson:"amount" json:"amount"`
	EntryType string              `bson:"entry_type" json:"entry_type"`
	Reason    string              `bson:"reason" json:"reason"`
	Notes     string              `bson:"notes" json:"notes"`
	CreatedBy string              `bson:"created_by" json:"created_by"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// SupplyReport is the output of a reconciliation run. All amounts are in
// token units (TZS).
type SupplyReport struct {
	OnChainSupply   int64     `bson:"on_chain_supply" json:"on_chain_supply"`
	MintedTotal     int64     `bson:"minted_total" json:"minted_total"`
	ReconciledTotal int64     `bson:"reconciled_total" json:"reconciled_total"`
	Discrepancy     int64     `bson:"discrepancy" json:"discrepancy"`
	GeneratedAt     time.Time `bson:"generated_at" json:"generated_at"`
}
