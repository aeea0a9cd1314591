package reconcile

import (
	"strings"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

var entryTypes = map[string]bool{
	models.EntryTypeUntrackedMint:    true,
	models.EntryTypeTestMint:         true,
	models.EntryTypeManualCorrection: true,
	models.EntryTypeDoubleMint:       true,
	models.EntryTypeOther:            true,
}

// AddEntry appends a reconciliation entry explaining supply that is not backed
// by a minted deposit. Entries are keyed by transaction hash and are never
// updated or removed.
func AddEntry(entry models.ReconciliationEntry) (*models.ReconciliationEntry, error) {
	entry.TxHash = strings.ToLower(strings.TrimSpace(entry.TxHash))
	if entry.TxHash == "" {
		return nil, common.NewValidationError("tx hash is required")
	}
	if !entryTypes[entry.EntryType] {
		return nil, common.NewValidationError("invalid entry type")
	}
	if entry.Amount == 0 {
		return nil, common.NewValidationError("amount must be non-zero")
	}
	if entry.CreatedBy == "" {
		return nil, common.NewValidationError("created_by is required")
	}

	entry.Id = nil
	entry.CreatedAt = time.Now()

	if err := app.DB.InsertOne(models.CollectionReconciliationEntries, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.NewStateConflictError("an entry already exists for this transaction")
		}
		return nil, err
	}

	log.Info("[RECONCILE] Recorded ", entry.EntryType, " entry for tx ", entry.TxHash, ": ", entry.Amount, " TZS")

	app.RecordAudit("reconciliation_entry_added", "reconciliation_entry", entry.TxHash, map[string]interface{}{
		"entry_type": entry.EntryType,
		"amount":     entry.Amount,
		"created_by": entry.CreatedBy,
	})

	return &entry, nil
}
