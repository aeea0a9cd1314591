package app

import (
	"time"

	"github.com/ntzs-io/ntzs-settlement/models"

	log "github.com/sirupsen/logrus"
)

// RecordAudit writes an audit log entry. Audit writes are best effort: a
// failure is logged and never fails the settlement operation being audited.
func RecordAudit(action string, entityType string, entityID string, metadata map[string]interface{}) {
	doc := models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	}

	if err := DB.InsertOne(models.CollectionAuditLogs, doc); err != nil {
		log.Error("[AUDIT] Error recording audit log: ", err)
	}
}
