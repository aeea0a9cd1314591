package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionAuditLogs = "auditLogs"
)

type AuditLog struct {
	Id         *primitive.ObjectID    `bson:"_id,omitempty" json:"_id"`
	Action     string                 `bson:"action" json:"action"`
	EntityType string                 `bson:"entity_type" json:"entity_type"`
	EntityID   string                 `bson:"entity_id" json:"entity_id"`
	Metadata   map[string]interface{} `bson:"metadata" json:"metadata"`
	CreatedAt  time.Time              `bson:"created_at" json:"created_at"`
}
