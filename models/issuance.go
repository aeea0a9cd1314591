package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionDailyIssuance = "dailyIssuance"
)

// DailyIssuance tracks how much supply has been reserved and issued for a
// single UTC day. Day is formatted as YYYY-MM-DD and is unique.
type DailyIssuance struct {
	Id        *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Day       string              `bson:"day" json:"day"`
	Cap       int64               `bson:"cap" json:"cap"`
	Reserved  int64               `bson:"reserved" json:"reserved"`
	Issued    int64               `bson:"issued" json:"issued"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}
