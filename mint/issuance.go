package mint

import (
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const dayFormat = "2006-01-02"

func issuanceDay() string {
	return time.Now().UTC().Format(dayFormat)
}

// ReserveIssuance reserves amount against the UTC day's issuance cap.
// Returns false when the reservation would exceed the cap.
func ReserveIssuance(day string, amount int64) (bool, error) {
	capAmount := app.Config.Settlement.DailyIssuanceCap

	err := app.DB.UpsertOne(models.CollectionDailyIssuance,
		bson.M{"day": day},
		bson.M{
			"$setOnInsert": bson.M{
				"day":        day,
				"cap":        capAmount,
				"reserved":   int64(0),
				"issued":     int64(0),
				"created_at": time.Now(),
			},
		},
	)
	if err != nil {
		return false, err
	}

	var updated models.DailyIssuance
	err = app.DB.FindOneAndUpdate(models.CollectionDailyIssuance,
		bson.M{"day": day, "reserved": bson.M{"$lte": capAmount - amount}},
		bson.M{"$inc": bson.M{"reserved": amount}, "$set": bson.M{"updated_at": time.Now()}},
		nil,
		&updated,
	)
	if err == mongo.ErrNoDocuments {
		log.Warn("[MINT] Daily issuance cap reached for ", day)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReleaseIssuance returns a reservation that will not be issued.
func ReleaseIssuance(day string, amount int64) {
	err := app.DB.UpdateOne(models.CollectionDailyIssuance,
		bson.M{"day": day},
		bson.M{"$inc": bson.M{"reserved": -amount}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		log.Error("[MINT] Error releasing issuance reservation: ", err)
	}
}

// RecordIssued moves a reservation into the issued total after the mint
// confirms.
func RecordIssued(day string, amount int64) {
	err := app.DB.UpdateOne(models.CollectionDailyIssuance,
		bson.M{"day": day},
		bson.M{"$inc": bson.M{"issued": amount}, "$set": bson.M{"updated_at": time.Now()}},
	)
	if err != nil {
		log.Error("[MINT] Error recording issuance: ", err)
	}
}
