package wallet

import (
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const pendingAddressPrefix = "0x_pending_"

// PendingAddress is the placeholder stored until derivation succeeds. It
// keeps the (chain, address) unique index satisfied for unprovisioned rows.
func PendingAddress(id primitive.ObjectID) string {
	return pendingAddressPrefix + id.Hex()
}

func findPartner(partnerID string) (*models.Partner, error) {
	id, err := primitive.ObjectIDFromHex(partnerID)
	if err != nil {
		return nil, common.NewValidationError("invalid partner id")
	}

	var partner models.Partner
	if err := app.DB.FindOne(models.CollectionPartners, bson.M{"_id": id}, &partner); err != nil {
		return nil, err
	}
	if !partner.Active {
		return nil, common.NewValidationError("partner is not active")
	}
	return &partner, nil
}

// ClaimWalletIndex atomically claims the next derivation index for a partner.
// The partner counter holds the next unassigned index, so the claimed index
// is the post-increment value minus one.
func ClaimWalletIndex(partnerID *primitive.ObjectID) (int64, error) {
	var updated models.Partner
	err := app.DB.FindOneAndUpdate(models.CollectionPartners,
		bson.M{"_id": partnerID},
		bson.M{"$inc": bson.M{"next_wallet_index": 1}, "$set": bson.M{"updated_at": time.Now()}},
		nil,
		&updated,
	)
	if err != nil {
		return 0, err
	}
	return updated.NextWalletIndex - 1, nil
}

// CreateWallet provisions a wallet row for a partner user. Creation is
// idempotent: an existing (partner, user) wallet is returned as is. The row
// starts in pending status with a claimed derivation index; the provisioner
// derives the address and activates it.
func CreateWallet(partnerID string, userID string) (*models.Wallet, error) {
	if userID == "" {
		return nil, common.NewValidationError("user id is required")
	}

	partner, err := findPartner(partnerID)
	if err != nil {
		return nil, err
	}

	var existing models.Wallet
	err = app.DB.FindOne(models.CollectionWallets, bson.M{"partner_id": partnerID, "user_id": userID}, &existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	index, err := ClaimWalletIndex(partner.Id)
	if err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	now := time.Now()
	doc := models.Wallet{
		Id:              &id,
		UserID:          userID,
		PartnerID:       partnerID,
		Chain:           models.ChainBase,
		Address:         PendingAddress(id),
		DerivationIndex: index,
		Status:          models.WalletStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := app.DB.InsertOne(models.CollectionWallets, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// concurrent creation for the same user, return the winner
			var winner models.Wallet
			if err := app.DB.FindOne(models.CollectionWallets, bson.M{"partner_id": partnerID, "user_id": userID}, &winner); err != nil {
				return nil, err
			}
			return &winner, nil
		}
		return nil, err
	}

	log.Info("[WALLET] Created wallet ", id.Hex(), " for user ", userID, " at index ", index)

	app.RecordAudit("wallet_created", "wallet", id.Hex(), map[string]interface{}{
		"partner_id":       partnerID,
		"user_id":          userID,
		"derivation_index": index,
	})

	return &doc, nil
}
