package mint

import (
	"time"

	"github.com/google/uuid"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

type DepositRequest struct {
	PartnerID      string
	UserID         string
	Amount         int64
	BuyerPhone     string
	BuyerEmail     string
	IdempotencyKey string
}

func findActiveWallet(partnerID string, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := app.DB.FindOne(models.CollectionWallets,
		bson.M{"partner_id": partnerID, "user_id": userID}, &wallet)
	if err == mongo.ErrNoDocuments {
		return nil, common.NewValidationError("user has no wallet")
	}
	if err != nil {
		return nil, err
	}
	if wallet.Status != models.WalletStatusActive {
		return nil, common.NewValidationError("wallet is not provisioned yet")
	}
	return &wallet, nil
}

// CreateDeposit records a fiat deposit and initiates collection with the
// payment processor. Creation is idempotent on (user, idempotency key).
func CreateDeposit(client psp.SnippeClient, request DepositRequest) (*models.Deposit, error) {
	if request.Amount < app.Config.Settlement.MinDepositAmount {
		return nil, common.NewValidationError("amount is below the minimum deposit")
	}
	if !common.IsValidPhone(request.BuyerPhone) {
		return nil, common.NewValidationError("invalid phone number")
	}

	wallet, err := findActiveWallet(request.PartnerID, request.UserID)
	if err != nil {
		return nil, err
	}

	// Keyless requests get a server generated key so they never collide
	// on the (user, idempotency key) unique index.
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = uuid.NewString()
	} else {
		var existing models.Deposit
		err := app.DB.FindOne(models.CollectionDeposits,
			bson.M{"user_id": request.UserID, "idempotency_key": request.IdempotencyKey}, &existing)
		if err == nil {
			return &existing, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	id := primitive.NewObjectID()
	now := time.Now()
	deposit := models.Deposit{
		Id:             &id,
		UserID:         request.UserID,
		PartnerID:      request.PartnerID,
		WalletAddress:  wallet.Address,
		Amount:         request.Amount,
		Status:         models.DepositStatusSubmitted,
		IdempotencyKey: request.IdempotencyKey,
		PspChannel:     psp.ChannelMobile,
		BuyerPhone:     common.NormalizePhone(request.BuyerPhone),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := app.DB.InsertOne(models.CollectionDeposits, deposit); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			var existing models.Deposit
			if err := app.DB.FindOne(models.CollectionDeposits,
				bson.M{"user_id": request.UserID, "idempotency_key": request.IdempotencyKey}, &existing); err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	result, err := client.InitiatePayment(psp.PaymentRequest{
		Amount: request.Amount,
		Phone:  deposit.BuyerPhone,
		Email:  request.BuyerEmail,
		Metadata: map[string]interface{}{
			"deposit_id": id.Hex(),
			"partner_id": request.PartnerID,
		},
	})
	if err != nil {
		log.Error("[MINT] Payment initiation failed for deposit ", id.Hex(), ": ", err)
		deposit.Status = models.DepositStatusRejected
		deposit.Error = err.Error()
		updateErr := app.DB.UpdateOne(models.CollectionDeposits,
			bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted},
			bson.M{"$set": bson.M{
				"status":     models.DepositStatusRejected,
				"error":      err.Error(),
				"updated_at": time.Now(),
			}})
		if updateErr != nil {
			log.Error("[MINT] Error rejecting deposit ", id.Hex(), ": ", updateErr)
		}
		return &deposit, err
	}

	deposit.PspReference = result.Reference
	err = app.DB.UpdateOne(models.CollectionDeposits,
		bson.M{"_id": deposit.Id},
		bson.M{"$set": bson.M{"psp_reference": result.Reference, "updated_at": time.Now()}})
	if err != nil {
		return nil, err
	}

	log.Info("[MINT] Created deposit ", id.Hex(), " for ", request.Amount, " TZS")

	app.RecordAudit("deposit_created", "deposit", id.Hex(), map[string]interface{}{
		"partner_id":    request.PartnerID,
		"user_id":       request.UserID,
		"amount":        request.Amount,
		"psp_reference": result.Reference,
	})

	return &deposit, nil
}

// RetryMint resets a failed mint so the executor picks it up again.
func RetryMint(depositID string) error {
	id, err := primitive.ObjectIDFromHex(depositID)
	if err != nil {
		return common.NewValidationError("invalid deposit id")
	}

	var updated models.Deposit
	err = app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": id, "status": models.DepositStatusMintFailed},
		bson.M{"$set": bson.M{
			"status":     models.DepositStatusMintPending,
			"error":      "",
			"updated_at": time.Now(),
		}},
		nil,
		&updated,
	)
	if err == mongo.ErrNoDocuments {
		return common.NewStateConflictError("deposit is not in mint_failed status")
	}
	if err != nil {
		return err
	}

	app.RecordAudit("mint_retried", "deposit", depositID, nil)
	return nil
}

// CancelDeposit cancels a deposit that has not yet confirmed fiat.
func CancelDeposit(depositID string) error {
	id, err := primitive.ObjectIDFromHex(depositID)
	if err != nil {
		return common.NewValidationError("invalid deposit id")
	}

	var updated models.Deposit
	err = app.DB.FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": id, "status": models.DepositStatusSubmitted},
		bson.M{"$set": bson.M{"status": models.DepositStatusCancelled, "updated_at": time.Now()}},
		nil,
		&updated,
	)
	if err == mongo.ErrNoDocuments {
		return common.NewStateConflictError("deposit can no longer be cancelled")
	}
	if err != nil {
		return err
	}

	app.RecordAudit("deposit_cancelled", "deposit", depositID, nil)
	return nil
}
