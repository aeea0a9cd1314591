package transfer

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

type TransferRequest struct {
	PartnerID  string
	FromUserID string
	ToUserID   string
	Amount     int64
}

func findActiveWallet(partnerID string, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	err := app.DB.FindOne(models.CollectionWallets,
		bson.M{"partner_id": partnerID, "user_id": userID}, &wallet)
	if err == mongo.ErrNoDocuments {
		return nil, common.NewValidationError("user " + userID + " has no wallet")
	}
	if err != nil {
		return nil, err
	}
	if wallet.Status != models.WalletStatusActive {
		return nil, common.NewValidationError("wallet for user " + userID + " is not provisioned yet")
	}
	return &wallet, nil
}

// CreateTransfer queues a user to user token transfer for the executor.
func CreateTransfer(request TransferRequest) (*models.Transfer, error) {
	if request.Amount <= 0 {
		return nil, common.NewValidationError("amount must be positive")
	}
	if request.FromUserID == request.ToUserID {
		return nil, common.NewValidationError("cannot transfer to the same user")
	}

	from, err := findActiveWallet(request.PartnerID, request.FromUserID)
	if err != nil {
		return nil, err
	}
	to, err := findActiveWallet(request.PartnerID, request.ToUserID)
	if err != nil {
		return nil, err
	}

	id := primitive.NewObjectID()
	now := time.Now()
	transfer := models.Transfer{
		Id:          &id,
		PartnerID:   request.PartnerID,
		FromUserID:  request.FromUserID,
		ToUserID:    request.ToUserID,
		FromAddress: from.Address,
		ToAddress:   to.Address,
		Amount:      request.Amount,
		Status:      models.TransferStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := app.DB.InsertOne(models.CollectionTransfers, transfer); err != nil {
		return nil, err
	}

	log.Info("[TRANSFER] Created transfer ", id.Hex(), " of ", request.Amount, " TZS")

	app.RecordAudit("transfer_created", "transfer", id.Hex(), map[string]interface{}{
		"partner_id":   request.PartnerID,
		"from_user_id": request.FromUserID,
		"to_user_id":   request.ToUserID,
		"amount":       request.Amount,
	})

	return &transfer, nil
}
