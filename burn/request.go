package burn

import (
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

type BurnRequest struct {
	PartnerID      string
	UserID         string
	Amount         int64
	RecipientPhone string
}

func findWallet(partnerID string, userID string) (*models.Wallet, error) {
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

// CreateBurnRequest records a withdrawal request. The user's on-chain balance
// is checked up front so an unfunded request never reaches the executor.
// Every request needs at least one human approval before burning.
func CreateBurnRequest(token ethereum.TokenContract, request BurnRequest) (*models.Burn, error) {
	if request.Amount < app.Config.Settlement.MinWithdrawalAmount {
		return nil, common.NewValidationError("amount is below the minimum withdrawal")
	}
	if !common.IsValidPhone(request.RecipientPhone) {
		return nil, common.NewValidationError("invalid phone number")
	}

	wallet, err := findWallet(request.PartnerID, request.UserID)
	if err != nil {
		return nil, err
	}

	opts, cancel := ethereum.NewCallOpts()
	defer cancel()
	balance, err := token.BalanceOf(opts, ethCommon.HexToAddress(wallet.Address))
	if err != nil {
		return nil, common.NewTransientError("error checking token balance", err)
	}
	if balance.Cmp(common.AmountToWei(request.Amount)) < 0 {
		return nil, common.NewValidationError("insufficient token balance")
	}

	id := primitive.NewObjectID()
	now := time.Now()
	burn := models.Burn{
		Id:             &id,
		UserID:         request.UserID,
		PartnerID:      request.PartnerID,
		WalletAddress:  wallet.Address,
		Amount:         request.Amount,
		Status:         models.BurnStatusRequested,
		RecipientPhone: common.NormalizePhone(request.RecipientPhone),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := app.DB.InsertOne(models.CollectionBurns, burn); err != nil {
		return nil, err
	}

	log.Info("[BURN] Created burn request ", id.Hex(), " for ", request.Amount, " TZS")

	app.RecordAudit("burn_requested", "burn", id.Hex(), map[string]interface{}{
		"partner_id": request.PartnerID,
		"user_id":    request.UserID,
		"amount":     request.Amount,
	})

	return &burn, nil
}

// Approve applies one approval to a burn request. Amounts at or above the
// second approval threshold need two distinct approvers.
func Approve(burnID string, approverID string) (*models.Burn, error) {
	id, err := primitive.ObjectIDFromHex(burnID)
	if err != nil {
		return nil, common.NewValidationError("invalid burn id")
	}
	if approverID == "" {
		return nil, common.NewValidationError("approver id is required")
	}

	var burn models.Burn
	if err := app.DB.FindOne(models.CollectionBurns, bson.M{"_id": id}, &burn); err != nil {
		return nil, err
	}

	now := time.Now()
	switch burn.Status {
	case models.BurnStatusRequested:
		next := models.BurnStatusApproved
		if burn.Amount >= app.Config.Settlement.SecondApprovalThreshold {
			next = models.BurnStatusRequiresSecondApproval
		}

		var updated models.Burn
		err := app.DB.FindOneAndUpdate(models.CollectionBurns,
			bson.M{"_id": id, "status": models.BurnStatusRequested},
			bson.M{"$set": bson.M{
				"status":            next,
				"first_approver_id": approverID,
				"first_approved_at": now,
				"updated_at":        now,
			}},
			nil,
			&updated,
		)
		if err == mongo.ErrNoDocuments {
			return nil, common.NewStateConflictError("burn request was updated concurrently")
		}
		if err != nil {
			return nil, err
		}

		app.RecordAudit("burn_approved", "burn", burnID, map[string]interface{}{
			"approver_id": approverID,
			"status":      next,
		})
		return &updated, nil

	case models.BurnStatusRequiresSecondApproval:
		if approverID == burn.FirstApproverID {
			return nil, common.NewStateConflictError("second approval requires a different approver")
		}

		var updated models.Burn
		err := app.DB.FindOneAndUpdate(models.CollectionBurns,
			bson.M{"_id": id, "status": models.BurnStatusRequiresSecondApproval},
			bson.M{"$set": bson.M{
				"status":             models.BurnStatusApproved,
				"second_approver_id": approverID,
				"second_approved_at": now,
				"updated_at":         now,
			}},
			nil,
			&updated,
		)
		if err == mongo.ErrNoDocuments {
			return nil, common.NewStateConflictError("burn request was updated concurrently")
		}
		if err != nil {
			return nil, err
		}

		app.RecordAudit("burn_approved", "burn", burnID, map[string]interface{}{
			"approver_id": approverID,
			"status":      models.BurnStatusApproved,
			"second":      true,
		})
		return &updated, nil

	default:
		return nil, common.NewStateConflictError("burn request cannot be approved in status " + burn.Status)
	}
}

// Reject declines a burn request that has not been fully approved.
func Reject(burnID string, approverID string, reason string) error {
	id, err := primitive.ObjectIDFromHex(burnID)
	if err != nil {
		return common.NewValidationError("invalid burn id")
	}

	var updated models.Burn
	err = app.DB.FindOneAndUpdate(models.CollectionBurns,
		bson.M{"_id": id, "status": bson.M{"$in": []string{
			models.BurnStatusRequested,
			models.BurnStatusRequiresSecondApproval,
		}}},
		bson.M{"$set": bson.M{
			"status":     models.BurnStatusRejected,
			"error":      reason,
			"updated_at": time.Now(),
		}},
		nil,
		&updated,
	)
	if err == mongo.ErrNoDocuments {
		return common.NewStateConflictError("burn request can no longer be rejected")
	}
	if err != nil {
		return err
	}

	app.RecordAudit("burn_rejected", "burn", burnID, map[string]interface{}{
		"approver_id": approverID,
		"reason":      reason,
	})
	return nil
}
