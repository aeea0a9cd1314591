package mint

import (
	"errors"
	"io"
	"testing"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	log.SetOutput(io.Discard)
}

const testWalletAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

func testConfig() {
	app.Config.Settlement.MinDepositAmount = 500
	app.Config.Settlement.MinWithdrawalAmount = 1000
	app.Config.Settlement.SafeMintThreshold = 9000
	app.Config.Settlement.SecondApprovalThreshold = 100000
	app.Config.Settlement.DailyIssuanceCap = 100000000
}

func newDepositRequest() DepositRequest {
	return DepositRequest{
		PartnerID:      primitive.NewObjectID().Hex(),
		UserID:         "user-1",
		Amount:         1000,
		BuyerPhone:     "0744123456",
		IdempotencyKey: "key-1",
	}
}

func expectWallet(mockDB *app.MockDatabase, status string) {
	mockDB.EXPECT().FindOne(models.CollectionWallets, mock.Anything, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			*result.(*models.Wallet) = models.Wallet{
				Address: testWalletAddress,
				Status:  status,
			}
		}).Return(nil)
}

func TestCreateDeposit(t *testing.T) {
	testConfig()

	t.Run("amount below minimum", func(t *testing.T) {
		request := newDepositRequest()
		request.Amount = 499

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), request)
		assert.Nil(t, deposit)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("invalid phone", func(t *testing.T) {
		request := newDepositRequest()
		request.BuyerPhone = "12345"

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), request)
		assert.Nil(t, deposit)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("no wallet", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOne(models.CollectionWallets, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments)

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), newDepositRequest())
		assert.Nil(t, deposit)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("unprovisioned wallet", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusPending)

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), newDepositRequest())
		assert.Nil(t, deposit)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("idempotency key returns the existing deposit", func(t *testing.T) {
		existingID := primitive.NewObjectID()

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusActive)
		mockDB.EXPECT().FindOne(models.CollectionDeposits,
			bson.M{"user_id": "user-1", "idempotency_key": "key-1"}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Deposit) = models.Deposit{Id: &existingID, Status: models.DepositStatusSubmitted}
			}).Return(nil)

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), newDepositRequest())
		assert.Nil(t, err)
		assert.Equal(t, &existingID, deposit.Id)
	})

	t.Run("successful creation initiates collection", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusActive)
		mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments)

		var inserted models.Deposit
		mockDB.EXPECT().InsertOne(models.CollectionDeposits, mock.Anything).
			Run(func(_ string, data interface{}) {
				inserted = data.(models.Deposit)
			}).Return(nil)

		mockClient := psp.NewMockSnippeClient(t)
		var paymentRequest psp.PaymentRequest
		mockClient.EXPECT().InitiatePayment(mock.Anything).
			Run(func(request psp.PaymentRequest) {
				paymentRequest = request
			}).Return(&psp.PaymentResult{Reference: "snippe-ref-1"}, nil)

		mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		deposit, err := CreateDeposit(mockClient, newDepositRequest())
		assert.Nil(t, err)
		assert.Equal(t, models.DepositStatusSubmitted, deposit.Status)
		assert.Equal(t, "snippe-ref-1", deposit.PspReference)
		assert.Equal(t, "255744123456", deposit.BuyerPhone)
		assert.Equal(t, testWalletAddress, deposit.WalletAddress)
		assert.Equal(t, inserted.Id, deposit.Id)
		assert.Equal(t, int64(1000), paymentRequest.Amount)
		assert.Equal(t, deposit.Id.Hex(), paymentRequest.Metadata["deposit_id"])
	})

	t.Run("keyless request gets a generated key", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusActive)

		var inserted models.Deposit
		mockDB.EXPECT().InsertOne(models.CollectionDeposits, mock.Anything).
			Run(func(_ string, data interface{}) {
				inserted = data.(models.Deposit)
			}).Return(nil)

		mockClient := psp.NewMockSnippeClient(t)
		mockClient.EXPECT().InitiatePayment(mock.Anything).
			Return(&psp.PaymentResult{Reference: "snippe-ref-2"}, nil)

		mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		request := newDepositRequest()
		request.IdempotencyKey = ""

		deposit, err := CreateDeposit(mockClient, request)
		assert.Nil(t, err)
		assert.NotEmpty(t, inserted.IdempotencyKey)
		assert.Equal(t, inserted.IdempotencyKey, deposit.IdempotencyKey)

		second := newDepositRequest()
		second.IdempotencyKey = ""
		mockDB2 := app.NewMockDatabase(t)
		app.DB = mockDB2
		expectWallet(mockDB2, models.WalletStatusActive)

		var secondInserted models.Deposit
		mockDB2.EXPECT().InsertOne(models.CollectionDeposits, mock.Anything).
			Run(func(_ string, data interface{}) {
				secondInserted = data.(models.Deposit)
			}).Return(nil)
		mockClient2 := psp.NewMockSnippeClient(t)
		mockClient2.EXPECT().InitiatePayment(mock.Anything).
			Return(&psp.PaymentResult{Reference: "snippe-ref-3"}, nil)
		mockDB2.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).Return(nil)
		mockDB2.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		_, err = CreateDeposit(mockClient2, second)
		assert.Nil(t, err)
		assert.NotEqual(t, inserted.IdempotencyKey, secondInserted.IdempotencyKey)
	})

	t.Run("processor refusal rejects the deposit", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusActive)
		mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments)
		mockDB.EXPECT().InsertOne(models.CollectionDeposits, mock.Anything).Return(nil)

		mockClient := psp.NewMockSnippeClient(t)
		mockClient.EXPECT().InitiatePayment(mock.Anything).
			Return(nil, errors.New("Invalid phone number"))

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionDeposits, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)

		deposit, err := CreateDeposit(mockClient, newDepositRequest())
		assert.NotNil(t, err)
		assert.Equal(t, models.DepositStatusRejected, deposit.Status)
		assert.Equal(t, "Invalid phone number", deposit.Error)
		assert.Equal(t, models.DepositStatusRejected, update["$set"].(bson.M)["status"])
	})

	t.Run("duplicate insert resolves to the existing deposit", func(t *testing.T) {
		existingID := primitive.NewObjectID()

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		expectWallet(mockDB, models.WalletStatusActive)
		mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments).Once()
		mockDB.EXPECT().InsertOne(models.CollectionDeposits, mock.Anything).
			Return(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}})
		mockDB.EXPECT().FindOne(models.CollectionDeposits, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Deposit) = models.Deposit{Id: &existingID}
			}).Return(nil).Once()

		deposit, err := CreateDeposit(psp.NewMockSnippeClient(t), newDepositRequest())
		assert.Nil(t, err)
		assert.Equal(t, &existingID, deposit.Id)
	})
}

func TestRetryMint(t *testing.T) {
	t.Run("resets a failed mint", func(t *testing.T) {
		id := primitive.NewObjectID()

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits,
			bson.M{"_id": id, "status": models.DepositStatusMintFailed}, mock.Anything, nil, mock.Anything).
			Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		assert.Nil(t, RetryMint(id.Hex()))
	})

	t.Run("deposit not failed", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits, mock.Anything, mock.Anything, nil, mock.Anything).
			Return(mongo.ErrNoDocuments)

		err := RetryMint(primitive.NewObjectID().Hex())
		assert.True(t, common.IsStateConflict(err))
	})

	t.Run("invalid id", func(t *testing.T) {
		assert.True(t, common.IsValidation(RetryMint("nope")))
	})
}

func TestCancelDeposit(t *testing.T) {
	t.Run("cancels a submitted deposit", func(t *testing.T) {
		id := primitive.NewObjectID()

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits,
			bson.M{"_id": id, "status": models.DepositStatusSubmitted}, mock.Anything, nil, mock.Anything).
			Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		assert.Nil(t, CancelDeposit(id.Hex()))
	})

	t.Run("deposit already advanced", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits, mock.Anything, mock.Anything, nil, mock.Anything).
			Return(mongo.ErrNoDocuments)

		err := CancelDeposit(primitive.NewObjectID().Hex())
		assert.True(t, common.IsStateConflict(err))
	})
}
