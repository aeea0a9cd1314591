package mint

import (
	"errors"
	"testing"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newSubmittedDeposit(amount int64) *models.Deposit {
	id := primitive.NewObjectID()
	return &models.Deposit{
		Id:            &id,
		UserID:        "user-1",
		PartnerID:     primitive.NewObjectID().Hex(),
		WalletAddress: testWalletAddress,
		Amount:        amount,
		Status:        models.DepositStatusSubmitted,
		PspReference:  "snippe-ref-1",
	}
}

func expectDepositCAS(mockDB *app.MockDatabase, deposit *models.Deposit) *bson.M {
	update := &bson.M{}
	mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits,
		bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted}, mock.Anything, nil, mock.Anything).
		Run(func(_ string, _ interface{}, u interface{}, _ interface{}, result interface{}) {
			*update = u.(bson.M)
			*result.(*models.Deposit) = *deposit
		}).Return(nil)
	return update
}

func TestApplyPaymentStatus(t *testing.T) {
	testConfig()

	t.Run("completed below the safe threshold", func(t *testing.T) {
		deposit := newSubmittedDeposit(8999)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		update := expectDepositCAS(mockDB, deposit)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		advanced := ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusCompleted})
		assert.True(t, advanced)

		set := (*update)["$set"].(bson.M)
		assert.Equal(t, models.DepositStatusMintPending, set["status"])
		assert.NotNil(t, set["fiat_confirmed_at"])
	})

	t.Run("completed at the safe threshold routes to safe", func(t *testing.T) {
		deposit := newSubmittedDeposit(9000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		update := expectDepositCAS(mockDB, deposit)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		assert.True(t, ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusCompleted}))
		assert.Equal(t, models.DepositStatusMintRequiresSafe, (*update)["$set"].(bson.M)["status"])
	})

	t.Run("already advanced deposit is not confirmed twice", func(t *testing.T) {
		deposit := newSubmittedDeposit(1000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits,
			bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted}, mock.Anything, nil, mock.Anything).
			Return(mongo.ErrNoDocuments)

		assert.False(t, ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusCompleted}))
	})

	t.Run("failed payment rejects and notifies", func(t *testing.T) {
		deposit := newSubmittedDeposit(1000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		update := expectDepositCAS(mockDB, deposit)
		mockDB.EXPECT().InsertOne(models.CollectionWebhookEvents, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		assert.True(t, ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusFailed}))

		set := (*update)["$set"].(bson.M)
		assert.Equal(t, models.DepositStatusRejected, set["status"])
		assert.Equal(t, "payment failed", set["error"])
	})

	t.Run("already advanced deposit is not rejected twice", func(t *testing.T) {
		deposit := newSubmittedDeposit(1000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionDeposits,
			bson.M{"_id": deposit.Id, "status": models.DepositStatusSubmitted}, mock.Anything, nil, mock.Anything).
			Return(mongo.ErrNoDocuments)

		assert.False(t, ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusFailed}))
	})

	t.Run("pending payment is a no-op", func(t *testing.T) {
		deposit := newSubmittedDeposit(1000)
		assert.False(t, ApplyPaymentStatus(deposit, &psp.PaymentStatus{Status: psp.PaymentStatusPending}))
	})
}

func TestMonitorHandleDeposit(t *testing.T) {
	testConfig()

	t.Run("processor error leaves the deposit untouched", func(t *testing.T) {
		deposit := newSubmittedDeposit(1000)

		mockClient := psp.NewMockSnippeClient(t)
		mockClient.EXPECT().GetPaymentStatus("snippe-ref-1").
			Return(nil, errors.New("connection refused"))

		runner := &MonitorRunner{client: mockClient}
		assert.False(t, runner.HandleDeposit(deposit))
	})
}

func TestCheckSubmittedDeposits(t *testing.T) {
	testConfig()

	deposit := newSubmittedDeposit(1000)

	mockDB := app.NewMockDatabase(t)
	app.DB = mockDB
	mockDB.EXPECT().FindManyWithOptions(models.CollectionDeposits, mock.Anything, bson.M{"created_at": 1}, int64(50), mock.Anything).
		Run(func(_ string, _ interface{}, _ interface{}, _ int64, result interface{}) {
			*result.(*[]models.Deposit) = []models.Deposit{*deposit}
		}).Return(nil)

	mockClient := psp.NewMockSnippeClient(t)
	mockClient.EXPECT().GetPaymentStatus("snippe-ref-1").
		Return(&psp.PaymentStatus{Status: psp.PaymentStatusPending}, nil)

	runner := &MonitorRunner{client: mockClient}
	runner.Run()

	assert.Equal(t, deposit.Id.Hex(), runner.Status().LastClaimed)
}
