package burn

import (
	"errors"
	"math/big"
	"testing"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/psp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const testBurnerKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var testBurnerAddress = ethCommon.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

func executorConfig() {
	testConfig()
	app.Config.Ethereum.ChainID = "8453"
	app.Config.Ethereum.MinterPrivateKey = testBurnerKey
	app.Config.Ethereum.Confirmations = 1
	app.Config.Settlement.ReclaimAfterMillis = 0
}

func newClaimedBurn(amount int64) *models.Burn {
	burn := newStoredBurn(amount, models.BurnStatusBurnSubmitted)
	burn.WalletAddress = testWalletAddress
	burn.RecipientPhone = "255744123456"
	return &burn
}

func expectPreflightOK(client *ethereum.MockEthereumClient, token *ethereum.MockTokenContract, amount int64) {
	role := [32]byte{2}
	token.EXPECT().Paused(mock.Anything).Return(false, nil)
	token.EXPECT().BurnerRole(mock.Anything).Return(role, nil)
	token.EXPECT().HasRole(mock.Anything, role, testBurnerAddress).Return(true, nil)
	token.EXPECT().BalanceOf(mock.Anything, ethCommon.HexToAddress(testWalletAddress)).
		Return(common.AmountToWei(amount), nil)
	client.EXPECT().GetBalance(testBurnerAddress.Hex()).Return(big.NewInt(1e18), nil)
}

func newBurnTx() *types.Transaction {
	to := ethCommon.HexToAddress(testWalletAddress)
	return types.NewTx(&types.LegacyTx{
		Nonce:    2,
		GasPrice: big.NewInt(1e9),
		Gas:      100000,
		To:       &to,
	})
}

func TestClaimBurn(t *testing.T) {
	executorConfig()
	runner := &ExecutorRunner{}

	t.Run("claims the oldest approved burn", func(t *testing.T) {
		burn := newClaimedBurn(5000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionBurns,
			bson.M{"status": models.BurnStatusApproved}, mock.Anything, bson.M{"created_at": 1}, mock.Anything).
			Run(func(_ string, _ interface{}, _ interface{}, _ interface{}, result interface{}) {
				*result.(*models.Burn) = *burn
			}).Return(nil)

		claimed := runner.ClaimBurn()
		assert.NotNil(t, claimed)
		assert.Equal(t, burn.Id, claimed.Id)
	})

	t.Run("empty queue", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionBurns, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments)

		assert.Nil(t, runner.ClaimBurn())
	})
}

func TestHandleBurn(t *testing.T) {
	executorConfig()

	t.Run("burns and initiates the payout", func(t *testing.T) {
		burn := newClaimedBurn(5000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		client := ethereum.NewMockEthereumClient(t)
		token := ethereum.NewMockTokenContract(t)
		expectPreflightOK(client, token, 5000)

		tx := newBurnTx()
		token.EXPECT().Burn(mock.Anything, ethCommon.HexToAddress(testWalletAddress), common.AmountToWei(5000)).
			Return(tx, nil)

		mockDB.EXPECT().UpdateOne(models.CollectionBurns, bson.M{"_id": burn.Id}, mock.Anything).Return(nil)

		client.EXPECT().GetTransactionReceipt(tx.Hash().Hex()).
			Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(50)}, nil)
		client.EXPECT().GetBlockNumber().Return(uint64(50), nil)

		var finalize bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id, "status": models.BurnStatusBurnSubmitted}, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				finalize = u.(bson.M)
			}).Return(nil)

		mockPsp := psp.NewMockSnippeClient(t)
		var payout psp.PayoutRequest
		mockPsp.EXPECT().SendPayout(mock.Anything).
			Run(func(request psp.PayoutRequest) {
				payout = request
			}).Return(&psp.PayoutResult{Reference: "payout-1", Fee: 250}, nil)

		mockDB.EXPECT().InsertOne(models.CollectionWebhookEvents, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: client, token: token, psp: mockPsp, burnerAddress: testBurnerAddress}
		assert.True(t, runner.HandleBurn(burn))

		assert.Equal(t, models.BurnStatusBurned, finalize["$set"].(bson.M)["status"])
		assert.Equal(t, int64(5000), payout.Amount)
		assert.Equal(t, "255744123456", payout.Phone)
		assert.Equal(t, burn.Id.Hex(), payout.Metadata["burn_request_id"])
	})

	t.Run("payout failure does not revert the burn", func(t *testing.T) {
		burn := newClaimedBurn(5000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		client := ethereum.NewMockEthereumClient(t)
		token := ethereum.NewMockTokenContract(t)
		expectPreflightOK(client, token, 5000)

		tx := newBurnTx()
		token.EXPECT().Burn(mock.Anything, mock.Anything, mock.Anything).Return(tx, nil)

		mockDB.EXPECT().UpdateOne(models.CollectionBurns, bson.M{"_id": burn.Id}, mock.Anything).Return(nil)
		client.EXPECT().GetTransactionReceipt(tx.Hash().Hex()).
			Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(50)}, nil)
		client.EXPECT().GetBlockNumber().Return(uint64(50), nil)

		mockDB.EXPECT().UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id, "status": models.BurnStatusBurnSubmitted}, mock.Anything).Return(nil)

		mockPsp := psp.NewMockSnippeClient(t)
		mockPsp.EXPECT().SendPayout(mock.Anything).
			Return(nil, errors.New("Insufficient float"))

		mockDB.EXPECT().InsertOne(models.CollectionWebhookEvents, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: client, token: token, psp: mockPsp, burnerAddress: testBurnerAddress}
		assert.True(t, runner.HandleBurn(burn))
	})

	t.Run("insufficient balance fails without touching the chain", func(t *testing.T) {
		burn := newClaimedBurn(5000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		client := ethereum.NewMockEthereumClient(t)
		token := ethereum.NewMockTokenContract(t)
		role := [32]byte{2}
		token.EXPECT().Paused(mock.Anything).Return(false, nil)
		token.EXPECT().BurnerRole(mock.Anything).Return(role, nil)
		token.EXPECT().HasRole(mock.Anything, role, testBurnerAddress).Return(true, nil)
		token.EXPECT().BalanceOf(mock.Anything, mock.Anything).Return(common.AmountToWei(4999), nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionBurns, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: client, token: token, burnerAddress: testBurnerAddress}
		assert.False(t, runner.HandleBurn(burn))

		set := update["$set"].(bson.M)
		assert.Equal(t, models.BurnStatusFailed, set["status"])
		assert.Contains(t, set["error"], common.CodeInsufficientBalance)
	})

	t.Run("reverted burn fails permanently", func(t *testing.T) {
		burn := newClaimedBurn(5000)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		client := ethereum.NewMockEthereumClient(t)
		token := ethereum.NewMockTokenContract(t)
		expectPreflightOK(client, token, 5000)

		tx := newBurnTx()
		token.EXPECT().Burn(mock.Anything, mock.Anything, mock.Anything).Return(tx, nil)

		mockDB.EXPECT().UpdateOne(models.CollectionBurns, bson.M{"_id": burn.Id}, mock.Anything).Return(nil)
		client.EXPECT().GetTransactionReceipt(tx.Hash().Hex()).
			Return(&types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(50)}, nil)
		client.EXPECT().GetBlockNumber().Return(uint64(50), nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id, "status": models.BurnStatusBurnSubmitted}, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: client, token: token, burnerAddress: testBurnerAddress}
		assert.False(t, runner.HandleBurn(burn))
		assert.Equal(t, models.BurnStatusFailed, update["$set"].(bson.M)["status"])
	})
}

func TestCheckPendingPayouts(t *testing.T) {
	executorConfig()

	t.Run("completed payout updates the sub-state", func(t *testing.T) {
		burn := newClaimedBurn(5000)
		burn.Status = models.BurnStatusBurned
		burn.PayoutStatus = models.PayoutStatusPending
		burn.PayoutReference = "payout-1"

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindManyWithOptions(models.CollectionBurns, mock.Anything, mock.Anything, int64(50), mock.Anything).
			Run(func(_ string, _ interface{}, _ interface{}, _ int64, result interface{}) {
				*result.(*[]models.Burn) = []models.Burn{*burn}
			}).Return(nil)

		mockPsp := psp.NewMockSnippeClient(t)
		mockPsp.EXPECT().GetPayoutStatus("payout-1").
			Return(&psp.PayoutStatus{Status: psp.PayoutStatusCompleted}, nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionBurns,
			bson.M{"_id": burn.Id, "payout_status": models.PayoutStatusPending}, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)

		runner := &ExecutorRunner{psp: mockPsp}
		runner.CheckPendingPayouts()

		assert.Equal(t, models.PayoutStatusCompleted, update["$set"].(bson.M)["payout_status"])
	})

	t.Run("reversed payout records the failure reason", func(t *testing.T) {
		burn := newClaimedBurn(5000)
		burn.PayoutStatus = models.PayoutStatusPending
		burn.PayoutReference = "payout-2"

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindManyWithOptions(models.CollectionBurns, mock.Anything, mock.Anything, int64(50), mock.Anything).
			Run(func(_ string, _ interface{}, _ interface{}, _ int64, result interface{}) {
				*result.(*[]models.Burn) = []models.Burn{*burn}
			}).Return(nil)

		mockPsp := psp.NewMockSnippeClient(t)
		mockPsp.EXPECT().GetPayoutStatus("payout-2").
			Return(&psp.PayoutStatus{Status: psp.PayoutStatusReversed, FailureReason: "recipient blocked"}, nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionBurns, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)

		runner := &ExecutorRunner{psp: mockPsp}
		runner.CheckPendingPayouts()

		set := update["$set"].(bson.M)
		assert.Equal(t, models.PayoutStatusFailed, set["payout_status"])
		assert.Equal(t, "recipient blocked", set["payout_error"])
	})
}
