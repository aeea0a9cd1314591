package transfer

import (
	"math/big"
	"testing"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	testSeedKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testMnemonic   = "test test test test test test test test test test test junk"
)

func executorConfig() {
	app.Config.Settlement.SeedEncryptionKey = testSeedKeyHex
	app.Config.Ethereum.ChainID = "8453"
	app.Config.Ethereum.Confirmations = 1
	app.Config.Ethereum.RPCTimeoutMillis = 1000
}

func newSeededPartner(t *testing.T) *models.Partner {
	partnerID := primitive.NewObjectID()
	key, err := common.SeedEncryptionKeyFromHex(testSeedKeyHex)
	assert.Nil(t, err)
	encrypted, err := common.EncryptSeed(testMnemonic, key)
	assert.Nil(t, err)
	return &models.Partner{
		Id:            &partnerID,
		Active:        true,
		EncryptedSeed: encrypted,
	}
}

func newProcessingTransfer(t *testing.T, partner *models.Partner) *models.Transfer {
	fromAddress, err := common.EthereumAddressFromMnemonic(testMnemonic, 0)
	assert.Nil(t, err)
	toAddress, err := common.EthereumAddressFromMnemonic(testMnemonic, 1)
	assert.Nil(t, err)

	id := primitive.NewObjectID()
	return &models.Transfer{
		Id:          &id,
		PartnerID:   partner.Id.Hex(),
		FromUserID:  "user-1",
		ToUserID:    "user-2",
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      1000,
		Status:      models.TransferStatusProcessing,
	}
}

func TestClaimTransfer(t *testing.T) {
	executorConfig()
	runner := &ExecutorRunner{}

	t.Run("claims the oldest pending transfer", func(t *testing.T) {
		partner := newSeededPartner(t)
		transfer := newProcessingTransfer(t, partner)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionTransfers,
			bson.M{"status": models.TransferStatusPending}, mock.Anything, bson.M{"created_at": 1}, mock.Anything).
			Run(func(_ string, _ interface{}, _ interface{}, _ interface{}, result interface{}) {
				*result.(*models.Transfer) = *transfer
			}).Return(nil)

		claimed := runner.ClaimTransfer()
		assert.NotNil(t, claimed)
		assert.Equal(t, transfer.Id, claimed.Id)
	})

	t.Run("empty queue", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOneAndUpdate(models.CollectionTransfers, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(mongo.ErrNoDocuments)

		assert.Nil(t, runner.ClaimTransfer())
	})
}

func TestHandleTransfer(t *testing.T) {
	executorConfig()

	t.Run("signs with the derived key and completes", func(t *testing.T) {
		partner := newSeededPartner(t)
		transfer := newProcessingTransfer(t, partner)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		token := ethereum.NewMockTokenContract(t)
		token.EXPECT().BalanceOf(mock.Anything, ethCommon.HexToAddress(transfer.FromAddress)).
			Return(common.AmountToWei(1000), nil)

		mockDB.EXPECT().FindOne(models.CollectionPartners, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Partner) = *partner
			}).Return(nil)
		mockDB.EXPECT().FindOne(models.CollectionWallets, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Wallet) = models.Wallet{
					UserID:          "user-1",
					Address:         transfer.FromAddress,
					DerivationIndex: 0,
					Status:          models.WalletStatusActive,
				}
			}).Return(nil)

		to := ethCommon.HexToAddress(transfer.ToAddress)
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    0,
			GasPrice: big.NewInt(1e9),
			Gas:      100000,
			To:       &to,
		})
		token.EXPECT().Transfer(mock.Anything, to, common.AmountToWei(1000)).Return(tx, nil)

		client := ethereum.NewMockEthereumClient(t)
		mockDB.EXPECT().UpdateOne(models.CollectionTransfers, bson.M{"_id": transfer.Id}, mock.Anything).Return(nil)
		client.EXPECT().GetTransactionReceipt(tx.Hash().Hex()).
			Return(&types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(10)}, nil)
		client.EXPECT().GetBlockNumber().Return(uint64(10), nil)

		var finalize bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionTransfers,
			bson.M{"_id": transfer.Id, "status": models.TransferStatusProcessing}, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				finalize = u.(bson.M)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionWebhookEvents, mock.Anything).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: client, token: token}
		assert.True(t, runner.HandleTransfer(transfer))
		assert.Equal(t, models.TransferStatusCompleted, finalize["$set"].(bson.M)["status"])
	})

	t.Run("insufficient sender balance", func(t *testing.T) {
		partner := newSeededPartner(t)
		transfer := newProcessingTransfer(t, partner)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		token := ethereum.NewMockTokenContract(t)
		token.EXPECT().BalanceOf(mock.Anything, mock.Anything).Return(common.AmountToWei(999), nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionTransfers, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: ethereum.NewMockEthereumClient(t), token: token}
		assert.False(t, runner.HandleTransfer(transfer))

		set := update["$set"].(bson.M)
		assert.Equal(t, models.TransferStatusFailed, set["status"])
		assert.Contains(t, set["error"], common.CodeInsufficientBalance)
	})

	t.Run("derived sender mismatch fails the transfer", func(t *testing.T) {
		partner := newSeededPartner(t)
		transfer := newProcessingTransfer(t, partner)

		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		token := ethereum.NewMockTokenContract(t)
		token.EXPECT().BalanceOf(mock.Anything, mock.Anything).Return(common.AmountToWei(1000), nil)

		mockDB.EXPECT().FindOne(models.CollectionPartners, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Partner) = *partner
			}).Return(nil)
		mockDB.EXPECT().FindOne(models.CollectionWallets, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.Wallet) = models.Wallet{
					UserID:          "user-1",
					Address:         transfer.FromAddress,
					DerivationIndex: 5,
					Status:          models.WalletStatusActive,
				}
			}).Return(nil)

		var update bson.M
		mockDB.EXPECT().UpdateOne(models.CollectionTransfers, mock.Anything, mock.Anything).
			Run(func(_ string, _ interface{}, u interface{}) {
				update = u.(bson.M)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		runner := &ExecutorRunner{client: ethereum.NewMockEthereumClient(t), token: token}
		assert.False(t, runner.HandleTransfer(transfer))
		assert.Equal(t, models.TransferStatusFailed, update["$set"].(bson.M)["status"])
	})
}
