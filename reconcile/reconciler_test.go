package reconcile

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	log.SetOutput(io.Discard)
}

func reconcileConfig() {
	app.Config.Ethereum.RPCTimeoutMillis = 1000
}

func expectSum(mockDB *app.MockDatabase, collection string, total int64) {
	mockDB.EXPECT().Aggregate(collection, mock.Anything, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			rows := result.(*[]totalRow)
			*rows = []totalRow{{Total: total}}
		}).Return(nil)
}

func TestGenerateReport(t *testing.T) {
	t.Run("supply fully reconciled", func(t *testing.T) {
		reconcileConfig()
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockToken := ethereum.NewMockTokenContract(t)

		mockToken.EXPECT().TotalSupply(mock.Anything).Return(common.AmountToWei(150000), nil)
		expectSum(mockDB, models.CollectionDeposits, 140000)
		expectSum(mockDB, models.CollectionReconciliationEntries, 10000)

		x := &ReconcilerRunner{token: mockToken}

		report, err := x.GenerateReport()
		assert.Nil(t, err)
		assert.Equal(t, int64(150000), report.OnChainSupply)
		assert.Equal(t, int64(140000), report.MintedTotal)
		assert.Equal(t, int64(10000), report.ReconciledTotal)
		assert.Equal(t, int64(0), report.Discrepancy)
	})

	t.Run("reports a positive discrepancy", func(t *testing.T) {
		reconcileConfig()
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockToken := ethereum.NewMockTokenContract(t)

		mockToken.EXPECT().TotalSupply(mock.Anything).Return(common.AmountToWei(150000), nil)
		expectSum(mockDB, models.CollectionDeposits, 140000)
		expectSum(mockDB, models.CollectionReconciliationEntries, 0)

		x := &ReconcilerRunner{token: mockToken}

		report, err := x.GenerateReport()
		assert.Nil(t, err)
		assert.Equal(t, int64(10000), report.Discrepancy)
	})

	t.Run("matches the minted filter", func(t *testing.T) {
		reconcileConfig()
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockToken := ethereum.NewMockTokenContract(t)

		mockToken.EXPECT().TotalSupply(mock.Anything).Return(common.AmountToWei(0), nil)
		mockDB.EXPECT().Aggregate(models.CollectionDeposits, mock.Anything, mock.Anything).
			Run(func(_ string, pipeline interface{}, _ interface{}) {
				stages := pipeline.([]bson.M)
				assert.Equal(t, bson.M{"status": models.DepositStatusMinted}, stages[0]["$match"])
			}).Return(nil)
		expectSum(mockDB, models.CollectionReconciliationEntries, 0)

		x := &ReconcilerRunner{token: mockToken}

		report, err := x.GenerateReport()
		assert.Nil(t, err)
		assert.Equal(t, int64(0), report.MintedTotal)
	})

	t.Run("supply read error is transient", func(t *testing.T) {
		reconcileConfig()
		app.DB = app.NewMockDatabase(t)
		mockToken := ethereum.NewMockTokenContract(t)

		mockToken.EXPECT().TotalSupply(mock.Anything).Return(nil, errors.New("rpc down"))

		x := &ReconcilerRunner{token: mockToken}

		report, err := x.GenerateReport()
		assert.Nil(t, report)
		assert.True(t, common.IsTransient(err))
	})
}

func TestReconcilerRun(t *testing.T) {
	t.Run("runs under the reconcile lock", func(t *testing.T) {
		reconcileConfig()
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB
		mockToken := ethereum.NewMockTokenContract(t)

		mockDB.EXPECT().XLock("reconcile").Return("lock-1", nil)
		mockToken.EXPECT().TotalSupply(mock.Anything).Return(common.AmountToWei(5000), nil)
		expectSum(mockDB, models.CollectionDeposits, 5000)
		expectSum(mockDB, models.CollectionReconciliationEntries, 0)
		mockDB.EXPECT().Unlock("lock-1").Return(nil)

		x := &ReconcilerRunner{token: mockToken}
		x.Run()

		assert.NotNil(t, x.lastReport)
		assert.Equal(t, int64(0), x.lastReport.Discrepancy)
	})

	t.Run("skips when the lock is held", func(t *testing.T) {
		reconcileConfig()
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().XLock("reconcile").Return("", errors.New("unable to acquire"))

		x := &ReconcilerRunner{token: ethereum.NewMockTokenContract(t)}
		x.Run()

		assert.Nil(t, x.lastReport)
	})
}

func TestAddEntry(t *testing.T) {
	entry := models.ReconciliationEntry{
		TxHash:    "0xABCDEF",
		ToAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Amount:    2500,
		EntryType: models.EntryTypeTestMint,
		Reason:    "launch rehearsal mint",
		CreatedBy: "ops-1",
	}

	t.Run("missing tx hash", func(t *testing.T) {
		app.DB = app.NewMockDatabase(t)

		bad := entry
		bad.TxHash = "   "
		created, err := AddEntry(bad)
		assert.Nil(t, created)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("invalid entry type", func(t *testing.T) {
		app.DB = app.NewMockDatabase(t)

		bad := entry
		bad.EntryType = "typo"
		_, err := AddEntry(bad)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("zero amount", func(t *testing.T) {
		app.DB = app.NewMockDatabase(t)

		bad := entry
		bad.Amount = 0
		_, err := AddEntry(bad)
		assert.True(t, common.IsValidation(err))
	})

	t.Run("records the entry", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		var inserted models.ReconciliationEntry
		mockDB.EXPECT().InsertOne(models.CollectionReconciliationEntries, mock.Anything).
			Run(func(_ string, data interface{}) {
				inserted = data.(models.ReconciliationEntry)
			}).Return(nil)
		mockDB.EXPECT().InsertOne(models.CollectionAuditLogs, mock.Anything).Return(nil)

		created, err := AddEntry(entry)
		assert.Nil(t, err)
		assert.Equal(t, "0xabcdef", created.TxHash)
		assert.Equal(t, "0xabcdef", inserted.TxHash)
		assert.Equal(t, int64(2500), inserted.Amount)
		assert.False(t, inserted.CreatedAt.IsZero())
	})

	t.Run("duplicate tx hash conflicts", func(t *testing.T) {
		mockDB := app.NewMockDatabase(t)
		app.DB = mockDB

		mockDB.EXPECT().InsertOne(models.CollectionReconciliationEntries, mock.Anything).
			Return(mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}})

		created, err := AddEntry(entry)
		assert.Nil(t, created)
		assert.True(t, common.IsStateConflict(err))
	})
}

func TestNewReconciler(t *testing.T) {
	t.Run("disabled returns the empty service", func(t *testing.T) {
		app.Config.Reconciler.Enabled = false

		service := NewReconciler(&sync.WaitGroup{}, models.ServiceHealth{})
		assert.Equal(t, models.EmptyServiceName, service.Health().Name)
	})
}
