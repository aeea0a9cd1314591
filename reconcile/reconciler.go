package reconcile

import (
	"sync"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"go.mongodb.org/mongo-driver/bson"

	ethCommon "github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
)

const (
	ReconcilerName = "RECONCILER"

	lockResource = "reconcile"
)

type ReconcilerRunner struct {
	token      ethereum.TokenContract
	lastReport *models.SupplyReport
}

func (x *ReconcilerRunner) Run() {
	lockID, err := app.DB.XLock(lockResource)
	if err != nil {
		log.Debug("[RECONCILE] Another worker holds the reconcile lock: ", err)
		return
	}
	defer func() {
		if err := app.DB.Unlock(lockID); err != nil {
			log.Error("[RECONCILE] Error releasing reconcile lock: ", err)
		}
	}()

	report, err := x.GenerateReport()
	if err != nil {
		log.Error("[RECONCILE] Error generating supply report: ", err)
		return
	}
	x.lastReport = report
}

func (x *ReconcilerRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

type totalRow struct {
	Total int64 `bson:"total"`
}

func sumAmounts(collection string, match bson.M) (int64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}},
	}

	rows := []totalRow{}
	if err := app.DB.Aggregate(collection, pipeline, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// GenerateReport compares on-chain supply against the minted ledger plus
// reconciliation entries. Read only, ledger rows are never touched.
func (x *ReconcilerRunner) GenerateReport() (*models.SupplyReport, error) {
	opts, cancel := ethereum.NewCallOpts()
	defer cancel()

	supplyWei, err := x.token.TotalSupply(opts)
	if err != nil {
		return nil, common.NewTransientError("error reading total supply", err)
	}
	supply := common.WeiToAmount(supplyWei)

	minted, err := sumAmounts(models.CollectionDeposits, bson.M{"status": models.DepositStatusMinted})
	if err != nil {
		return nil, err
	}

	reconciled, err := sumAmounts(models.CollectionReconciliationEntries, bson.M{})
	if err != nil {
		return nil, err
	}

	report := &models.SupplyReport{
		OnChainSupply:   supply,
		MintedTotal:     minted,
		ReconciledTotal: reconciled,
		Discrepancy:     supply - (minted + reconciled),
		GeneratedAt:     time.Now(),
	}

	if report.Discrepancy != 0 {
		log.Warn("[RECONCILE] Supply discrepancy: ", report.Discrepancy,
			" TZS (supply ", supply, ", minted ", minted, ", reconciled ", reconciled, ")")
	} else {
		log.Info("[RECONCILE] Supply reconciled: ", supply, " TZS")
	}

	return report, nil
}

func NewReconciler(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.Reconciler.Enabled {
		log.Debug("[RECONCILE] Reconciler disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[RECONCILE] Initializing reconciler")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[RECONCILE] Error initializing ethereum client: ", err)
	}

	token, err := ethereum.NewTokenContract(ethCommon.HexToAddress(app.Config.Ethereum.TokenAddress), client.GetClient())
	if err != nil {
		log.Fatal("[RECONCILE] Error initializing token contract: ", err)
	}

	x := &ReconcilerRunner{
		token: token,
	}

	log.Info("[RECONCILE] Initialized reconciler")

	return app.NewRunnerService(ReconcilerName, x, wg, time.Duration(app.Config.Reconciler.IntervalMillis)*time.Millisecond)
}
