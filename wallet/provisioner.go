package wallet

import (
	"sync"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/webhook"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	log "github.com/sirupsen/logrus"
)

const (
	ProvisionerName = "WALLET PROVISIONER"
)

type ProvisionerRunner struct {
	client       ethereum.EthereumClient
	lastWalletID string
}

func (x *ProvisionerRunner) Run() {
	x.ReclaimStale()
	x.ProvisionPending()
}

func (x *ProvisionerRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		LastClaimed: x.lastWalletID,
	}
}

// ClaimPendingWallet atomically claims the oldest pending wallet by flipping
// it to provisioning. Returns nil when the queue is empty.
func (x *ProvisionerRunner) ClaimPendingWallet() *models.Wallet {
	filter := bson.M{"status": models.WalletStatusPending}
	update := bson.M{"$set": bson.M{
		"status":     models.WalletStatusProvisioning,
		"claimed_at": time.Now(),
		"updated_at": time.Now(),
	}}
	sort := bson.M{"created_at": 1}

	wallet := &models.Wallet{}
	err := app.DB.FindOneAndUpdate(models.CollectionWallets, filter, update, sort, wallet)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Error("[WALLET] Error claiming pending wallet: ", err)
		}
		return nil
	}
	return wallet
}

// ReclaimStale resets provisioning claims whose worker died before
// activating the wallet.
func (x *ProvisionerRunner) ReclaimStale() {
	window := app.Config.Settlement.ReclaimAfterMillis
	if window <= 0 {
		return
	}

	cutoff := time.Now().Add(-time.Duration(window) * time.Millisecond)
	for {
		var reclaimed models.Wallet
		err := app.DB.FindOneAndUpdate(models.CollectionWallets,
			bson.M{
				"status":     models.WalletStatusProvisioning,
				"claimed_at": bson.M{"$lt": cutoff},
			},
			bson.M{"$set": bson.M{
				"status":     models.WalletStatusPending,
				"claimed_at": nil,
				"updated_at": time.Now(),
			}},
			bson.M{"claimed_at": 1},
			&reclaimed,
		)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				log.Error("[WALLET] Error reclaiming stale wallets: ", err)
			}
			return
		}
		log.Warn("[WALLET] Reclaimed stale wallet: ", reclaimed.Id.Hex())
	}
}

func (x *ProvisionerRunner) markFailed(wallet *models.Wallet, reason string) {
	filter := bson.M{"_id": wallet.Id, "status": models.WalletStatusProvisioning}
	update := bson.M{"$set": bson.M{
		"status":     models.WalletStatusFailed,
		"error":      reason,
		"updated_at": time.Now(),
	}}
	if err := app.DB.UpdateOne(models.CollectionWallets, filter, update); err != nil {
		log.Error("[WALLET] Error marking wallet failed ", wallet.Id.Hex(), ": ", err)
		return
	}

	app.RecordAudit("wallet_provision_failed", "wallet", wallet.Id.Hex(), map[string]interface{}{
		"partner_id": wallet.PartnerID,
		"user_id":    wallet.UserID,
		"error":      reason,
	})
}

// HandleWallet derives the wallet's address from the partner seed, activates
// it and prefunds gas. Returns true when the wallet was activated. Prefund,
// webhook and audit only run when this worker's activation CAS matched.
func (x *ProvisionerRunner) HandleWallet(wallet *models.Wallet) bool {
	if wallet == nil || wallet.Id == nil {
		log.Error("[WALLET] Invalid pending wallet")
		return false
	}

	partner, err := findPartner(wallet.PartnerID)
	if err != nil {
		log.Error("[WALLET] Error fetching partner for wallet ", wallet.Id.Hex(), ": ", err)
		x.markFailed(wallet, "partner lookup failed: "+err.Error())
		return false
	}

	if _, err := EnsureSeed(partner); err != nil {
		log.Error("[WALLET] Error ensuring seed for partner ", wallet.PartnerID, ": ", err)
		x.markFailed(wallet, "seed bootstrap failed: "+err.Error())
		return false
	}

	address, err := DeriveAddress(partner, wallet.DerivationIndex)
	if err != nil {
		log.Error("[WALLET] Error deriving address for wallet ", wallet.Id.Hex(), ": ", err)
		x.markFailed(wallet, "address derivation failed: "+err.Error())
		return false
	}

	filter := bson.M{"_id": wallet.Id, "status": models.WalletStatusProvisioning}
	update := bson.M{"$set": bson.M{
		"address":    address,
		"status":     models.WalletStatusActive,
		"claimed_at": nil,
		"updated_at": time.Now(),
	}}
	var activated models.Wallet
	if err := app.DB.FindOneAndUpdate(models.CollectionWallets, filter, update, nil, &activated); err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn("[WALLET] Lost activation for wallet ", wallet.Id.Hex())
		} else {
			log.Error("[WALLET] Error activating wallet ", wallet.Id.Hex(), ": ", err)
		}
		return false
	}

	log.Info("[WALLET] Provisioned wallet ", wallet.Id.Hex(), " at ", address)

	PrefundGas(x.client, address)

	err = webhook.QueueEvent(wallet.PartnerID, models.EventWalletProvisioned, map[string]interface{}{
		"wallet_id": wallet.Id.Hex(),
		"user_id":   wallet.UserID,
		"chain":     wallet.Chain,
		"address":   address,
	})
	if err != nil {
		log.Error("[WALLET] Error queueing provisioned event for wallet ", wallet.Id.Hex(), ": ", err)
	}

	app.RecordAudit("wallet_provisioned", "wallet", wallet.Id.Hex(), map[string]interface{}{
		"partner_id": wallet.PartnerID,
		"user_id":    wallet.UserID,
		"address":    address,
	})

	return true
}

func (x *ProvisionerRunner) ProvisionPending() {
	for {
		wallet := x.ClaimPendingWallet()
		if wallet == nil {
			return
		}
		x.lastWalletID = wallet.Id.Hex()
		x.HandleWallet(wallet)
	}
}

func NewProvisioner(wg *sync.WaitGroup, lastHealth models.ServiceHealth) models.Service {
	if !app.Config.WalletProvisioner.Enabled {
		log.Debug("[WALLET] Provisioner disabled")
		return models.NewEmptyService(wg)
	}

	log.Debug("[WALLET] Initializing provisioner")

	client, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[WALLET] Error initializing ethereum client: ", err)
	}

	x := &ProvisionerRunner{
		client: client,
	}

	log.Info("[WALLET] Initialized provisioner")

	return app.NewRunnerService(ProvisionerName, x, wg, time.Duration(app.Config.WalletProvisioner.IntervalMillis)*time.Millisecond)
}
