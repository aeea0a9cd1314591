package app

import (
	"os"
	"strings"
	"time"

	ethCrypto "github.com/ethereum/go-ethereum/crypto"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/ntzs-io/ntzs-settlement/models"
)

const (
	HealthCheckName = "HEALTH"
	workerIDPrefix  = "ntzs-settlement"
)

type HealthCheckRunner struct {
	workerID      string
	hostname      string
	minterAddress string
	services      []models.Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) SetServices(services []models.Service) {
	x.services = services
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		health := service.Health()
		if health.Name == models.EmptyServiceName {
			continue
		}
		serviceHealths = append(serviceHealths, health)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{
		"worker_id": x.workerID,
		"hostname":  x.hostname,
	}
	err := DB.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) LastHealthByService() map[string]models.ServiceHealth {
	healthMap := make(map[string]models.ServiceHealth)
	if !Config.HealthCheck.ReadLastHealth {
		return healthMap
	}
	lastHealth, err := x.FindLastHealth()
	if err != nil {
		log.Warn("[HEALTH] Error getting last health: ", err)
		return healthMap
	}
	for _, serviceHealth := range lastHealth.ServiceHealths {
		healthMap[serviceHealth.Name] = serviceHealth
	}
	return healthMap
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{
		"worker_id": x.workerID,
		"hostname":  x.hostname,
	}

	onInsert := bson.M{
		"worker_id":      x.workerID,
		"hostname":       x.hostname,
		"minter_address": x.minterAddress,
		"created_at":     time.Now(),
	}

	onUpdate := bson.M{
		"service_healths": x.ServiceHealths(),
		"updated_at":      time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	err := DB.UpsertOne(models.CollectionHealthChecks, filter, update)

	if err != nil {
		log.Error("[HEALTH] Error posting health: ", err)
		return false
	}

	log.Info("[HEALTH] Posted health")
	return true
}

func NewHealthCheck() *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health check")

	privateKey, err := ethCrypto.HexToECDSA(strings.TrimPrefix(Config.Ethereum.MinterPrivateKey, "0x"))
	if err != nil {
		log.Fatal("[HEALTH] Error loading minter private key: ", err)
	}
	minterAddress := ethCrypto.PubkeyToAddress(privateKey.PublicKey).Hex()

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		workerID:      workerIDPrefix + "-01",
		hostname:      hostname,
		minterAddress: minterAddress,
	}

	log.Info("[HEALTH] Initialized health check")

	return x
}
