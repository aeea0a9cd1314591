package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ntzs-io/ntzs-settlement/models"
)

// RunnerService drives a Runner in a poll loop and reports its health.
type RunnerService struct {
	name     string
	runner   models.Runner
	wg       *sync.WaitGroup
	interval time.Duration
	stop     chan bool

	healthMu sync.RWMutex
	health   models.ServiceHealth
}

func (x *RunnerService) Start() {
	log.Info("[", x.name, "] Starting service")
	stop := false
	for !stop {
		log.Info("[", x.name, "] Starting run")

		x.runner.Run()

		x.updateHealth()

		log.Info("[", x.name, "] Finished run, Sleeping for ", x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Info("[", x.name, "] Stopped service")
		case <-time.After(x.interval):
		}
	}
	x.wg.Done()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return x.health
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	lastSyncTime := time.Now()
	status := x.runner.Status()

	x.health = models.ServiceHealth{
		Name:           x.name,
		LastSyncTime:   lastSyncTime,
		NextSyncTime:   lastSyncTime.Add(x.interval),
		EthBlockNumber: status.EthBlockNumber,
		LastClaimed:    status.LastClaimed,
		Healthy:        true,
	}
}

func (x *RunnerService) Stop() {
	log.Debug("[", x.name, "] Stopping service")
	select {
	case x.stop <- true:
	default:
	}
}

func NewRunnerService(
	name string,
	runner models.Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) models.Service {
	if name == "" || runner == nil || wg == nil || interval == 0 {
		log.Error("[RUNNER] Invalid parameters for service: ", name)
		return nil
	}

	x := &RunnerService{
		name:     name,
		runner:   runner,
		wg:       wg,
		interval: interval,
		stop:     make(chan bool, 1),
	}

	x.updateHealth()

	return x
}
