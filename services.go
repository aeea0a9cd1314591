package main

import (
	"sync"

	"github.com/ntzs-io/ntzs-settlement/burn"
	"github.com/ntzs-io/ntzs-settlement/mint"
	"github.com/ntzs-io/ntzs-settlement/models"
	"github.com/ntzs-io/ntzs-settlement/reconcile"
	"github.com/ntzs-io/ntzs-settlement/transfer"
	"github.com/ntzs-io/ntzs-settlement/wallet"
	"github.com/ntzs-io/ntzs-settlement/webhook"
)

type ServiceFactory func(*sync.WaitGroup, models.ServiceHealth) models.Service

func CreateService(
	wg *sync.WaitGroup,
	serviceName string,
	serviceHealthMap map[string]models.ServiceHealth,
	factory ServiceFactory,
) models.Service {
	serviceHealth := serviceHealthMap[serviceName]
	return factory(wg, serviceHealth)
}

func GetServiceFactories() map[string]ServiceFactory {
	services := map[string]ServiceFactory{
		wallet.ProvisionerName:   wallet.NewProvisioner,
		mint.MonitorName:         mint.NewMonitor,
		mint.ExecutorName:        mint.NewExecutor,
		mint.SafeMonitorName:     mint.NewSafeMonitor,
		burn.ExecutorName:        burn.NewExecutor,
		transfer.ExecutorName:    transfer.NewExecutor,
		webhook.DispatcherName:   webhook.NewDispatcher,
		reconcile.ReconcilerName: reconcile.NewReconciler,
	}

	return services
}
