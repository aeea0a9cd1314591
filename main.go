package main

import (
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ntzs-io/ntzs-settlement/app"
	"github.com/ntzs-io/ntzs-settlement/ethereum"
	"github.com/ntzs-io/ntzs-settlement/models"
	log "github.com/sirupsen/logrus"
)

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var yamlPath string
	var envPath string
	flag.StringVar(&yamlPath, "yaml", "", "path to yaml config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	app.InitConfig(yamlPath, envPath)
	app.InitLogger()
	app.InitDB()

	ethClient, err := ethereum.NewClient()
	if err != nil {
		log.Fatal("[MAIN] Error connecting to ethereum: ", err)
	}
	ethClient.ValidateNetwork()

	healthRunner := app.NewHealthCheck()
	serviceHealthMap := healthRunner.LastHealthByService()

	var wg sync.WaitGroup

	var services []models.Service
	for serviceName, factory := range GetServiceFactories() {
		services = append(services, CreateService(&wg, serviceName, serviceHealthMap, factory))
	}

	healthRunner.SetServices(services)
	healthService := app.NewRunnerService(
		app.HealthCheckName,
		healthRunner,
		&wg,
		time.Duration(app.Config.HealthCheck.IntervalMillis)*time.Millisecond,
	)
	services = append(services, healthService)

	wg.Add(len(services))
	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Started ", len(services), " services")

	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-gracefulStop
	log.Debug("[MAIN] Caught signal: ", sig)

	log.Debug("[MAIN] Stopping services")
	for _, service := range services {
		service.Stop()
	}
	wg.Wait()

	app.DB.Disconnect()
	log.Info("[MAIN] Server stopped")
}
