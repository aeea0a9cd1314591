package app

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ntzs-io/ntzs-settlement/common"
	"github.com/ntzs-io/ntzs-settlement/models"
	"gopkg.in/yaml.v2"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readSecretsFromGSM()
	applyDefaults()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}
	log.Debug("[CONFIG] Reading config file: ", configFile)
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s", configFile, err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s", configFile, err.Error())
	}
	return true
}

func applyDefaults() {
	if Config.Settlement.MinDepositAmount == 0 {
		Config.Settlement.MinDepositAmount = 500
	}
	if Config.Settlement.MinWithdrawalAmount == 0 {
		Config.Settlement.MinWithdrawalAmount = 1000
	}
	if Config.Settlement.SafeMintThreshold == 0 {
		Config.Settlement.SafeMintThreshold = 9000
	}
	if Config.Settlement.SecondApprovalThreshold == 0 {
		Config.Settlement.SecondApprovalThreshold = 100000
	}
	if Config.Settlement.DailyIssuanceCap == 0 {
		Config.Settlement.DailyIssuanceCap = 100000000
	}
	if Config.Ethereum.Confirmations == 0 {
		Config.Ethereum.Confirmations = 1
	}
	if Config.Snippe.TimeoutMillis == 0 {
		Config.Snippe.TimeoutMillis = 10000
	}
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")
	if Config.MongoDB.URI == "" {
		log.Fatal("[CONFIG] MongoDB.URI is required")
	}
	if Config.MongoDB.Database == "" {
		log.Fatal("[CONFIG] MongoDB.Database is required")
	}
	if Config.MongoDB.TimeoutMillis == 0 {
		log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required")
	}
	if Config.Ethereum.RPCURL == "" {
		log.Fatal("[CONFIG] Ethereum.RPCURL is required")
	}
	if Config.Ethereum.ChainID == "" {
		log.Fatal("[CONFIG] Ethereum.ChainID is required")
	}
	if Config.Ethereum.TokenAddress == "" {
		log.Fatal("[CONFIG] Ethereum.TokenAddress is required")
	}
	if Config.Ethereum.MinterPrivateKey == "" {
		log.Fatal("[CONFIG] Ethereum.MinterPrivateKey is required")
	}
	if Config.Ethereum.RPCTimeoutMillis == 0 {
		log.Fatal("[CONFIG] Ethereum.RPCTimeoutMillis is required")
	}
	if Config.SafeMonitor.Enabled && Config.Ethereum.SafeAddress == "" {
		log.Fatal("[CONFIG] Ethereum.SafeAddress is required when the safe monitor is enabled")
	}
	if Config.Snippe.BaseURL == "" {
		log.Fatal("[CONFIG] Snippe.BaseURL is required")
	}
	if Config.Snippe.APIKey == "" {
		log.Fatal("[CONFIG] Snippe.APIKey is required")
	}
	if Config.Settlement.SeedEncryptionKey == "" {
		log.Fatal("[CONFIG] Settlement.SeedEncryptionKey is required")
	}
	if _, err := common.SeedEncryptionKeyFromHex(Config.Settlement.SeedEncryptionKey); err != nil {
		log.Fatal("[CONFIG] Settlement.SeedEncryptionKey is invalid: ", err)
	}
	if Config.Settlement.SafeMintThreshold <= Config.Settlement.MinDepositAmount {
		log.Fatal("[CONFIG] Settlement.SafeMintThreshold must be above the minimum deposit")
	}
	if Config.HealthCheck.IntervalMillis == 0 {
		log.Fatal("[CONFIG] HealthCheck.IntervalMillis is required")
	}
	log.Debug("[CONFIG] Config validated")
}
