package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/ntzs-io/ntzs-settlement/models"
)

func readConfigFromENV(envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		Config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		Config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	if os.Getenv("MONGODB_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("MONGODB_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing MONGODB_TIMEOUT_MS: ", err.Error())
		} else {
			Config.MongoDB.TimeoutMillis = timeoutMillis
		}
	}

	// ethereum
	if os.Getenv("ETH_RPC_URL") != "" {
		Config.Ethereum.RPCURL = os.Getenv("ETH_RPC_URL")
	}
	if os.Getenv("ETH_CHAIN_ID") != "" {
		Config.Ethereum.ChainID = os.Getenv("ETH_CHAIN_ID")
	}
	if os.Getenv("ETH_TOKEN_ADDRESS") != "" {
		Config.Ethereum.TokenAddress = os.Getenv("ETH_TOKEN_ADDRESS")
	}
	if os.Getenv("ETH_SAFE_ADDRESS") != "" {
		Config.Ethereum.SafeAddress = os.Getenv("ETH_SAFE_ADDRESS")
	}
	if os.Getenv("ETH_MINTER_PRIVATE_KEY") != "" {
		Config.Ethereum.MinterPrivateKey = os.Getenv("ETH_MINTER_PRIVATE_KEY")
	}
	if os.Getenv("ETH_RELAYER_PRIVATE_KEY") != "" {
		Config.Ethereum.RelayerPrivateKey = os.Getenv("ETH_RELAYER_PRIVATE_KEY")
	}
	if os.Getenv("ETH_RPC_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("ETH_RPC_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_RPC_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Ethereum.RPCTimeoutMillis = timeoutMillis
		}
	}
	if os.Getenv("ETH_CONFIRMATIONS") != "" {
		confirmations, err := strconv.ParseInt(os.Getenv("ETH_CONFIRMATIONS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing ETH_CONFIRMATIONS: ", err.Error())
		} else {
			Config.Ethereum.Confirmations = confirmations
		}
	}
	if os.Getenv("ETH_GAS_PREFUND_WEI") != "" {
		Config.Ethereum.GasPrefundWei = os.Getenv("ETH_GAS_PREFUND_WEI")
	}

	// snippe
	if os.Getenv("SNIPPE_BASE_URL") != "" {
		Config.Snippe.BaseURL = os.Getenv("SNIPPE_BASE_URL")
	}
	if os.Getenv("SNIPPE_API_KEY") != "" {
		Config.Snippe.APIKey = os.Getenv("SNIPPE_API_KEY")
	}
	if os.Getenv("SNIPPE_WEBHOOK_SECRET") != "" {
		Config.Snippe.WebhookSecret = os.Getenv("SNIPPE_WEBHOOK_SECRET")
	}
	if os.Getenv("SNIPPE_TIMEOUT_MS") != "" {
		timeoutMillis, err := strconv.ParseInt(os.Getenv("SNIPPE_TIMEOUT_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing SNIPPE_TIMEOUT_MS: ", err.Error())
		} else {
			Config.Snippe.TimeoutMillis = timeoutMillis
		}
	}

	// settlement
	if os.Getenv("SEED_ENCRYPTION_KEY") != "" {
		Config.Settlement.SeedEncryptionKey = os.Getenv("SEED_ENCRYPTION_KEY")
	}
	if os.Getenv("SAFE_MINT_THRESHOLD") != "" {
		threshold, err := strconv.ParseInt(os.Getenv("SAFE_MINT_THRESHOLD"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing SAFE_MINT_THRESHOLD: ", err.Error())
		} else {
			Config.Settlement.SafeMintThreshold = threshold
		}
	}
	if os.Getenv("SECOND_APPROVAL_THRESHOLD") != "" {
		threshold, err := strconv.ParseInt(os.Getenv("SECOND_APPROVAL_THRESHOLD"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing SECOND_APPROVAL_THRESHOLD: ", err.Error())
		} else {
			Config.Settlement.SecondApprovalThreshold = threshold
		}
	}
	if os.Getenv("DAILY_ISSUANCE_CAP") != "" {
		cap, err := strconv.ParseInt(os.Getenv("DAILY_ISSUANCE_CAP"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing DAILY_ISSUANCE_CAP: ", err.Error())
		} else {
			Config.Settlement.DailyIssuanceCap = cap
		}
	}
	if os.Getenv("RECLAIM_AFTER_MS") != "" {
		reclaimMillis, err := strconv.ParseInt(os.Getenv("RECLAIM_AFTER_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing RECLAIM_AFTER_MS: ", err.Error())
		} else {
			Config.Settlement.ReclaimAfterMillis = reclaimMillis
		}
	}

	readServiceConfigFromENV("DEPOSIT_MONITOR", &Config.DepositMonitor)
	readServiceConfigFromENV("MINT_EXECUTOR", &Config.MintExecutor)
	readServiceConfigFromENV("SAFE_MONITOR", &Config.SafeMonitor)
	readServiceConfigFromENV("BURN_EXECUTOR", &Config.BurnExecutor)
	readServiceConfigFromENV("TRANSFER_EXECUTOR", &Config.TransferExecutor)
	readServiceConfigFromENV("WALLET_PROVISIONER", &Config.WalletProvisioner)
	readServiceConfigFromENV("WEBHOOK_DISPATCHER", &Config.WebhookDispatcher)
	readServiceConfigFromENV("RECONCILER", &Config.Reconciler)

	// health check
	if os.Getenv("HEALTH_CHECK_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv("HEALTH_CHECK_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_INTERVAL_MS: ", err.Error())
		} else {
			Config.HealthCheck.IntervalMillis = intervalMillis
		}
	}
	if os.Getenv("HEALTH_CHECK_READ_LAST_HEALTH") != "" {
		readLastHealth, err := strconv.ParseBool(os.Getenv("HEALTH_CHECK_READ_LAST_HEALTH"))
		if err != nil {
			log.Warn("[ENV] Error parsing HEALTH_CHECK_READ_LAST_HEALTH: ", err.Error())
		} else {
			Config.HealthCheck.ReadLastHealth = readLastHealth
		}
	}

	// logging
	if Config.Logger.Level == "" {
		logLevel := os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			log.Warn("[ENV] Setting LogLevel to debug")
			Config.Logger.Level = "debug"
		} else {
			Config.Logger.Level = logLevel
		}
	}

	// google secret manager
	if !Config.GoogleSecretManager.Enabled {
		enabled, err := strconv.ParseBool(os.Getenv("GOOGLE_SECRET_MANAGER_ENABLED"))
		if err == nil {
			Config.GoogleSecretManager.Enabled = enabled
		}
	}
	if Config.GoogleSecretManager.ProjectID == "" {
		Config.GoogleSecretManager.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if Config.GoogleSecretManager.MongoSecretName == "" {
		Config.GoogleSecretManager.MongoSecretName = os.Getenv("GOOGLE_MONGO_SECRET_NAME")
	}
	if Config.GoogleSecretManager.MinterKeySecretName == "" {
		Config.GoogleSecretManager.MinterKeySecretName = os.Getenv("GOOGLE_MINTER_KEY_SECRET_NAME")
	}
	if Config.GoogleSecretManager.SeedKeySecretName == "" {
		Config.GoogleSecretManager.SeedKeySecretName = os.Getenv("GOOGLE_SEED_KEY_SECRET_NAME")
	}
	if Config.GoogleSecretManager.SnippeKeySecretName == "" {
		Config.GoogleSecretManager.SnippeKeySecretName = os.Getenv("GOOGLE_SNIPPE_KEY_SECRET_NAME")
	}
	if Config.GoogleSecretManager.RelayerKeySecretName == "" {
		Config.GoogleSecretManager.RelayerKeySecretName = os.Getenv("GOOGLE_RELAYER_KEY_SECRET_NAME")
	}
}

func readServiceConfigFromENV(prefix string, service *models.ServiceConfig) {
	if os.Getenv(prefix+"_ENABLED") != "" {
		enabled, err := strconv.ParseBool(os.Getenv(prefix + "_ENABLED"))
		if err != nil {
			log.Warn("[ENV] Error parsing "+prefix+"_ENABLED: ", err.Error())
		} else {
			service.Enabled = enabled
		}
	}
	if os.Getenv(prefix+"_INTERVAL_MS") != "" {
		intervalMillis, err := strconv.ParseInt(os.Getenv(prefix+"_INTERVAL_MS"), 10, 64)
		if err != nil {
			log.Warn("[ENV] Error parsing "+prefix+"_INTERVAL_MS: ", err.Error())
		} else {
			service.IntervalMillis = intervalMillis
		}
	}
}
