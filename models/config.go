package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	Ethereum            EthereumConfig            `yaml:"ethereum" json:"ethereum"`
	Snippe              SnippeConfig              `yaml:"snippe" json:"snippe"`
	Settlement          SettlementConfig          `yaml:"settlement" json:"settlement"`
	DepositMonitor      ServiceConfig             `yaml:"deposit_monitor" json:"deposit_monitor"`
	MintExecutor        ServiceConfig             `yaml:"mint_executor" json:"mint_executor"`
	SafeMonitor         ServiceConfig             `yaml:"safe_monitor" json:"safe_monitor"`
	BurnExecutor        ServiceConfig             `yaml:"burn_executor" json:"burn_executor"`
	TransferExecutor    ServiceConfig             `yaml:"transfer_executor" json:"transfer_executor"`
	WalletProvisioner   ServiceConfig             `yaml:"wallet_provisioner" json:"wallet_provisioner"`
	WebhookDispatcher   ServiceConfig             `yaml:"webhook_dispatcher" json:"webhook_dispatcher"`
	Reconciler          ServiceConfig             `yaml:"reconciler" json:"reconciler"`
}

type GoogleSecretManagerConfig struct {
	Enabled              bool   `yaml:"enabled" json:"enabled"`
	ProjectID            string `yaml:"project_id" json:"project_id"`
	MongoSecretName      string `yaml:"mongo_secret_name" json:"mongo_secret_name"`
	MinterKeySecretName  string `yaml:"minter_key_secret_name" json:"minter_key_secret_name"`
	SeedKeySecretName    string `yaml:"seed_key_secret_name" json:"seed_key_secret_name"`
	SnippeKeySecretName  string `yaml:"snippe_key_secret_name" json:"snippe_key_secret_name"`
	RelayerKeySecretName string `yaml:"relayer_key_secret_name" json:"relayer_key_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type EthereumConfig struct {
	RPCURL            string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis  int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ChainID           string `yaml:"chain_id" json:"chain_id"`
	TokenAddress      string `yaml:"token_address" json:"token_address"`
	SafeAddress       string `yaml:"safe_address" json:"safe_address"`
	MinterPrivateKey  string `yaml:"minter_private_key" json:"minter_private_key"`
	RelayerPrivateKey string `yaml:"relayer_private_key" json:"relayer_private_key"`
	Confirmations     int64  `yaml:"confirmations" json:"confirmations"`
	GasPrefundWei     string `yaml:"gas_prefund_wei" json:"gas_prefund_wei"`
}

type SnippeConfig struct {
	BaseURL       string `yaml:"base_url" json:"base_url"`
	APIKey        string `yaml:"api_key" json:"api_key"`
	WebhookSecret string `yaml:"webhook_secret" json:"webhook_secret"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type SettlementConfig struct {
	MinDepositAmount        int64  `yaml:"min_deposit_amount" json:"min_deposit_amount"`
	MinWithdrawalAmount     int64  `yaml:"min_withdrawal_amount" json:"min_withdrawal_amount"`
	SafeMintThreshold       int64  `yaml:"safe_mint_threshold" json:"safe_mint_threshold"`
	SecondApprovalThreshold int64  `yaml:"second_approval_threshold" json:"second_approval_threshold"`
	DailyIssuanceCap        int64  `yaml:"daily_issuance_cap" json:"daily_issuance_cap"`
	ReclaimAfterMillis      int64  `yaml:"reclaim_after_ms" json:"reclaim_after_ms"`
	SeedEncryptionKey       string `yaml:"seed_encryption_key" json:"seed_encryption_key"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}
