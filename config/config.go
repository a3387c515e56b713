package config

// Config holds the relay configuration
type Config struct {
	General      GeneralConfig
	Gateway      GatewayConfig
	Confirmation ConfirmationConfig
	UsageFee     UsageFeeConfig
	Batch        BatchConfig
	Tokens       TokensConfig
	Whitelist    WhitelistConfig
	Wallets      WalletsConfig
	WebServer    WebServerConfig
	Logs         LogsConfig
}

// GeneralConfig holds the transaction construction parameters
type GeneralConfig struct {
	ChainID                     string
	AddressHrp                  string
	TxVersion                   uint32
	GasPrice                    uint64
	MinGasLimit                 uint64
	MaxGasLimit                 uint64
	GasPerDataByte              uint64
	EsdtTransferGasLimit        uint64
	NftTransferGasLimitPerUnit  uint64
	ContractCallGasLimitPerUnit uint64
}

// GatewayConfig holds the ledger gateway (proxy) client configuration
type GatewayConfig struct {
	URL                  string
	RequestTimeoutInSec  uint32
	MaxRequestsPerSecond float64
	Burst                int
}

// ConfirmationConfig holds the confirmation polling parameters
type ConfirmationConfig struct {
	MaxRetries       uint32
	IntervalInMillis uint32
}

// UsageFeeConfig holds the usage fee gate parameters
type UsageFeeConfig struct {
	Enabled         bool
	TreasuryAddress string
	TokenIdentifier string
	Amount          string
}

// BatchConfig holds the batch scheduler parameters
type BatchConfig struct {
	GroupSize          uint32
	GroupDelayInMillis uint32
	MaxBatchSize       uint32
}

// TokensConfig holds the token metadata provider parameters
type TokensConfig struct {
	ApiURL              string
	DecimalsCacheSize   int
	DecimalsTTLInSec    uint32
	RequestTimeoutInSec uint32
}

// WhitelistConfig holds the whitelist storage parameters
type WhitelistConfig struct {
	DBPath    string
	Addresses []string
}

// PemFileConfig points to one key inside a PEM file
type PemFileConfig struct {
	Path  string
	Index int
}

// WalletsConfig holds the key material the relay is allowed to sign with
type WalletsConfig struct {
	PemFiles []PemFileConfig
}

const (
	// WebServerOff is the interface value that disables the REST api
	WebServerOff = "off"

	// WhitelistPackage is the api package serving the whitelist routes
	WhitelistPackage = "whitelist"

	// WhitelistAddressRoute is the whitelist route that adds or removes an address
	WhitelistAddressRoute = "/:address"
)

// WebServerConfig holds the REST api parameters
type WebServerConfig struct {
	Interface                    string
	SimultaneousRequests         uint32
	SameSourceRequests           uint32
	SameSourceResetIntervalInSec uint32
	MaxRequestBodySizeInBytes    int64
	DebugMode                    bool
	WhitelistAdmin               WhitelistAdminConfig
	ApiRoutes                    ApiRoutesConfig
}

// WhitelistAdminConfig holds the basic auth credentials required by the whitelist write routes
type WhitelistAdminConfig struct {
	Username string
	Password string
}

// LogsConfig holds the logging parameters
type LogsConfig struct {
	LogLevel string
}

// ApiRoutesConfig holds the configuration related to Rest API routes
type ApiRoutesConfig struct {
	Logging     ApiLoggingConfig
	APIPackages map[string]APIPackageConfig
}

// ApiLoggingConfig holds the configuration related to API requests logging
type ApiLoggingConfig struct {
	LoggingEnabled          bool
	ThresholdInMicroSeconds int
}

// APIPackageConfig holds the configuration for the routes of each package
type APIPackageConfig struct {
	Routes []RouteConfig
}

// RouteConfig holds the configuration for a single route
type RouteConfig struct {
	Name string
	Open bool
}
