package config

import (
	"testing"

	"github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTomlParser(t *testing.T) {
	t.Parallel()

	expectedCfg := Config{
		General: GeneralConfig{
			ChainID:                     "T",
			AddressHrp:                  "erd",
			TxVersion:                   2,
			GasPrice:                    1000000000,
			MinGasLimit:                 50000,
			MaxGasLimit:                 600000000,
			GasPerDataByte:              1500,
			EsdtTransferGasLimit:        500000,
			NftTransferGasLimitPerUnit:  1000000,
			ContractCallGasLimitPerUnit: 10000000,
		},
		Gateway: GatewayConfig{
			URL:                  "http://127.0.0.1:8079",
			RequestTimeoutInSec:  5,
			MaxRequestsPerSecond: 2.5,
			Burst:                3,
		},
		Confirmation: ConfirmationConfig{
			MaxRetries:       20,
			IntervalInMillis: 6000,
		},
		UsageFee: UsageFeeConfig{
			Enabled:         true,
			TreasuryAddress: "erd1treasury",
			TokenIdentifier: "FEE-a1b2c3",
			Amount:          "0.5",
		},
		Batch: BatchConfig{
			GroupSize:          4,
			GroupDelayInMillis: 1000,
			MaxBatchSize:       500,
		},
		Tokens: TokensConfig{
			ApiURL:              "http://127.0.0.1:3001",
			DecimalsCacheSize:   100,
			DecimalsTTLInSec:    3600,
			RequestTimeoutInSec: 7,
		},
		Whitelist: WhitelistConfig{
			DBPath:    "db/whitelist",
			Addresses: []string{"erd1first", "erd1second"},
		},
		Wallets: WalletsConfig{
			PemFiles: []PemFileConfig{
				{Path: "./config/walletKey.pem", Index: 0},
				{Path: "./config/walletKey.pem", Index: 3},
			},
		},
		WebServer: WebServerConfig{
			Interface:                    ":8080",
			SimultaneousRequests:         100,
			SameSourceRequests:           10,
			SameSourceResetIntervalInSec: 1,
			MaxRequestBodySizeInBytes:    2048,
			DebugMode:                    true,
			WhitelistAdmin: WhitelistAdminConfig{
				Username: "admin",
				Password: "secret",
			},
			ApiRoutes: ApiRoutesConfig{
				APIPackages: map[string]APIPackageConfig{
					"transfer": {
						Routes: []RouteConfig{{Name: "/native", Open: true}},
					},
				},
			},
		},
		Logs: LogsConfig{
			LogLevel: "*:DEBUG",
		},
	}

	testString := `
[General]
    ChainID = "T"
    AddressHrp = "erd"
    TxVersion = 2
    GasPrice = 1000000000
    MinGasLimit = 50000
    MaxGasLimit = 600000000
    GasPerDataByte = 1500
    EsdtTransferGasLimit = 500000
    NftTransferGasLimitPerUnit = 1000000
    ContractCallGasLimitPerUnit = 10000000

[Gateway]
    URL = "http://127.0.0.1:8079"
    RequestTimeoutInSec = 5
    MaxRequestsPerSecond = 2.5
    Burst = 3

[Confirmation]
    MaxRetries = 20
    IntervalInMillis = 6000

[UsageFee]
    Enabled = true
    TreasuryAddress = "erd1treasury"
    TokenIdentifier = "FEE-a1b2c3"
    Amount = "0.5"

[Batch]
    GroupSize = 4
    GroupDelayInMillis = 1000
    MaxBatchSize = 500

[Tokens]
    ApiURL = "http://127.0.0.1:3001"
    DecimalsCacheSize = 100
    DecimalsTTLInSec = 3600
    RequestTimeoutInSec = 7

[Whitelist]
    DBPath = "db/whitelist"
    Addresses = ["erd1first", "erd1second"]

[Wallets]
    PemFiles = [
        { Path = "./config/walletKey.pem", Index = 0 },
        { Path = "./config/walletKey.pem", Index = 3 },
    ]

[WebServer]
    Interface = ":8080"
    SimultaneousRequests = 100
    SameSourceRequests = 10
    SameSourceResetIntervalInSec = 1
    MaxRequestBodySizeInBytes = 2048
    DebugMode = true

    [WebServer.WhitelistAdmin]
        Username = "admin"
        Password = "secret"

    [WebServer.ApiRoutes.APIPackages.transfer]
        Routes = [
            { Name = "/native", Open = true },
        ]

[Logs]
    LogLevel = "*:DEBUG"
`

	cfg := Config{}
	err := toml.Unmarshal([]byte(testString), &cfg)

	require.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
	assert.Nil(t, SanityCheck(&cfg))
}

func TestAPIRoutesToml(t *testing.T) {
	package0 := "testPackage0"
	route0 := "testRoute0"
	route1 := "testRoute1"

	package1 := "testPackage1"
	route2 := "testRoute2"

	loggingThreshold := 10

	expectedCfg := ApiRoutesConfig{
		Logging: ApiLoggingConfig{
			LoggingEnabled:          true,
			ThresholdInMicroSeconds: loggingThreshold,
		},
		APIPackages: map[string]APIPackageConfig{
			package0: {
				Routes: []RouteConfig{
					{Name: route0, Open: true},
					{Name: route1, Open: true},
				},
			},
			package1: {
				Routes: []RouteConfig{
					{Name: route2, Open: false},
				},
			},
		},
	}

	testString := `
[Logging]
    LoggingEnabled = true
    ThresholdInMicroSeconds = 10

     # API routes configuration
[APIPackages]

[APIPackages.` + package0 + `]
    Routes = [
        # test comment
        { Name = "` + route0 + `", Open = true },

        # test comment
        { Name = "` + route1 + `", Open = true },
    ]

[APIPackages.` + package1 + `]
    Routes = [
         # test comment
        { Name = "` + route2 + `", Open = false }
    ]
 `

	cfg := ApiRoutesConfig{}

	err := toml.Unmarshal([]byte(testString), &cfg)

	assert.Nil(t, err)
	assert.Equal(t, expectedCfg, cfg)
}
