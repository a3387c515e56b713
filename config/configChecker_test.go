package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createValidConfig() *Config {
	return &Config{
		General: GeneralConfig{
			ChainID:     "D",
			GasPrice:    1000000000,
			MinGasLimit: 50000,
			MaxGasLimit: 600000000,
		},
		Gateway: GatewayConfig{
			URL: "http://127.0.0.1:8079",
		},
		Confirmation: ConfirmationConfig{
			MaxRetries:       20,
			IntervalInMillis: 6000,
		},
		Batch: BatchConfig{
			GroupSize:    4,
			MaxBatchSize: 1000,
		},
		WebServer: WebServerConfig{
			Interface:                    ":8080",
			SimultaneousRequests:         10,
			SameSourceRequests:           10,
			SameSourceResetIntervalInSec: 1,
			MaxRequestBodySizeInBytes:    1048576,
		},
	}
}

func openWhitelistUpdatesRoutes() ApiRoutesConfig {
	return ApiRoutesConfig{
		APIPackages: map[string]APIPackageConfig{
			WhitelistPackage: {
				Routes: []RouteConfig{
					{Name: WhitelistAddressRoute, Open: true},
				},
			},
		},
	}
}

func TestSanityCheck(t *testing.T) {
	t.Parallel()

	testInvalid := func(modify func(cfg *Config), expectedErr error) func(t *testing.T) {
		return func(t *testing.T) {
			t.Parallel()

			cfg := createValidConfig()
			modify(cfg)
			err := SanityCheck(cfg)
			assert.True(t, errors.Is(err, expectedErr), "got %v", err)
		}
	}

	t.Run("valid config should work", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, SanityCheck(createValidConfig()))
	})
	t.Run("empty chain ID", testInvalid(func(cfg *Config) {
		cfg.General.ChainID = ""
	}, errEmptyChainID))
	t.Run("zero gas price", testInvalid(func(cfg *Config) {
		cfg.General.GasPrice = 0
	}, errInvalidGasPrice))
	t.Run("max gas limit lower than min", testInvalid(func(cfg *Config) {
		cfg.General.MaxGasLimit = cfg.General.MinGasLimit - 1
	}, errInvalidGasLimits))
	t.Run("invalid gateway URL", testInvalid(func(cfg *Config) {
		cfg.Gateway.URL = "not a url"
	}, errInvalidGatewayURL))
	t.Run("zero max retries", testInvalid(func(cfg *Config) {
		cfg.Confirmation.MaxRetries = 0
	}, errInvalidMaxRetries))
	t.Run("zero polling interval", testInvalid(func(cfg *Config) {
		cfg.Confirmation.IntervalInMillis = 0
	}, errInvalidPollingInterval))
	t.Run("zero group size", testInvalid(func(cfg *Config) {
		cfg.Batch.GroupSize = 0
	}, errInvalidGroupSize))
	t.Run("zero max batch size", testInvalid(func(cfg *Config) {
		cfg.Batch.MaxBatchSize = 0
	}, errInvalidMaxBatchSize))
	t.Run("zero max request body size", testInvalid(func(cfg *Config) {
		cfg.WebServer.MaxRequestBodySizeInBytes = 0
	}, errInvalidMaxRequestBodySize))
	t.Run("open whitelist updates without admin password", testInvalid(func(cfg *Config) {
		cfg.WebServer.ApiRoutes = openWhitelistUpdatesRoutes()
		cfg.WebServer.WhitelistAdmin = WhitelistAdminConfig{Username: "admin"}
	}, errMissingWhitelistAdminCredentials))
	t.Run("open whitelist updates with admin credentials should work", func(t *testing.T) {
		t.Parallel()

		cfg := createValidConfig()
		cfg.WebServer.ApiRoutes = openWhitelistUpdatesRoutes()
		cfg.WebServer.WhitelistAdmin = WhitelistAdminConfig{Username: "admin", Password: "secret"}
		assert.Nil(t, SanityCheck(cfg))
	})
	t.Run("zero simultaneous requests", testInvalid(func(cfg *Config) {
		cfg.WebServer.SimultaneousRequests = 0
	}, errInvalidWebServerThrottling))
	t.Run("web server turned off skips the throttling check", func(t *testing.T) {
		t.Parallel()

		cfg := createValidConfig()
		cfg.WebServer = WebServerConfig{Interface: WebServerOff}
		assert.Nil(t, SanityCheck(cfg))
	})
	t.Run("usage fee without treasury", testInvalid(func(cfg *Config) {
		cfg.UsageFee = UsageFeeConfig{Enabled: true, TokenIdentifier: "FEE-a1b2c3", Amount: "1"}
	}, errEmptyTreasuryAddress))
	t.Run("usage fee without token", testInvalid(func(cfg *Config) {
		cfg.UsageFee = UsageFeeConfig{Enabled: true, TreasuryAddress: "erd1treasury", Amount: "1"}
	}, errEmptyFeeToken))
	t.Run("usage fee without amount", testInvalid(func(cfg *Config) {
		cfg.UsageFee = UsageFeeConfig{Enabled: true, TreasuryAddress: "erd1treasury", TokenIdentifier: "FEE-a1b2c3"}
	}, errEmptyFeeAmount))
}

func TestIsRouteOpen(t *testing.T) {
	t.Parallel()

	routes := ApiRoutesConfig{
		APIPackages: map[string]APIPackageConfig{
			WhitelistPackage: {
				Routes: []RouteConfig{
					{Name: "", Open: true},
					{Name: WhitelistAddressRoute, Open: false},
				},
			},
		},
	}

	assert.True(t, IsRouteOpen(routes, WhitelistPackage, ""))
	assert.False(t, IsRouteOpen(routes, WhitelistPackage, WhitelistAddressRoute))
	assert.False(t, IsRouteOpen(routes, WhitelistPackage, "/missing"))
	assert.False(t, IsRouteOpen(routes, "transfer", "/native"))
}
