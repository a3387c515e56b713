package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultConfigFile = "./config/config.toml"

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("default config file should load", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig(defaultConfigFile)
		require.Nil(t, err)
		assert.Equal(t, "erd", cfg.General.AddressHrp)
		assert.Equal(t, uint32(20), cfg.Confirmation.MaxRetries)
		assert.Equal(t, uint32(6000), cfg.Confirmation.IntervalInMillis)
		assert.Equal(t, uint32(4), cfg.Batch.GroupSize)
		assert.Equal(t, uint32(1000), cfg.Batch.MaxBatchSize)
		assert.Equal(t, int64(1048576), cfg.WebServer.MaxRequestBodySizeInBytes)
		assert.Equal(t, uint32(3600), cfg.Tokens.DecimalsTTLInSec)
		assert.Equal(t, 8, len(cfg.WebServer.ApiRoutes.APIPackages["transfer"].Routes))
		assert.True(t, config.IsRouteOpen(cfg.WebServer.ApiRoutes, config.WhitelistPackage, ""))
		assert.False(t, config.IsRouteOpen(cfg.WebServer.ApiRoutes, config.WhitelistPackage, config.WhitelistAddressRoute))
		assert.Empty(t, cfg.WebServer.WhitelistAdmin.Password)
	})
	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("./config/missing.toml")
		assert.Nil(t, cfg)
		assert.NotNil(t, err)
	})
}

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override the configuration", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Whitelist: config.WhitelistConfig{DBPath: "db/whitelist"},
			Logs:      config.LogsConfig{LogLevel: "*:INFO"},
		}
		applyFlags(cfg, &flagsConfig{
			logLevel:         "*:DEBUG",
			logLevelIsSet:    true,
			restApiInterface: config.WebServerOff,
			workingDir:       "/var/relay",
		})

		assert.Equal(t, "*:DEBUG", cfg.Logs.LogLevel)
		assert.Equal(t, config.WebServerOff, cfg.WebServer.Interface)
		assert.Equal(t, filepath.Join("/var/relay", "db/whitelist"), cfg.Whitelist.DBPath)
	})
	t.Run("unset flags keep the configuration", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			WebServer: config.WebServerConfig{Interface: ":8080"},
			Logs:      config.LogsConfig{LogLevel: "*:WARN"},
		}
		applyFlags(cfg, &flagsConfig{logLevel: "*:INFO"})

		assert.Equal(t, "*:WARN", cfg.Logs.LogLevel)
		assert.Equal(t, ":8080", cfg.WebServer.Interface)
		assert.Empty(t, cfg.Whitelist.DBPath)
	})
}

func TestCreateRelayComponents(t *testing.T) {
	t.Parallel()

	t.Run("should wire every component", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig(defaultConfigFile)
		require.Nil(t, err)
		cfg.Whitelist.DBPath = filepath.Join(t.TempDir(), "whitelist")
		cfg.WebServer.Interface = config.WebServerOff

		components, err := createRelayComponents(cfg)
		require.Nil(t, err)
		assert.False(t, check.IfNil(components.facade))
		assert.Equal(t, 2, len(components.closers))

		addresses, err := components.facade.GetWhitelist()
		assert.Nil(t, err)
		assert.Empty(t, addresses)

		assert.Nil(t, components.webServer.StartHttpServer())
		closeComponents(components, logger.GetOrCreate("test"))
	})
	t.Run("empty gateway URL should error", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig(defaultConfigFile)
		require.Nil(t, err)
		cfg.Gateway.URL = ""
		cfg.Whitelist.DBPath = ""

		components, err := createRelayComponents(cfg)
		assert.Nil(t, components)
		assert.True(t, errors.Is(err, ledger.ErrEmptyGatewayURL))
	})
}

func TestNewRelayRunner_NilFlagsShouldErr(t *testing.T) {
	t.Parallel()

	runner, err := newRelayRunner(nil, logger.GetOrCreate("test"))
	assert.Nil(t, runner)
	assert.Equal(t, errNilFlagsConfig, err)
}
