package config

import (
	"fmt"
	"net/url"
)

// SanityCheck verifies the values that would otherwise surface as failures only at the first transfer
func SanityCheck(cfg *Config) error {
	err := checkGeneralConfig(cfg.General)
	if err != nil {
		return err
	}

	_, err = url.ParseRequestURI(cfg.Gateway.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidGatewayURL, err)
	}
	if cfg.Confirmation.MaxRetries == 0 {
		return errInvalidMaxRetries
	}
	if cfg.Confirmation.IntervalInMillis == 0 {
		return errInvalidPollingInterval
	}
	if cfg.Batch.GroupSize == 0 {
		return errInvalidGroupSize
	}
	if cfg.Batch.MaxBatchSize == 0 {
		return errInvalidMaxBatchSize
	}

	err = checkWebServerConfig(cfg.WebServer)
	if err != nil {
		return err
	}

	return checkUsageFeeConfig(cfg.UsageFee)
}

func checkWebServerConfig(cfg WebServerConfig) error {
	if cfg.Interface == WebServerOff {
		return nil
	}
	if cfg.SimultaneousRequests == 0 || cfg.SameSourceRequests == 0 {
		return errInvalidWebServerThrottling
	}
	if cfg.SameSourceResetIntervalInSec == 0 {
		return errInvalidWebServerThrottling
	}
	if cfg.MaxRequestBodySizeInBytes <= 0 {
		return errInvalidMaxRequestBodySize
	}

	hasCredentials := len(cfg.WhitelistAdmin.Username) > 0 && len(cfg.WhitelistAdmin.Password) > 0
	if IsRouteOpen(cfg.ApiRoutes, WhitelistPackage, WhitelistAddressRoute) && !hasCredentials {
		return errMissingWhitelistAdminCredentials
	}

	return nil
}

// IsRouteOpen returns true if the route of the given api package is configured as open
func IsRouteOpen(cfg ApiRoutesConfig, packageName string, route string) bool {
	apiPackage, ok := cfg.APIPackages[packageName]
	if !ok {
		return false
	}

	for _, routeConfig := range apiPackage.Routes {
		if routeConfig.Name == route {
			return routeConfig.Open
		}
	}

	return false
}

func checkGeneralConfig(cfg GeneralConfig) error {
	if len(cfg.ChainID) == 0 {
		return errEmptyChainID
	}
	if cfg.GasPrice == 0 {
		return errInvalidGasPrice
	}
	if cfg.MinGasLimit == 0 || cfg.MaxGasLimit < cfg.MinGasLimit {
		return fmt.Errorf("%w: min %d, max %d", errInvalidGasLimits, cfg.MinGasLimit, cfg.MaxGasLimit)
	}

	return nil
}

func checkUsageFeeConfig(cfg UsageFeeConfig) error {
	if !cfg.Enabled {
		return nil
	}
	if len(cfg.TreasuryAddress) == 0 {
		return errEmptyTreasuryAddress
	}
	if len(cfg.TokenIdentifier) == 0 {
		return errEmptyFeeToken
	}
	if len(cfg.Amount) == 0 {
		return errEmptyFeeAmount
	}

	return nil
}
