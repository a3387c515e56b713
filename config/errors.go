package config

import "errors"

var errInvalidGatewayURL = errors.New("invalid gateway URL")

var errInvalidMaxRetries = errors.New("confirmation max retries must be greater than zero")

var errInvalidPollingInterval = errors.New("confirmation interval must be greater than zero")

var errInvalidGroupSize = errors.New("batch group size must be greater than zero")

var errInvalidMaxBatchSize = errors.New("max batch size must be greater than zero")

var errInvalidMaxRequestBodySize = errors.New("max request body size must be greater than zero")

var errEmptyChainID = errors.New("empty chain ID")

var errInvalidGasPrice = errors.New("gas price must be greater than zero")

var errInvalidGasLimits = errors.New("invalid gas limits")

var errEmptyTreasuryAddress = errors.New("usage fee enabled without a treasury address")

var errEmptyFeeToken = errors.New("usage fee enabled without a token identifier")

var errEmptyFeeAmount = errors.New("usage fee enabled without an amount")

var errInvalidWebServerThrottling = errors.New("web server throttling values must be greater than zero")

var errMissingWhitelistAdminCredentials = errors.New("whitelist write routes are open without admin credentials")
