package errors

import (
	"errors"
)

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrNilMetricsHandler signals that a nil metrics http handler has been provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")

// ErrFacadeWrongTypeAssertion signals that a type conversion to a facade type failed
var ErrFacadeWrongTypeAssertion = errors.New("facade - wrong type assertion")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrTransfer signals that a transfer request could not be completed
var ErrTransfer = errors.New("transfer error")

// ErrBatch signals that a batch request could not be completed
var ErrBatch = errors.New("batch error")

// ErrGetTransactionStatus signals an error while fetching a transaction status
var ErrGetTransactionStatus = errors.New("get transaction status error")

// ErrWhitelist signals an error while handling the whitelist
var ErrWhitelist = errors.New("whitelist error")

// ErrValidationEmptyTxHash signals that an empty tx hash was provided
var ErrValidationEmptyTxHash = errors.New("TxHash is empty")

// ErrValidationEmptyAddress signals that an empty address was provided
var ErrValidationEmptyAddress = errors.New("address is empty")

// ErrUnauthorized signals that the request lacks valid credentials
var ErrUnauthorized = errors.New("unauthorized")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrCannotCreateGinWebServer signals that the gin web server cannot be created
var ErrCannotCreateGinWebServer = errors.New("cannot create gin web server")
