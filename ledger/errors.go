package ledger

import "errors"

// ErrEmptyGatewayURL signals an empty gateway URL
var ErrEmptyGatewayURL = errors.New("empty gateway URL")

// ErrInvalidRequestTimeout signals an invalid request timeout
var ErrInvalidRequestTimeout = errors.New("invalid request timeout")

// ErrInvalidRateLimit signals an invalid outbound rate limit
var ErrInvalidRateLimit = errors.New("invalid rate limit")

// ErrNilMarshaller signals that a nil marshaller was provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrGatewayRequest signals that the gateway answered with an error
var ErrGatewayRequest = errors.New("gateway request failed")

// ErrEmptyTxHash signals that the gateway accepted a transaction without returning its hash
var ErrEmptyTxHash = errors.New("empty transaction hash")
