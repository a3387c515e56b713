package facade

import "errors"

// ErrNilWhitelistHandler signals that a nil whitelist handler was provided
var ErrNilWhitelistHandler = errors.New("nil whitelist handler")

// ErrKindMismatch signals that an intent was sent to the operation of another transfer kind
var ErrKindMismatch = errors.New("transfer kind mismatch")

// ErrEmptyBatch signals a batch without intents
var ErrEmptyBatch = errors.New("empty batch")

// ErrEmptyTxHash signals an empty transaction hash
var ErrEmptyTxHash = errors.New("empty transaction hash")

// ErrInvalidMaxBatchSize signals an invalid maximum batch size
var ErrInvalidMaxBatchSize = errors.New("invalid max batch size")

// ErrBatchTooLarge signals a batch holding more intents than allowed
var ErrBatchTooLarge = errors.New("batch too large")
