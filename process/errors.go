package process

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonceUnavailable signals that the sender nonce could not be fetched from the ledger. The caller may retry.
var ErrNonceUnavailable = errors.New("nonce unavailable")

// ErrInvalidIntent signals a malformed transfer intent
var ErrInvalidIntent = errors.New("invalid intent")

// ErrSignatureFailure signals that the signer could not sign the transaction
var ErrSignatureFailure = errors.New("signature failure")

// ErrBroadcastFailure signals that the ledger rejected the transaction
var ErrBroadcastFailure = errors.New("broadcast failure")

// ErrConfirmationTimeout signals that no terminal state was observed within the retry budget.
// The transaction may still be executed.
var ErrConfirmationTimeout = errors.New("confirmation timeout")

// ErrUsageFeeRejected signals that the usage fee transaction did not succeed
var ErrUsageFeeRejected = errors.New("usage fee rejected")

// ErrTransactionFailed signals that the ledger executed the transaction with a fail status
var ErrTransactionFailed = errors.New("transaction failed")

// ErrNilLedgerProvider signals that a nil ledger provider was provided
var ErrNilLedgerProvider = errors.New("nil ledger provider")

// ErrNilSigner signals that a nil signer was provided
var ErrNilSigner = errors.New("nil signer")

// ErrNilSignerProvider signals that a nil signer provider was provided
var ErrNilSignerProvider = errors.New("nil signer provider")

// ErrNilDecimalsProvider signals that a nil decimals provider was provided
var ErrNilDecimalsProvider = errors.New("nil decimals provider")

// ErrNilWhitelistChecker signals that a nil whitelist checker was provided
var ErrNilWhitelistChecker = errors.New("nil whitelist checker")

// ErrNilNonceHandler signals that a nil nonce handler was provided
var ErrNilNonceHandler = errors.New("nil nonce handler")

// ErrNilTransferBuilder signals that a nil transfer builder was provided
var ErrNilTransferBuilder = errors.New("nil transfer builder")

// ErrNilSubmitter signals that a nil submitter was provided
var ErrNilSubmitter = errors.New("nil submitter")

// ErrNilConfirmationPoller signals that a nil confirmation poller was provided
var ErrNilConfirmationPoller = errors.New("nil confirmation poller")

// ErrNilUsageFeeGate signals that a nil usage fee gate was provided
var ErrNilUsageFeeGate = errors.New("nil usage fee gate")

// ErrNilBatchScheduler signals that a nil batch scheduler was provided
var ErrNilBatchScheduler = errors.New("nil batch scheduler")

// ErrNilClock signals that a nil clock was provided
var ErrNilClock = errors.New("nil clock")

// ErrNilMetricsHandler signals that a nil metrics handler was provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")

// ErrNilPubkeyConverter signals that a nil public key converter was provided
var ErrNilPubkeyConverter = errors.New("nil pubkey converter")

// ErrNilTransaction signals that a nil transaction was provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrNilWorker signals that a nil batch worker was provided
var ErrNilWorker = errors.New("nil batch worker")

// ErrTransactionAlreadySigned signals an attempt to sign a transaction that already carries a signature
var ErrTransactionAlreadySigned = errors.New("transaction already signed")

// ErrSignerAddressMismatch signals that the signer does not own the sender address of the transaction
var ErrSignerAddressMismatch = errors.New("signer address mismatch")

// ErrInvalidMaxRetries signals an invalid retry budget
var ErrInvalidMaxRetries = errors.New("invalid max retries")

// ErrInvalidPollingInterval signals an invalid polling interval
var ErrInvalidPollingInterval = errors.New("invalid polling interval")

// ErrInvalidGroupSize signals an invalid batch group size
var ErrInvalidGroupSize = errors.New("invalid group size")

// ErrInvalidGroupDelay signals a negative delay between batch groups
var ErrInvalidGroupDelay = errors.New("invalid group delay")

// ErrInvalidGasPrice signals an invalid gas price
var ErrInvalidGasPrice = errors.New("invalid gas price")

// ErrEmptyChainID signals an empty chain ID
var ErrEmptyChainID = errors.New("empty chain ID")

// ErrInvalidFeeAmount signals a usage fee amount that is not a positive number
var ErrInvalidFeeAmount = errors.New("invalid usage fee amount")

// ErrEmptyTreasuryAddress signals a missing treasury address
var ErrEmptyTreasuryAddress = errors.New("empty treasury address")

// ErrEmptyFeeToken signals a missing usage fee token identifier
var ErrEmptyFeeToken = errors.New("empty usage fee token identifier")

// TransferError decorates a pipeline error with the context needed for manual reconciliation
type TransferError struct {
	Operation string
	Address   string
	TxHash    string
	Err       error
}

// NewTransferError wraps err with the operation, the sender address and the transaction hash, when known
func NewTransferError(operation string, address string, txHash string, err error) *TransferError {
	return &TransferError{
		Operation: operation,
		Address:   address,
		TxHash:    txHash,
		Err:       err,
	}
}

// Error returns the error message
func (te *TransferError) Error() string {
	builder := strings.Builder{}
	builder.WriteString(te.Operation)
	builder.WriteString(": ")
	builder.WriteString(fmt.Sprintf("%v", te.Err))
	if len(te.Address) > 0 {
		builder.WriteString(", address: ")
		builder.WriteString(te.Address)
	}
	if len(te.TxHash) > 0 {
		builder.WriteString(", tx hash: ")
		builder.WriteString(te.TxHash)
	}

	return builder.String()
}

// Unwrap returns the wrapped error
func (te *TransferError) Unwrap() error {
	return te.Err
}

// GetTxHash returns the transaction hash carried by err, if any
func GetTxHash(err error) string {
	var transferErr *TransferError
	if errors.As(err, &transferErr) {
		return transferErr.TxHash
	}

	return ""
}
