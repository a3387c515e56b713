package confirmation

import (
	"context"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("process/confirmation")

// DefaultMaxRetries is the retry budget used when none is configured
const DefaultMaxRetries = 20

// DefaultInterval is the time between two status queries used when none is configured
const DefaultInterval = 6 * time.Second

// ArgsConfirmationPoller holds the arguments needed to create a new confirmation poller
type ArgsConfirmationPoller struct {
	Ledger     process.LedgerProvider
	Clock      process.Clock
	Metrics    process.MetricsHandler
	MaxRetries uint32
	Interval   time.Duration
}

type confirmationPoller struct {
	ledger     process.LedgerProvider
	clock      process.Clock
	metrics    process.MetricsHandler
	maxRetries uint32
	interval   time.Duration
}

// NewConfirmationPoller creates a poller that queries the ledger status of a transaction until a terminal state
// is reported or the retry budget is exhausted
func NewConfirmationPoller(args ArgsConfirmationPoller) (*confirmationPoller, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &confirmationPoller{
		ledger:     args.Ledger,
		clock:      args.Clock,
		metrics:    args.Metrics,
		maxRetries: args.MaxRetries,
		interval:   args.Interval,
	}, nil
}

func checkArgs(args ArgsConfirmationPoller) error {
	if check.IfNil(args.Ledger) {
		return process.ErrNilLedgerProvider
	}
	if args.Clock == nil {
		return process.ErrNilClock
	}
	if check.IfNil(args.Metrics) {
		return process.ErrNilMetricsHandler
	}
	if args.MaxRetries == 0 {
		return process.ErrInvalidMaxRetries
	}
	if args.Interval <= 0 {
		return process.ErrInvalidPollingInterval
	}

	return nil
}

// Poll waits one interval before each status query. It returns StatusSuccess or StatusFail as soon as the ledger
// reports them. When the retry budget runs out or the context is done first, it returns StatusUnknown together
// with an ErrConfirmationTimeout error carrying the transaction hash.
func (cp *confirmationPoller) Poll(ctx context.Context, txHash string) (data.TxStatus, error) {
	startTime := time.Now()

	for attempt := uint32(1); attempt <= cp.maxRetries; attempt++ {
		select {
		case <-cp.clock.After(cp.interval):
		case <-ctx.Done():
			return cp.resolveUnknown(txHash, startTime, fmt.Errorf("%w after %d attempts: %v", process.ErrConfirmationTimeout, attempt-1, ctx.Err()))
		}

		status := cp.queryStatus(ctx, txHash, attempt)
		if status.IsTerminal() {
			cp.metrics.ConfirmationResolved(status, time.Since(startTime))
			log.Debug("transaction resolved", "hash", txHash, "status", status, "attempt", attempt)

			return status, nil
		}
	}

	return cp.resolveUnknown(txHash, startTime, fmt.Errorf("%w after %d attempts", process.ErrConfirmationTimeout, cp.maxRetries))
}

func (cp *confirmationPoller) queryStatus(ctx context.Context, txHash string, attempt uint32) data.TxStatus {
	ledgerStatus, err := cp.ledger.GetTransactionStatus(ctx, txHash)
	if err != nil {
		log.Debug("cannot get transaction status", "hash", txHash, "attempt", attempt, "error", err)
		return data.StatusPending
	}

	log.Trace("transaction status", "hash", txHash, "attempt", attempt, "status", ledgerStatus)

	return process.StatusFromLedger(ledgerStatus)
}

func (cp *confirmationPoller) resolveUnknown(txHash string, startTime time.Time, err error) (data.TxStatus, error) {
	cp.metrics.ConfirmationResolved(data.StatusUnknown, time.Since(startTime))
	log.Warn("transaction not confirmed, it may still be executed", "hash", txHash, "error", err)

	return data.StatusUnknown, process.NewTransferError("confirm transaction", "", txHash, err)
}

// IsInterfaceNil returns true if there is no value under the interface
func (cp *confirmationPoller) IsInterfaceNil() bool {
	return cp == nil
}
