package confirmation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/multiversx/mx-chain-transfer-relay-go/testscommon"
	"github.com/stretchr/testify/assert"
)

const txHash = "4a4b6b4bbd5ad3e8a6e7e0c5c5c84d3a1d8df4b65b5dd0c0a9b0ff7c3f4f2b11"

func createMockArgs() ArgsConfirmationPoller {
	return ArgsConfirmationPoller{
		Ledger:     &testscommon.LedgerProviderStub{},
		Clock:      &testscommon.ClockStub{},
		Metrics:    &testscommon.MetricsHandlerStub{},
		MaxRetries: 3,
		Interval:   time.Second * 5,
	}
}

func createLedgerWithStatuses(statuses []transaction.TxStatus, numCalls *int) *testscommon.LedgerProviderStub {
	return &testscommon.LedgerProviderStub{
		GetTransactionStatusCalled: func(ctx context.Context, hash string) (transaction.TxStatus, error) {
			idx := *numCalls
			*numCalls++
			if idx < len(statuses) {
				return statuses[idx], nil
			}
			return transaction.TxStatusPending, nil
		},
	}
}

func TestNewConfirmationPoller(t *testing.T) {
	t.Parallel()

	t.Run("nil ledger should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Ledger = nil
		poller, err := NewConfirmationPoller(args)
		assert.Nil(t, poller)
		assert.Equal(t, process.ErrNilLedgerProvider, err)
	})
	t.Run("nil clock should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Clock = nil
		poller, err := NewConfirmationPoller(args)
		assert.Nil(t, poller)
		assert.Equal(t, process.ErrNilClock, err)
	})
	t.Run("nil metrics should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Metrics = nil
		poller, err := NewConfirmationPoller(args)
		assert.Nil(t, poller)
		assert.Equal(t, process.ErrNilMetricsHandler, err)
	})
	t.Run("zero retries should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.MaxRetries = 0
		poller, err := NewConfirmationPoller(args)
		assert.Nil(t, poller)
		assert.Equal(t, process.ErrInvalidMaxRetries, err)
	})
	t.Run("zero interval should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Interval = 0
		poller, err := NewConfirmationPoller(args)
		assert.Nil(t, poller)
		assert.Equal(t, process.ErrInvalidPollingInterval, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		poller, err := NewConfirmationPoller(createMockArgs())
		assert.Nil(t, err)
		assert.False(t, poller.IsInterfaceNil())
	})
}

func TestConfirmationPoller_NeverTerminalShouldResolveUnknown(t *testing.T) {
	t.Parallel()

	numCalls := 0
	resolvedStatus := data.TxStatus("")
	clock := &testscommon.ClockStub{}
	args := createMockArgs()
	args.Clock = clock
	args.Ledger = createLedgerWithStatuses(nil, &numCalls)
	args.Metrics = &testscommon.MetricsHandlerStub{
		ConfirmationResolvedCalled: func(status data.TxStatus, elapsed time.Duration) {
			resolvedStatus = status
		},
	}
	poller, _ := NewConfirmationPoller(args)

	status, err := poller.Poll(context.Background(), txHash)
	assert.Equal(t, data.StatusUnknown, status)
	assert.True(t, errors.Is(err, process.ErrConfirmationTimeout))
	assert.Equal(t, txHash, process.GetTxHash(err))
	assert.Equal(t, 3, numCalls)
	assert.Equal(t, []time.Duration{time.Second * 5, time.Second * 5, time.Second * 5}, clock.Durations())
	assert.Equal(t, data.StatusUnknown, resolvedStatus)
}

func TestConfirmationPoller_SuccessOnSecondTickShouldNotConsumeThirdTick(t *testing.T) {
	t.Parallel()

	numCalls := 0
	clock := &testscommon.ClockStub{}
	args := createMockArgs()
	args.Clock = clock
	args.Ledger = createLedgerWithStatuses([]transaction.TxStatus{transaction.TxStatusPending, transaction.TxStatusSuccess}, &numCalls)
	poller, _ := NewConfirmationPoller(args)

	status, err := poller.Poll(context.Background(), txHash)
	assert.Nil(t, err)
	assert.Equal(t, data.StatusSuccess, status)
	assert.Equal(t, 2, numCalls)
	assert.Equal(t, 2, clock.NumWaits())
}

func TestConfirmationPoller_FailAndInvalidShouldBeTerminal(t *testing.T) {
	t.Parallel()

	for _, ledgerStatus := range []transaction.TxStatus{transaction.TxStatusFail, transaction.TxStatusInvalid} {
		numCalls := 0
		args := createMockArgs()
		args.Ledger = createLedgerWithStatuses([]transaction.TxStatus{ledgerStatus}, &numCalls)
		poller, _ := NewConfirmationPoller(args)

		status, err := poller.Poll(context.Background(), txHash)
		assert.Nil(t, err)
		assert.Equal(t, data.StatusFail, status)
		assert.Equal(t, 1, numCalls)
	}
}

func TestConfirmationPoller_TransportErrorsShouldConsumeRetries(t *testing.T) {
	t.Parallel()

	numCalls := 0
	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetTransactionStatusCalled: func(ctx context.Context, hash string) (transaction.TxStatus, error) {
			numCalls++
			if numCalls < 3 {
				return "", errors.New("connection reset")
			}
			return transaction.TxStatusSuccess, nil
		},
	}
	poller, _ := NewConfirmationPoller(args)

	status, err := poller.Poll(context.Background(), txHash)
	assert.Nil(t, err)
	assert.Equal(t, data.StatusSuccess, status)
	assert.Equal(t, 3, numCalls)
}

func TestConfirmationPoller_CancelledContextShouldResolveUnknown(t *testing.T) {
	t.Parallel()

	args := createMockArgs()
	args.Clock = &testscommon.ClockStub{
		AfterCalled: func(d time.Duration) <-chan time.Time {
			return make(chan time.Time)
		},
	}
	args.Ledger = &testscommon.LedgerProviderStub{
		GetTransactionStatusCalled: func(ctx context.Context, hash string) (transaction.TxStatus, error) {
			assert.Fail(t, "should have not queried the ledger")
			return "", nil
		},
	}
	poller, _ := NewConfirmationPoller(args)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := poller.Poll(ctx, txHash)
	assert.Equal(t, data.StatusUnknown, status)
	assert.True(t, errors.Is(err, process.ErrConfirmationTimeout))
	assert.Equal(t, txHash, process.GetTxHash(err))
}
