package nonce

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/multiversx/mx-chain-transfer-relay-go/testscommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	bob   = "erd1spyavw0956vq68xj8y4tenjpq2wd5a9p2c6j8gsz7ztyrnpxrruqzu66jx"
)

func createMockArgs() ArgsNonceSequencer {
	return ArgsNonceSequencer{
		Ledger:  &testscommon.LedgerProviderStub{},
		Metrics: &testscommon.MetricsHandlerStub{},
	}
}

func TestNewNonceSequencer(t *testing.T) {
	t.Parallel()

	t.Run("nil ledger should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Ledger = nil
		sequencer, err := NewNonceSequencer(args)
		assert.Nil(t, sequencer)
		assert.Equal(t, process.ErrNilLedgerProvider, err)
	})
	t.Run("nil metrics should error", func(t *testing.T) {
		t.Parallel()

		args := createMockArgs()
		args.Metrics = nil
		sequencer, err := NewNonceSequencer(args)
		assert.Nil(t, sequencer)
		assert.Equal(t, process.ErrNilMetricsHandler, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		sequencer, err := NewNonceSequencer(createMockArgs())
		assert.Nil(t, err)
		assert.False(t, sequencer.IsInterfaceNil())
	})
}

func TestNonceSequencer_AcquireShouldSyncOnceThenIncrement(t *testing.T) {
	t.Parallel()

	numFetches := uint32(0)
	numResyncs := uint32(0)
	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetAccountNonceCalled: func(ctx context.Context, address string) (uint64, error) {
			atomic.AddUint32(&numFetches, 1)
			return 37, nil
		},
	}
	args.Metrics = &testscommon.MetricsHandlerStub{
		NonceResyncedCalled: func() {
			atomic.AddUint32(&numResyncs, 1)
		},
	}
	sequencer, _ := NewNonceSequencer(args)

	for i := uint64(0); i < 5; i++ {
		nonce, err := sequencer.Acquire(context.Background(), alice)
		require.Nil(t, err)
		assert.Equal(t, 37+i, nonce)
	}
	assert.Equal(t, uint32(1), atomic.LoadUint32(&numFetches))
	assert.Equal(t, uint32(1), atomic.LoadUint32(&numResyncs))
}

func TestNonceSequencer_ConcurrentAcquireShouldReturnContiguousNonces(t *testing.T) {
	t.Parallel()

	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetAccountNonceCalled: func(ctx context.Context, address string) (uint64, error) {
			time.Sleep(time.Millisecond)
			return 100, nil
		},
	}
	sequencer, _ := NewNonceSequencer(args)

	numCalls := 200
	nonces := make([]uint64, numCalls)
	wg := sync.WaitGroup{}
	wg.Add(numCalls)
	for i := 0; i < numCalls; i++ {
		go func(idx int) {
			defer wg.Done()

			nonce, err := sequencer.Acquire(context.Background(), alice)
			assert.Nil(t, err)
			nonces[idx] = nonce
		}(i)
	}
	wg.Wait()

	sort.Slice(nonces, func(i, j int) bool {
		return nonces[i] < nonces[j]
	})
	for i := 0; i < numCalls; i++ {
		assert.Equal(t, uint64(100+i), nonces[i])
	}
}

func TestNonceSequencer_AcquireFailureShouldNotMutateCache(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("gateway down")
	shouldFail := true
	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetAccountNonceCalled: func(ctx context.Context, address string) (uint64, error) {
			if shouldFail {
				return 0, expectedErr
			}
			return 5, nil
		},
	}
	sequencer, _ := NewNonceSequencer(args)

	nonce, err := sequencer.Acquire(context.Background(), alice)
	assert.True(t, errors.Is(err, process.ErrNonceUnavailable))
	assert.Contains(t, err.Error(), alice)
	assert.Contains(t, err.Error(), expectedErr.Error())
	assert.Zero(t, nonce)

	shouldFail = false
	nonce, err = sequencer.Acquire(context.Background(), alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5), nonce)
}

func TestNonceSequencer_InvalidateShouldForceResync(t *testing.T) {
	t.Parallel()

	ledgerNonce := uint64(10)
	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetAccountNonceCalled: func(ctx context.Context, address string) (uint64, error) {
			return ledgerNonce, nil
		},
	}
	sequencer, _ := NewNonceSequencer(args)

	nonce, _ := sequencer.Acquire(context.Background(), alice)
	assert.Equal(t, uint64(10), nonce)
	nonce, _ = sequencer.Acquire(context.Background(), alice)
	assert.Equal(t, uint64(11), nonce)

	ledgerNonce = 11
	sequencer.Invalidate(alice)
	nonce, _ = sequencer.Acquire(context.Background(), alice)
	assert.Equal(t, uint64(11), nonce)

	// invalidating an unknown address is a no-op
	sequencer.Invalidate(bob)
}

func TestNonceSequencer_DifferentAddressesShouldNotBlockEachOther(t *testing.T) {
	t.Parallel()

	chRelease := make(chan struct{})
	chAliceFetching := make(chan struct{})
	args := createMockArgs()
	args.Ledger = &testscommon.LedgerProviderStub{
		GetAccountNonceCalled: func(ctx context.Context, address string) (uint64, error) {
			if address == alice {
				close(chAliceFetching)
				<-chRelease
				return 1, nil
			}
			return 7, nil
		},
	}
	sequencer, _ := NewNonceSequencer(args)

	chAliceDone := make(chan uint64)
	go func() {
		nonce, _ := sequencer.Acquire(context.Background(), alice)
		chAliceDone <- nonce
	}()
	<-chAliceFetching

	nonce, err := sequencer.Acquire(context.Background(), bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(7), nonce)

	close(chRelease)
	assert.Equal(t, uint64(1), <-chAliceDone)
}
