package nonce

import (
	"context"
	"fmt"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("process/nonce")

// ArgsNonceSequencer holds the arguments needed to create a new nonce sequencer
type ArgsNonceSequencer struct {
	Ledger  process.LedgerProvider
	Metrics process.MetricsHandler
}

type addressNonce struct {
	mut      sync.Mutex
	next     uint64
	isSynced bool
}

type nonceSequencer struct {
	ledger  process.LedgerProvider
	metrics process.MetricsHandler

	mutEntries sync.Mutex
	entries    map[string]*addressNonce
}

// NewNonceSequencer creates a sequencer that hands out per-sender nonces, syncing with the ledger on first use
// and after each invalidation
func NewNonceSequencer(args ArgsNonceSequencer) (*nonceSequencer, error) {
	if check.IfNil(args.Ledger) {
		return nil, process.ErrNilLedgerProvider
	}
	if check.IfNil(args.Metrics) {
		return nil, process.ErrNilMetricsHandler
	}

	return &nonceSequencer{
		ledger:  args.Ledger,
		metrics: args.Metrics,
		entries: make(map[string]*addressNonce),
	}, nil
}

// Acquire returns the next nonce of the address and reserves it. Callers of the same address are serialized,
// callers of different addresses do not wait for each other.
func (ns *nonceSequencer) Acquire(ctx context.Context, address string) (uint64, error) {
	entry := ns.getOrCreateEntry(address)

	entry.mut.Lock()
	defer entry.mut.Unlock()

	if !entry.isSynced {
		accountNonce, err := ns.ledger.GetAccountNonce(ctx, address)
		if err != nil {
			return 0, process.NewTransferError("acquire nonce", address, "", fmt.Errorf("%w: %v", process.ErrNonceUnavailable, err))
		}

		log.Debug("nonce synced from ledger", "address", address, "nonce", accountNonce)
		entry.next = accountNonce
		entry.isSynced = true
		ns.metrics.NonceResynced()
	}

	nonce := entry.next
	entry.next++

	log.Trace("nonce acquired", "address", address, "nonce", nonce)

	return nonce, nil
}

// Invalidate forces the next Acquire for the address to re-read the nonce from the ledger
func (ns *nonceSequencer) Invalidate(address string) {
	ns.mutEntries.Lock()
	entry, found := ns.entries[address]
	ns.mutEntries.Unlock()
	if !found {
		return
	}

	entry.mut.Lock()
	entry.isSynced = false
	entry.mut.Unlock()

	log.Debug("nonce invalidated", "address", address)
}

func (ns *nonceSequencer) getOrCreateEntry(address string) *addressNonce {
	ns.mutEntries.Lock()
	defer ns.mutEntries.Unlock()

	entry, found := ns.entries[address]
	if !found {
		entry = &addressNonce{}
		ns.entries[address] = entry
	}

	return entry
}

// IsInterfaceNil returns true if there is no value under the interface
func (ns *nonceSequencer) IsInterfaceNil() bool {
	return ns == nil
}
