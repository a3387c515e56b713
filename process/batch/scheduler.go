package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"golang.org/x/sync/errgroup"
)

var log = logger.GetOrCreate("process/batch")

// ArgsBatchScheduler holds the arguments needed to create a new batch scheduler
type ArgsBatchScheduler struct {
	Clock      process.Clock
	Metrics    process.MetricsHandler
	GroupSize  int
	GroupDelay time.Duration
}

type batchScheduler struct {
	clock      process.Clock
	metrics    process.MetricsHandler
	groupSize  int
	groupDelay time.Duration
}

// NewBatchScheduler creates a scheduler that runs intents in consecutive concurrent groups
func NewBatchScheduler(args ArgsBatchScheduler) (*batchScheduler, error) {
	if args.Clock == nil {
		return nil, process.ErrNilClock
	}
	if check.IfNil(args.Metrics) {
		return nil, process.ErrNilMetricsHandler
	}
	if args.GroupSize < 1 {
		return nil, fmt.Errorf("%w: %d", process.ErrInvalidGroupSize, args.GroupSize)
	}
	if args.GroupDelay < 0 {
		return nil, process.ErrInvalidGroupDelay
	}

	return &batchScheduler{
		clock:      args.Clock,
		metrics:    args.Metrics,
		groupSize:  args.GroupSize,
		groupDelay: args.GroupDelay,
	}, nil
}

// Run processes the intents in groups of at most groupSize items. The items of a group run concurrently and the
// next group starts after the whole group finished and the group delay elapsed. The outcome always holds one
// entry per intent, in input order. A failing item never stops its siblings or the following groups.
func (bs *batchScheduler) Run(ctx context.Context, intents []*data.TransferIntent, worker process.BatchWorker) data.BatchOutcome {
	outcome := make(data.BatchOutcome, len(intents))
	if worker == nil {
		for i, intent := range intents {
			outcome[i] = failedItem(intent, nil, process.ErrNilWorker)
		}
		return outcome
	}

	numGroups := 0
	for groupStart := 0; groupStart < len(intents); groupStart += bs.groupSize {
		if groupStart > 0 {
			err := bs.waitGroupDelay(ctx)
			if err != nil {
				bs.abortRemaining(intents, outcome, groupStart, err)
				break
			}
		}

		groupEnd := groupStart + bs.groupSize
		if groupEnd > len(intents) {
			groupEnd = len(intents)
		}

		err := bs.runGroup(ctx, intents, outcome, groupStart, groupEnd, worker)
		numGroups++
		if err != nil && groupEnd < len(intents) {
			bs.abortRemaining(intents, outcome, groupEnd, err)
			break
		}
	}

	log.Debug("batch done", "num items", len(intents), "num groups", numGroups, "num failed", outcome.NumFailed())

	return outcome
}

func (bs *batchScheduler) waitGroupDelay(ctx context.Context) error {
	if bs.groupDelay == 0 {
		return nil
	}

	select {
	case <-bs.clock.After(bs.groupDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (bs *batchScheduler) runGroup(
	ctx context.Context,
	intents []*data.TransferIntent,
	outcome data.BatchOutcome,
	groupStart int,
	groupEnd int,
	worker process.BatchWorker,
) error {
	log.Trace("batch group started", "first item", groupStart, "last item", groupEnd-1)

	// item failures stay in the outcome, only the context error is reported to the caller
	group := errgroup.Group{}
	group.SetLimit(bs.groupSize)
	for i := groupStart; i < groupEnd; i++ {
		idx := i
		group.Go(func() error {
			outcome[idx] = bs.runItem(ctx, intents[idx], worker)
			bs.metrics.BatchItemProcessed(outcome[idx].Status)
			return ctx.Err()
		})
	}

	return group.Wait()
}

func (bs *batchScheduler) runItem(ctx context.Context, intent *data.TransferIntent, worker process.BatchWorker) (item data.BatchItemOutcome) {
	if intent == nil {
		return failedItem(nil, nil, fmt.Errorf("%w: nil intent", process.ErrInvalidIntent))
	}

	defer func() {
		r := recover()
		if r != nil {
			log.Error("batch item panicked", "key", intent.ItemKey(), "panic", r)
			item = failedItem(intent, nil, fmt.Errorf("batch item panicked: %v", r))
		}
	}()

	result, err := worker(ctx, intent)
	if err != nil {
		log.Debug("batch item failed", "key", intent.ItemKey(), "error", err)
		return failedItem(intent, result, err)
	}

	item = data.BatchItemOutcome{
		ItemKey: intent.ItemKey(),
		Status:  data.BatchItemSucceeded,
	}
	if result != nil {
		item.TxStatus = result.Status
		item.TransactionID = result.TransactionID
	}

	return item
}

func (bs *batchScheduler) abortRemaining(intents []*data.TransferIntent, outcome data.BatchOutcome, from int, err error) {
	log.Warn("batch aborted before all groups started", "num remaining", len(intents)-from, "error", err)

	for i := from; i < len(intents); i++ {
		outcome[i] = failedItem(intents[i], nil, err)
		bs.metrics.BatchItemProcessed(data.BatchItemFailed)
	}
}

func failedItem(intent *data.TransferIntent, result *data.SubmissionResult, err error) data.BatchItemOutcome {
	item := data.BatchItemOutcome{
		Status:        data.BatchItemFailed,
		TransactionID: process.GetTxHash(err),
		Error:         err.Error(),
		Err:           err,
	}
	if intent != nil {
		item.ItemKey = intent.ItemKey()
	}
	if result != nil {
		item.TxStatus = result.Status
		if len(result.TransactionID) > 0 {
			item.TransactionID = result.TransactionID
		}
	}

	return item
}

// IsInterfaceNil returns true if there is no value under the interface
func (bs *batchScheduler) IsInterfaceNil() bool {
	return bs == nil
}
