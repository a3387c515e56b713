package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

// BatchSchedulerStub -
type BatchSchedulerStub struct {
	RunCalled func(ctx context.Context, intents []*data.TransferIntent, worker process.BatchWorker) data.BatchOutcome
}

// Run runs the intents sequentially if no handler is set
func (stub *BatchSchedulerStub) Run(ctx context.Context, intents []*data.TransferIntent, worker process.BatchWorker) data.BatchOutcome {
	if stub.RunCalled != nil {
		return stub.RunCalled(ctx, intents, worker)
	}

	outcome := make(data.BatchOutcome, 0, len(intents))
	for _, intent := range intents {
		item := data.BatchItemOutcome{
			ItemKey: intent.ItemKey(),
			Status:  data.BatchItemSucceeded,
		}
		result, err := worker(ctx, intent)
		if err != nil {
			item.Status = data.BatchItemFailed
			item.Error = err.Error()
			item.Err = err
		}
		if result != nil {
			item.TxStatus = result.Status
			item.TransactionID = result.TransactionID
		}
		outcome = append(outcome, item)
	}

	return outcome
}

// IsInterfaceNil -
func (stub *BatchSchedulerStub) IsInterfaceNil() bool {
	return stub == nil
}
