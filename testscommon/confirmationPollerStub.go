package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// ConfirmationPollerStub -
type ConfirmationPollerStub struct {
	PollCalled func(ctx context.Context, txHash string) (data.TxStatus, error)
}

// Poll -
func (stub *ConfirmationPollerStub) Poll(ctx context.Context, txHash string) (data.TxStatus, error) {
	if stub.PollCalled != nil {
		return stub.PollCalled(ctx, txHash)
	}

	return data.StatusSuccess, nil
}

// IsInterfaceNil -
func (stub *ConfirmationPollerStub) IsInterfaceNil() bool {
	return stub == nil
}
