package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

// SubmitterStub -
type SubmitterStub struct {
	SubmitCalled func(ctx context.Context, tx *transaction.Transaction, signer process.TxSigner) (string, error)
}

// Submit -
func (stub *SubmitterStub) Submit(ctx context.Context, tx *transaction.Transaction, signer process.TxSigner) (string, error) {
	if stub.SubmitCalled != nil {
		return stub.SubmitCalled(ctx, tx, signer)
	}

	return "hash", nil
}

// IsInterfaceNil -
func (stub *SubmitterStub) IsInterfaceNil() bool {
	return stub == nil
}
