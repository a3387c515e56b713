package testscommon

import (
	"context"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// TransferBuilderStub -
type TransferBuilderStub struct {
	CheckIntentCalled func(intent *data.TransferIntent) error
	BuildCalled       func(ctx context.Context, intent *data.TransferIntent, nonce uint64) (*transaction.Transaction, error)
}

// CheckIntent -
func (stub *TransferBuilderStub) CheckIntent(intent *data.TransferIntent) error {
	if stub.CheckIntentCalled != nil {
		return stub.CheckIntentCalled(intent)
	}

	return nil
}

// Build -
func (stub *TransferBuilderStub) Build(ctx context.Context, intent *data.TransferIntent, nonce uint64) (*transaction.Transaction, error) {
	if stub.BuildCalled != nil {
		return stub.BuildCalled(ctx, intent, nonce)
	}

	return &transaction.Transaction{
		Nonce:   nonce,
		Value:   big.NewInt(0),
		SndAddr: []byte(intent.Sender),
		RcvAddr: []byte(intent.Receiver),
	}, nil
}

// IsInterfaceNil -
func (stub *TransferBuilderStub) IsInterfaceNil() bool {
	return stub == nil
}
