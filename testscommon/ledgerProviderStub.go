package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
)

// LedgerProviderStub -
type LedgerProviderStub struct {
	GetAccountNonceCalled      func(ctx context.Context, address string) (uint64, error)
	SendTransactionCalled      func(ctx context.Context, tx *transaction.Transaction) (string, error)
	GetTransactionStatusCalled func(ctx context.Context, txHash string) (transaction.TxStatus, error)
}

// GetAccountNonce -
func (stub *LedgerProviderStub) GetAccountNonce(ctx context.Context, address string) (uint64, error) {
	if stub.GetAccountNonceCalled != nil {
		return stub.GetAccountNonceCalled(ctx, address)
	}

	return 0, nil
}

// SendTransaction -
func (stub *LedgerProviderStub) SendTransaction(ctx context.Context, tx *transaction.Transaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return "", nil
}

// GetTransactionStatus -
func (stub *LedgerProviderStub) GetTransactionStatus(ctx context.Context, txHash string) (transaction.TxStatus, error) {
	if stub.GetTransactionStatusCalled != nil {
		return stub.GetTransactionStatusCalled(ctx, txHash)
	}

	return transaction.TxStatusPending, nil
}

// IsInterfaceNil -
func (stub *LedgerProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
