package testscommon

import (
	"github.com/multiversx/mx-chain-core-go/data/transaction"
)

// TxSignerStub -
type TxSignerStub struct {
	SignTransactionCalled func(tx *transaction.Transaction) ([]byte, error)
	AddressCalled         func() string
}

// SignTransaction -
func (stub *TxSignerStub) SignTransaction(tx *transaction.Transaction) ([]byte, error) {
	if stub.SignTransactionCalled != nil {
		return stub.SignTransactionCalled(tx)
	}

	return []byte("signature"), nil
}

// Address -
func (stub *TxSignerStub) Address() string {
	if stub.AddressCalled != nil {
		return stub.AddressCalled()
	}

	return ""
}

// IsInterfaceNil -
func (stub *TxSignerStub) IsInterfaceNil() bool {
	return stub == nil
}
