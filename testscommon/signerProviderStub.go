package testscommon

import (
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

// SignerProviderStub -
type SignerProviderStub struct {
	SignerForCalled func(address string) (process.TxSigner, error)
}

// SignerFor -
func (stub *SignerProviderStub) SignerFor(address string) (process.TxSigner, error) {
	if stub.SignerForCalled != nil {
		return stub.SignerForCalled(address)
	}

	return &TxSignerStub{
		AddressCalled: func() string {
			return address
		},
	}, nil
}

// IsInterfaceNil -
func (stub *SignerProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
