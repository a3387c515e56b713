package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

// UsageFeeGateStub -
type UsageFeeGateStub struct {
	AdmitCalled func(ctx context.Context, sender string, signer process.TxSigner) (string, error)
}

// Admit -
func (stub *UsageFeeGateStub) Admit(ctx context.Context, sender string, signer process.TxSigner) (string, error) {
	if stub.AdmitCalled != nil {
		return stub.AdmitCalled(ctx, sender, signer)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *UsageFeeGateStub) IsInterfaceNil() bool {
	return stub == nil
}
