package testscommon

import "context"

// DecimalsProviderStub -
type DecimalsProviderStub struct {
	GetDecimalsCalled func(ctx context.Context, tokenIdentifier string) (uint32, error)
}

// GetDecimals -
func (stub *DecimalsProviderStub) GetDecimals(ctx context.Context, tokenIdentifier string) (uint32, error) {
	if stub.GetDecimalsCalled != nil {
		return stub.GetDecimalsCalled(ctx, tokenIdentifier)
	}

	return 18, nil
}

// IsInterfaceNil -
func (stub *DecimalsProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
