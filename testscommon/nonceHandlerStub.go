package testscommon

import "context"

// NonceHandlerStub -
type NonceHandlerStub struct {
	AcquireCalled    func(ctx context.Context, address string) (uint64, error)
	InvalidateCalled func(address string)
}

// Acquire -
func (stub *NonceHandlerStub) Acquire(ctx context.Context, address string) (uint64, error) {
	if stub.AcquireCalled != nil {
		return stub.AcquireCalled(ctx, address)
	}

	return 0, nil
}

// Invalidate -
func (stub *NonceHandlerStub) Invalidate(address string) {
	if stub.InvalidateCalled != nil {
		stub.InvalidateCalled(address)
	}
}

// IsInterfaceNil -
func (stub *NonceHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
