package testscommon

// WhitelistHandlerStub -
type WhitelistHandlerStub struct {
	IsWhitelistedCalled func(address string) (bool, error)
	AddCalled           func(address string) error
	RemoveCalled        func(address string) error
	ListCalled          func() ([]string, error)
}

// IsWhitelisted -
func (stub *WhitelistHandlerStub) IsWhitelisted(address string) (bool, error) {
	if stub.IsWhitelistedCalled != nil {
		return stub.IsWhitelistedCalled(address)
	}

	return false, nil
}

// Add -
func (stub *WhitelistHandlerStub) Add(address string) error {
	if stub.AddCalled != nil {
		return stub.AddCalled(address)
	}

	return nil
}

// Remove -
func (stub *WhitelistHandlerStub) Remove(address string) error {
	if stub.RemoveCalled != nil {
		return stub.RemoveCalled(address)
	}

	return nil
}

// List -
func (stub *WhitelistHandlerStub) List() ([]string, error) {
	if stub.ListCalled != nil {
		return stub.ListCalled()
	}

	return make([]string, 0), nil
}

// IsInterfaceNil -
func (stub *WhitelistHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
