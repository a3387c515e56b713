package testscommon

// WhitelistCheckerStub -
type WhitelistCheckerStub struct {
	IsWhitelistedCalled func(address string) (bool, error)
}

// IsWhitelisted -
func (stub *WhitelistCheckerStub) IsWhitelisted(address string) (bool, error) {
	if stub.IsWhitelistedCalled != nil {
		return stub.IsWhitelistedCalled(address)
	}

	return false, nil
}

// IsInterfaceNil -
func (stub *WhitelistCheckerStub) IsInterfaceNil() bool {
	return stub == nil
}
