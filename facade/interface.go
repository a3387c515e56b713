package facade

// WhitelistHandler manages the addresses exempted from the usage fee
type WhitelistHandler interface {
	IsWhitelisted(address string) (bool, error)
	Add(address string) error
	Remove(address string) error
	List() ([]string, error)
	IsInterfaceNil() bool
}
