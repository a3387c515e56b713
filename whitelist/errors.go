package whitelist

import "errors"

// ErrInvalidAddress signals an address that cannot be decoded
var ErrInvalidAddress = errors.New("invalid address")

// ErrWhitelistClosed signals an operation on a closed whitelist
var ErrWhitelistClosed = errors.New("whitelist is closed")
