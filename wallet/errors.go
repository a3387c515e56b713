package wallet

import "errors"

// ErrNilMarshaller signals that a nil marshaller was provided
var ErrNilMarshaller = errors.New("nil marshaller")

// ErrNilHasher signals that a nil hasher was provided
var ErrNilHasher = errors.New("nil hasher")

// ErrInvalidPrivateKeyLength signals a private key that is neither a seed nor a full ed25519 key
var ErrInvalidPrivateKeyLength = errors.New("invalid private key length")

// ErrPemAddressMismatch signals a PEM file whose header does not match the key it holds
var ErrPemAddressMismatch = errors.New("pem address mismatch")

// ErrDuplicatedWallet signals two PEM files holding the same wallet
var ErrDuplicatedWallet = errors.New("duplicated wallet")

// ErrUnknownSender signals that no wallet is loaded for the sender address
var ErrUnknownSender = errors.New("unknown sender")
