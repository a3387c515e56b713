package wallet

import (
	stdEd25519 "crypto/ed25519"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var keyGenerator = signing.NewKeyGenerator(ed25519.NewEd25519())

// ArgsSigner holds the arguments needed to create a new wallet signer
type ArgsSigner struct {
	PrivateKey      []byte
	PubkeyConverter core.PubkeyConverter
	Marshaller      marshal.Marshalizer
	Hasher          hashing.Hasher
}

// signer holds the ed25519 key of one wallet and signs the transactions sent from it
type signer struct {
	privateKey      crypto.PrivateKey
	publicKey       []byte
	address         string
	singleSigner    crypto.SingleSigner
	pubkeyConverter core.PubkeyConverter
	marshaller      marshal.Marshalizer
	hasher          hashing.Hasher
}

// NewSigner creates a signer from an ed25519 private key, either the 32 bytes seed or the 64 bytes full key
func NewSigner(args ArgsSigner) (*signer, error) {
	if check.IfNil(args.PubkeyConverter) {
		return nil, process.ErrNilPubkeyConverter
	}
	if check.IfNil(args.Marshaller) {
		return nil, ErrNilMarshaller
	}
	if check.IfNil(args.Hasher) {
		return nil, ErrNilHasher
	}

	privateKeyBytes, err := expandPrivateKey(args.PrivateKey)
	if err != nil {
		return nil, err
	}

	privateKey, err := keyGenerator.PrivateKeyFromByteArray(privateKeyBytes)
	if err != nil {
		return nil, err
	}

	publicKey, err := privateKey.GeneratePublic().ToByteArray()
	if err != nil {
		return nil, err
	}

	address, err := args.PubkeyConverter.Encode(publicKey)
	if err != nil {
		return nil, err
	}

	return &signer{
		privateKey:      privateKey,
		publicKey:       publicKey,
		address:         address,
		singleSigner:    &singlesig.Ed25519Signer{},
		pubkeyConverter: args.PubkeyConverter,
		marshaller:      args.Marshaller,
		hasher:          args.Hasher,
	}, nil
}

func expandPrivateKey(privateKey []byte) ([]byte, error) {
	switch len(privateKey) {
	case stdEd25519.SeedSize:
		return stdEd25519.NewKeyFromSeed(privateKey), nil
	case stdEd25519.PrivateKeySize:
		return privateKey, nil
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidPrivateKeyLength, len(privateKey))
	}
}

// SignTransaction signs the canonical signing payload of the transaction. The sender of the transaction must be
// the wallet address.
func (s *signer) SignTransaction(tx *transaction.Transaction) ([]byte, error) {
	if tx == nil {
		return nil, process.ErrNilTransaction
	}

	sender, err := s.pubkeyConverter.Encode(tx.SndAddr)
	if err != nil {
		return nil, err
	}
	if sender != s.address {
		return nil, fmt.Errorf("%w: wallet %s, sender %s", process.ErrSignerAddressMismatch, s.address, sender)
	}

	payload, err := tx.GetDataForSigning(s.pubkeyConverter, s.marshaller, s.hasher)
	if err != nil {
		return nil, err
	}

	return s.singleSigner.Sign(s.privateKey, payload)
}

// Address returns the bech32 address of the wallet
func (s *signer) Address() string {
	return s.address
}

// PublicKey returns the public key bytes of the wallet
func (s *signer) PublicKey() []byte {
	return s.publicKey
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *signer) IsInterfaceNil() bool {
	return s == nil
}
