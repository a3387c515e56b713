package wallet

import (
	"fmt"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

var log = logger.GetOrCreate("wallet")

// LoadKeysFunc loads the private key bytes and the public key string from the PEM file at the given index
type LoadKeysFunc func(relativePath string, skIndex int) ([]byte, string, error)

// ArgsRegistry holds the arguments needed to create a new wallets registry
type ArgsRegistry struct {
	PemFiles        []config.PemFileConfig
	LoadKeys        LoadKeysFunc
	PubkeyConverter core.PubkeyConverter
	Marshaller      marshal.Marshalizer
	Hasher          hashing.Hasher
}

// registry resolves the signer of a sender address among the loaded wallets
type registry struct {
	mut     sync.RWMutex
	signers map[string]*signer
}

// NewRegistry loads every configured PEM file. The LoadKeys function defaults to core.LoadSkPkFromPemFile.
func NewRegistry(args ArgsRegistry) (*registry, error) {
	if check.IfNil(args.PubkeyConverter) {
		return nil, process.ErrNilPubkeyConverter
	}

	loadKeys := args.LoadKeys
	if loadKeys == nil {
		loadKeys = core.LoadSkPkFromPemFile
	}

	r := &registry{
		signers: make(map[string]*signer),
	}
	for _, pemFile := range args.PemFiles {
		s, err := loadSigner(pemFile, loadKeys, args)
		if err != nil {
			return nil, fmt.Errorf("%w for PEM file %s, index %d", err, pemFile.Path, pemFile.Index)
		}

		err = r.add(s)
		if err != nil {
			return nil, err
		}

		log.Info("wallet loaded", "address", s.Address(), "file", pemFile.Path, "index", pemFile.Index)
	}

	return r, nil
}

func loadSigner(pemFile config.PemFileConfig, loadKeys LoadKeysFunc, args ArgsRegistry) (*signer, error) {
	privateKey, pemAddress, err := loadKeys(pemFile.Path, pemFile.Index)
	if err != nil {
		return nil, err
	}

	s, err := NewSigner(ArgsSigner{
		PrivateKey:      privateKey,
		PubkeyConverter: args.PubkeyConverter,
		Marshaller:      args.Marshaller,
		Hasher:          args.Hasher,
	})
	if err != nil {
		return nil, err
	}

	if len(pemAddress) > 0 && pemAddress != s.Address() {
		return nil, fmt.Errorf("%w: header %s, key %s", ErrPemAddressMismatch, pemAddress, s.Address())
	}

	return s, nil
}

func (r *registry) add(s *signer) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	_, found := r.signers[s.Address()]
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicatedWallet, s.Address())
	}

	r.signers[s.Address()] = s

	return nil
}

// SignerFor returns the signer of the sender address
func (r *registry) SignerFor(address string) (process.TxSigner, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	s, found := r.signers[address]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSender, address)
	}

	return s, nil
}

// Addresses returns the addresses of the loaded wallets
func (r *registry) Addresses() []string {
	r.mut.RLock()
	defer r.mut.RUnlock()

	addresses := make([]string, 0, len(r.signers))
	for address := range r.signers {
		addresses = append(addresses, address)
	}

	return addresses
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *registry) IsInterfaceNil() bool {
	return r == nil
}
