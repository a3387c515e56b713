package whitelist

import (
	"fmt"
	"sort"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var log = logger.GetOrCreate("whitelist")

var keyPrefix = []byte("whitelist_")

var present = []byte{1}

// ArgsWhitelist holds the arguments needed to create a new whitelist
type ArgsWhitelist struct {
	// DBPath is the LevelDB directory. An empty path keeps the whitelist in memory.
	DBPath          string
	Seed            []string
	PubkeyConverter core.PubkeyConverter
}

// whitelist holds the addresses exempted from the usage fee
type whitelist struct {
	mut             sync.RWMutex
	db              *leveldb.DB
	pubkeyConverter core.PubkeyConverter
}

// NewWhitelist opens the whitelist database and adds the seed addresses to it
func NewWhitelist(args ArgsWhitelist) (*whitelist, error) {
	if check.IfNil(args.PubkeyConverter) {
		return nil, process.ErrNilPubkeyConverter
	}

	db, err := openDB(args.DBPath)
	if err != nil {
		return nil, err
	}

	wl := &whitelist{
		db:              db,
		pubkeyConverter: args.PubkeyConverter,
	}

	for _, address := range args.Seed {
		err = wl.Add(address)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w while seeding the whitelist", err)
		}
	}

	log.Debug("whitelist opened", "path", args.DBPath, "num seed addresses", len(args.Seed))

	return wl, nil
}

func openDB(path string) (*leveldb.DB, error) {
	if len(path) == 0 {
		return leveldb.Open(storage.NewMemStorage(), nil)
	}

	options := &opt.Options{
		OpenFilesCacheCapacity: 10,
	}

	return leveldb.OpenFile(path, options)
}

// IsWhitelisted returns true if the address is exempted from the usage fee
func (wl *whitelist) IsWhitelisted(address string) (bool, error) {
	wl.mut.RLock()
	defer wl.mut.RUnlock()

	if wl.db == nil {
		return false, ErrWhitelistClosed
	}

	return wl.db.Has(addressKey(address), nil)
}

// Add exempts the address from the usage fee. Adding an already whitelisted address is a no-op.
func (wl *whitelist) Add(address string) error {
	err := wl.checkAddress(address)
	if err != nil {
		return err
	}

	wl.mut.Lock()
	defer wl.mut.Unlock()

	if wl.db == nil {
		return ErrWhitelistClosed
	}

	err = wl.db.Put(addressKey(address), present, nil)
	if err != nil {
		return err
	}

	log.Debug("address whitelisted", "address", address)

	return nil
}

// Remove drops the usage fee exemption of the address
func (wl *whitelist) Remove(address string) error {
	err := wl.checkAddress(address)
	if err != nil {
		return err
	}

	wl.mut.Lock()
	defer wl.mut.Unlock()

	if wl.db == nil {
		return ErrWhitelistClosed
	}

	err = wl.db.Delete(addressKey(address), nil)
	if err != nil {
		return err
	}

	log.Debug("address removed from whitelist", "address", address)

	return nil
}

// List returns the whitelisted addresses, sorted
func (wl *whitelist) List() ([]string, error) {
	wl.mut.RLock()
	defer wl.mut.RUnlock()

	if wl.db == nil {
		return nil, ErrWhitelistClosed
	}

	addresses := make([]string, 0)
	iterator := wl.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	for iterator.Next() {
		addresses = append(addresses, string(iterator.Key()[len(keyPrefix):]))
	}
	iterator.Release()

	err := iterator.Error()
	if err != nil {
		return nil, err
	}

	sort.Strings(addresses)

	return addresses, nil
}

func (wl *whitelist) checkAddress(address string) error {
	_, err := wl.pubkeyConverter.Decode(address)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrInvalidAddress, address, err)
	}

	return nil
}

// Close closes the underlying database
func (wl *whitelist) Close() error {
	wl.mut.Lock()
	defer wl.mut.Unlock()

	if wl.db == nil {
		return nil
	}

	err := wl.db.Close()
	wl.db = nil

	return err
}

func addressKey(address string) []byte {
	return append(append(make([]byte, 0, len(keyPrefix)+len(address)), keyPrefix...), address...)
}

// IsInterfaceNil returns true if there is no value under the interface
func (wl *whitelist) IsInterfaceNil() bool {
	return wl == nil
}
