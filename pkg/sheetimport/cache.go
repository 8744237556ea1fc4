package sheetimport

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache persists recognition results keyed by provider and page
// content, so identical pages are never sent to the API twice.
type Cache struct {
	db *badger.DB
}

// OpenCache opens (or creates) an on-disk cache at dir.
func OpenCache(dir string) (*Cache, error) {
	return openCache(badger.DefaultOptions(dir))
}

// OpenMemoryCache opens a cache that lives only for the process.
// Used by tests and --no-cache runs.
func OpenMemoryCache() (*Cache, error) {
	return openCache(badger.DefaultOptions("").WithInMemory(true))
}

func openCache(opts badger.Options) (*Cache, error) {
	db, err := badger.Open(opts.WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open recognition cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// cacheKey hashes the page contents so the key is stable across file
// renames and reorderings of the import arguments do not alias.
func cacheKey(provider string, pages []Page) []byte {
	h := sha256.New()
	for _, p := range pages {
		h.Write(p.Data)
	}
	return []byte(provider + "/" + hex.EncodeToString(h.Sum(nil)))
}

// Get returns the cached recognition for these pages, if any.
func (c *Cache) Get(provider string, pages []Page) (*Recognition, bool) {
	var rec Recognition
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(provider, pages))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return msgpack.Unmarshal(val, &rec)
	})
	if err != nil {
		// A corrupt entry behaves like a miss; the next Put overwrites it.
		return nil, false
	}
	return &rec, true
}

// Put stores a recognition result.
func (c *Cache) Put(provider string, pages []Page, rec *Recognition) error {
	val, err := msgpack.Marshal(rec)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(provider, pages), val)
	})
}
