package schema

import (
	"encoding/hex"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/crypto/blake2b"
)

// compiledCache holds compiled schemas keyed by content digest.
type compiledCache struct {
	mu      sync.RWMutex
	entries map[string]*jsonschema.Schema
	maxSize int
}

func newCompiledCache(maxSize int) *compiledCache {
	return &compiledCache{
		entries: make(map[string]*jsonschema.Schema),
		maxSize: maxSize,
	}
}

func (c *compiledCache) get(key string) (*jsonschema.Schema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[key]
	return s, ok
}

func (c *compiledCache) put(key string, s *jsonschema.Schema) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Full cache is dropped wholesale; generated schemas are few and stable.
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]*jsonschema.Schema)
	}
	c.entries[key] = s
}

func (c *compiledCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var canonicalCBOR = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Digest returns the hex blake2b-256 digest of the canonical CBOR encoding
// of doc. Map key order does not affect the result.
func Digest(doc map[string]any) (string, error) {
	b, err := canonicalCBOR.Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
