package dictionary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/snappy"
)

// cacheRecord is one persisted lookup result. Found=false records a negative
// result: the word was looked up and had no definition.
type cacheRecord struct {
	Found bool  `json:"found"`
	Entry Entry `json:"entry,omitempty"`
}

// CacheStore persists lookup results, positive and negative, keyed by exact
// word string. The file is snappy-compressed JSON, loaded once at
// construction and flushed after every write so repeated runs over the same
// seed are reproducible without redundant upstream calls.
//
// An unreadable or corrupt file degrades to an empty cache, never an error.
type CacheStore struct {
	path    string
	records map[string]cacheRecord
}

// LoadCacheStore opens the cache at path, tolerating a missing or corrupt
// file. An empty path yields a memory-only store that never flushes.
func LoadCacheStore(path string) *CacheStore {
	cs := &CacheStore{
		path:    path,
		records: make(map[string]cacheRecord),
	}
	if path == "" {
		return cs
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cs
	}

	data, err := snappy.Decode(nil, raw)
	if err != nil {
		// Older caches were written uncompressed
		data = raw
	}

	var records map[string]cacheRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return cs
	}
	cs.records = records
	return cs
}

// Get returns the cached entry for word. The second result reports whether
// the cached lookup found a definition; the third whether the word has a
// cache record at all.
func (cs *CacheStore) Get(word string) (Entry, bool, bool) {
	rec, ok := cs.records[word]
	if !ok {
		return Entry{}, false, false
	}
	return rec.Entry, rec.Found, true
}

// Put records a successful lookup.
func (cs *CacheStore) Put(word string, entry Entry) {
	cs.records[word] = cacheRecord{Found: true, Entry: entry}
}

// PutNegative memoizes a failed lookup so the word is never retried until
// the cache file is removed.
func (cs *CacheStore) PutNegative(word string) {
	cs.records[word] = cacheRecord{Found: false}
}

// Len returns the number of cached records, negative entries included.
func (cs *CacheStore) Len() int {
	return len(cs.records)
}

// Flush writes the cache to disk. A memory-only store flushes to nowhere.
func (cs *CacheStore) Flush() error {
	if cs.path == "" {
		return nil
	}

	data, err := json.Marshal(cs.records)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	compressed := snappy.Encode(nil, data)
	if err := os.WriteFile(cs.path, compressed, 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", cs.path, err)
	}
	return nil
}
