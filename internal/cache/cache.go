// Package cache implements the TTL cache sitting between the API facade
// and the repository.
//
// Entries carry an absolute (not sliding) expiry: a value set at T is
// served until T+TTL regardless of reads. Values pass through JSON on the
// way in and out, so cached data never shares memory with the caller —
// the same copy-on-read contract the durable store gives the repository.
//
// When a storage handle is provided, the full entry map is written to the
// durable store after every mutation and reloaded (minus expired entries)
// on construction. Storage failures are logged and swallowed; the cache
// degrades to memory-only for that operation.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmolina/fleetdesk/internal/storage"
)

// DefaultTTL matches the original five-minute freshness window.
const DefaultTTL = 5 * time.Minute

// snapshotVersion tags the persisted blob so a future shape change can
// detect and discard incompatible data.
const snapshotVersion = 1

type entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type snapshot struct {
	Version int              `json:"version"`
	Entries map[string]entry `json:"entries"`
}

// Stats is the introspection result of Stats().
type Stats struct {
	Size               int           `json:"size"`
	Keys               []string      `json:"keys"`
	TTL                time.Duration `json:"ttl"`
	PersistenceEnabled bool          `json:"persistenceEnabled"`
}

// Options configure optional cache behavior.
type Options struct {
	// Store enables durable persistence of the entry map when non-nil.
	Store *storage.Store
	// StorageKey is the durable key for the persisted blob,
	// e.g. "fleetdesk-api-cache". Required when Store is set.
	StorageKey string
	// SweepInterval overrides the background sweep cadence.
	// Zero means TTL/6. The sweep is housekeeping only; Get and Has
	// evict lazily and stay correct without it.
	SweepInterval time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Cache is a process-lifetime key-value cache with a single default TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration

	store      *storage.Store
	storageKey string

	now  func() time.Time
	done chan struct{}
	stop sync.Once
}

// New creates a cache with the given TTL (DefaultTTL if zero) and starts
// the background sweep. Callers own the lifecycle and must call Stop.
func New(ttl time.Duration, opts Options) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		store:      opts.Store,
		storageKey: opts.StorageKey,
		now:        opts.Now,
		done:       make(chan struct{}),
	}
	if c.now == nil {
		c.now = time.Now
	}

	if c.store != nil {
		c.loadFromStorage()
	}

	interval := opts.SweepInterval
	if interval <= 0 {
		interval = ttl / 6
	}
	go c.sweepLoop(interval)

	return c
}

// Stop terminates the background sweep. Safe to call more than once.
func (c *Cache) Stop() {
	c.stop.Do(func() { close(c.done) })
}

// Get decodes the cached value under key into dest and reports whether a
// fresh entry existed. A stale entry is evicted and reported as a miss.
func (c *Cache) Get(key string, dest any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.expired(e) {
		delete(c.entries, key)
		c.persistLocked()
		return false
	}
	if err := json.Unmarshal(e.Data, dest); err != nil {
		log.Printf("[cache] decode %q: %v", key, err)
		return false
	}
	return true
}

// Set stores value under key with the current timestamp, unconditionally
// replacing any prior entry.
func (c *Cache) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[cache] encode %q: %v", key, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{Data: data, Timestamp: c.now()}
	c.persistLocked()
}

// Has reports whether a fresh entry exists under key, evicting it when
// stale — the same staleness check as Get without the decode.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.expired(e) {
		delete(c.entries, key)
		c.persistLocked()
		return false
	}
	return true
}

// Delete removes one entry and reports whether it existed.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
		c.persistLocked()
	}
	return ok
}

// InvalidatePattern removes every key containing the given substring.
// Invalidating "shipments" clears every shipment list variant in one call.
func (c *Cache) InvalidatePattern(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.persistLocked()
	}
}

// Clear removes every entry and deletes the durable blob.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	if c.store != nil {
		if err := c.store.Delete(c.storageKey); err != nil {
			log.Printf("[cache] clear durable blob: %v", err)
		}
	}
}

// ClearExpired sweeps every entry past TTL.
func (c *Cache) ClearExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.persistLocked()
	}
}

// Stats returns cache introspection data. Keys are sorted for stable output.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return Stats{
		Size:               len(c.entries),
		Keys:               keys,
		TTL:                c.ttl,
		PersistenceEnabled: c.store != nil,
	}
}

// Key derives a deterministic cache key from a prefix and optional params.
// Equal params always produce equal keys: encoding/json emits struct
// fields in declaration order and sorts map keys.
func Key(prefix string, params any) string {
	if params == nil {
		return prefix
	}
	data, err := json.Marshal(params)
	if err != nil {
		log.Printf("[cache] key params for %q: %v", prefix, err)
		return prefix
	}
	return fmt.Sprintf("%s-%s", prefix, data)
}

// ─── Internals ──────────────────────────────────────────────

func (c *Cache) expired(e entry) bool {
	return c.now().Sub(e.Timestamp) >= c.ttl
}

func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.ClearExpired()
		case <-c.done:
			return
		}
	}
}

// persistLocked writes the full entry map to durable storage.
// Callers must hold c.mu.
func (c *Cache) persistLocked() {
	if c.store == nil {
		return
	}
	blob, err := json.Marshal(snapshot{Version: snapshotVersion, Entries: c.entries})
	if err != nil {
		log.Printf("[cache] encode snapshot: %v", err)
		return
	}
	if err := c.store.Put(c.storageKey, blob); err != nil {
		log.Printf("[cache] persist snapshot: %v", err)
	}
}

// loadFromStorage restores the persisted entry map, dropping entries that
// expired while the process was down.
func (c *Cache) loadFromStorage() {
	blob, err := c.store.Get(c.storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[cache] load snapshot: %v", err)
		}
		return
	}

	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("[cache] corrupt snapshot, starting empty: %v", err)
		return
	}
	if snap.Version != snapshotVersion {
		log.Printf("[cache] snapshot version %d unsupported, starting empty", snap.Version)
		return
	}

	kept := 0
	for key, e := range snap.Entries {
		if !c.expired(e) {
			c.entries[key] = e
			kept++
		}
	}
	if kept > 0 {
		log.Printf("[cache] restored %d entries from storage", kept)
	}
}
