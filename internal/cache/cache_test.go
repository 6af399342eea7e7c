package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dmolina/fleetdesk/internal/storage"
)

// testClock returns a cache option set with a controllable clock and a
// sweep interval long enough to never fire during a test.
func testClock(now *time.Time) Options {
	return Options{
		SweepInterval: time.Hour,
		Now:           func() time.Time { return *now },
	}
}

func TestGetReturnsFreshValue(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("greeting", "hello")

	var got string
	if !c.Get("greeting", &got) {
		t.Fatal("Get reported a miss for a fresh entry")
	}
	if got != "hello" {
		t.Errorf("Get = %q, want %q", got, "hello")
	}
}

func TestGetEvictsExpiredEntry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("greeting", "hello")
	now = now.Add(5 * time.Minute)

	var got string
	if c.Get("greeting", &got) {
		t.Error("Get returned a value at exactly TTL, want miss")
	}
	if c.Has("greeting") {
		t.Error("Has = true after expiry, want false")
	}
	if c.Stats().Size != 0 {
		t.Errorf("Size = %d after lazy eviction, want 0", c.Stats().Size)
	}
}

func TestHasDoesNotExpireFreshEntry(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("greeting", "hello")
	now = now.Add(4 * time.Minute)

	if !c.Has("greeting") {
		t.Error("Has = false before TTL, want true")
	}
}

func TestSetOverwrites(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("k", 1)
	c.Set("k", 2)

	var got int
	c.Get("k", &got)
	if got != 2 {
		t.Errorf("Get after overwrite = %d, want 2", got)
	}
}

func TestDeleteReportsExistence(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("k", 1)
	if !c.Delete("k") {
		t.Error("Delete existing key = false, want true")
	}
	if c.Delete("k") {
		t.Error("Delete absent key = true, want false")
	}
}

func TestInvalidatePatternRemovesMatchingKeysOnly(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("shipments-A", 1)
	c.Set("shipments-B", 2)
	c.Set("vehicles-C", 3)

	c.InvalidatePattern("shipments")

	if c.Has("shipments-A") || c.Has("shipments-B") {
		t.Error("shipment keys survived pattern invalidation")
	}
	if !c.Has("vehicles-C") {
		t.Error("vehicles key was removed by an unrelated pattern")
	}
}

func TestClearExpiredSweepsOnlyStaleEntries(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(5*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("old", 1)
	now = now.Add(3 * time.Minute)
	c.Set("new", 2)
	now = now.Add(2 * time.Minute)

	c.ClearExpired()

	stats := c.Stats()
	if stats.Size != 1 {
		t.Fatalf("Size after sweep = %d, want 1", stats.Size)
	}
	if stats.Keys[0] != "new" {
		t.Errorf("surviving key = %q, want %q", stats.Keys[0], "new")
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := New(2*time.Minute, testClock(&now))
	defer c.Stop()

	c.Set("b", 1)
	c.Set("a", 2)

	stats := c.Stats()
	if stats.Size != 2 {
		t.Errorf("Size = %d, want 2", stats.Size)
	}
	if stats.TTL != 2*time.Minute {
		t.Errorf("TTL = %v, want 2m", stats.TTL)
	}
	if stats.PersistenceEnabled {
		t.Error("PersistenceEnabled = true without a store")
	}
	if len(stats.Keys) != 2 || stats.Keys[0] != "a" || stats.Keys[1] != "b" {
		t.Errorf("Keys = %v, want sorted [a b]", stats.Keys)
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	type filters struct {
		Status []string `json:"status"`
	}
	a := Key("shipments", filters{Status: []string{"pending"}})
	b := Key("shipments", filters{Status: []string{"pending"}})
	if a != b {
		t.Errorf("equal params produced different keys: %q vs %q", a, b)
	}
	if a == "shipments" {
		t.Error("params were not folded into the key")
	}
}

func TestKeyWithoutParamsIsPrefix(t *testing.T) {
	if got := Key("drivers", nil); got != "drivers" {
		t.Errorf("Key = %q, want %q", got, "drivers")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	opts := testClock(&now)
	opts.Store = db
	opts.StorageKey = "test-api-cache"

	c := New(5*time.Minute, opts)
	c.Set("fresh", "kept")
	c.Set("stale", "dropped")
	c.Stop()

	// Age only "stale" past TTL before reloading.
	now = now.Add(4 * time.Minute)
	c2 := New(5*time.Minute, opts)
	defer c2.Stop()

	// Both entries share a timestamp, so both are still fresh here...
	if !c2.Has("fresh") || !c2.Has("stale") {
		t.Fatal("restored cache is missing persisted entries")
	}

	// ...and both expire together.
	now = now.Add(2 * time.Minute)
	c3 := New(5*time.Minute, opts)
	defer c3.Stop()
	if c3.Stats().Size != 0 {
		t.Errorf("restored cache kept %d expired entries, want 0", c3.Stats().Size)
	}
}

func TestClearDeletesDurableBlob(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	opts := testClock(&now)
	opts.Store = db
	opts.StorageKey = "test-api-cache"

	c := New(5*time.Minute, opts)
	c.Set("k", 1)
	c.Clear()
	c.Stop()

	if _, err := db.Get("test-api-cache"); err == nil {
		t.Error("durable blob survived Clear")
	}

	c2 := New(5*time.Minute, opts)
	defer c2.Stop()
	if c2.Stats().Size != 0 {
		t.Errorf("cache restored %d entries after Clear, want 0", c2.Stats().Size)
	}
}
