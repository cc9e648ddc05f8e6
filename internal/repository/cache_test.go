package repository

import (
	"bytes"
	"testing"
	"time"
)

func TestMemListingCache(t *testing.T) {
	tests := []struct {
		name        string
		ttl         time.Duration
		advance     time.Duration
		expectFound bool
	}{
		{
			name:        "fresh entry served",
			ttl:         300 * time.Second,
			advance:     299 * time.Second,
			expectFound: true,
		},
		{
			name:        "entry at exactly ttl treated as absent",
			ttl:         300 * time.Second,
			advance:     300 * time.Second,
			expectFound: false,
		},
		{
			name:        "expired entry treated as absent",
			ttl:         time.Second,
			advance:     2 * time.Second,
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMemListingCache(10, tt.ttl)
			current := time.Now()
			cache.now = func() time.Time { return current }

			cache.Store("vendors_all_all_all", []byte(`[{"VendorID":1}]`))
			current = current.Add(tt.advance)

			payload, ok := cache.Lookup("vendors_all_all_all")
			if ok != tt.expectFound {
				t.Fatalf("expected found=%v, got %v", tt.expectFound, ok)
			}
			if tt.expectFound && !bytes.Equal(payload, []byte(`[{"VendorID":1}]`)) {
				t.Fatalf("payload not served verbatim: %s", payload)
			}
		})
	}
}

func TestMemListingCacheOverwrite(t *testing.T) {
	cache := NewMemListingCache(10, time.Minute)

	cache.Store("k", []byte("old"))
	cache.Store("k", []byte("new"))

	payload, ok := cache.Lookup("k")
	if !ok {
		t.Fatal("expected entry after overwrite")
	}
	if string(payload) != "new" {
		t.Fatalf("last write should win, got %s", payload)
	}
	if cache.Len() != 1 {
		t.Fatalf("overwrite must not grow the cache, len=%d", cache.Len())
	}
}

func TestMemListingCacheEviction(t *testing.T) {
	cache := NewMemListingCache(2, time.Minute)

	cache.Store("a", []byte("1"))
	cache.Store("b", []byte("2"))
	cache.Store("c", []byte("3"))

	if cache.Len() != 2 {
		t.Fatalf("expected eviction to cap size at 2, len=%d", cache.Len())
	}
	if _, ok := cache.Lookup("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
}
