// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The provider client uses it to remember once-a-day data (quote of the day,
// artwork of the day) until the next UTC midnight:
//
//	c := cache.New[string, external.Quote](32)
//	c.Set("quote:2025-03-10", q, time.Until(midnight))
//
//	if q, ok := c.Get("quote:2025-03-10"); ok {
//		// served from memory
//	}
//
// When the cache is full the least recently used entry is evicted. Expired
// entries are removed the next time they are read, or when they reach the back
// of the list. An eviction callback can be registered with WithEvictCallback.
//
// All methods are O(1) and safe for concurrent use.
package cache
