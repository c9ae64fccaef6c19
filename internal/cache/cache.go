// Package cache implements the in-process TTL cache that fronts all ledger
// aggregation queries. Entries expire lazily: a stale entry is removed on the
// next Get that touches it, never by a background sweeper.
package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is a key→value store with per-entry expiry. The zero value is not
// usable; construct with New. A single instance backs the whole process and
// is owned by whoever wires the services together.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the stored value if it has not expired. An expired entry is
// removed as a side effect and reported as absent.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key unconditionally. Last writer wins.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Delete removes a single entry. Deleting a missing key is not an error.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix removes every entry whose key starts with prefix. Used for
// namespace-wide invalidation (e.g. all cached invoice lists).
func (c *Cache) DeletePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of physically present entries, including ones that
// are past expiry but not yet swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrCompute returns the cached value for key, or runs compute, stores its
// result, and returns it. The lock is never held across compute, so one slow
// query does not serialize unrelated lookups. Two concurrent misses on the
// same key may both run compute; the last Set wins, which is harmless for
// read-only query results. Compute failures propagate and are never cached.
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(key, v, ttl)
	return v, nil
}

// Fetch is the typed form of GetOrCompute used by service call sites.
func Fetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	v, err := c.GetOrCompute(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Key builds a deterministic cache key from a namespace and filter params.
// Params are sorted by name so identical filters always map to the same key
// regardless of call-site argument order: "invoices|month=6|year=2024".
func Key(namespace string, params map[string]string) string {
	if len(params) == 0 {
		return namespace
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(namespace)
	for _, name := range names {
		fmt.Fprintf(&b, "|%s=%s", name, params[name])
	}
	return b.String()
}
