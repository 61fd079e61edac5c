package header

import "github.com/maypok86/otter"

// decodeCache memoizes decoder output keyed by normalized name and raw
// value. Server-side workloads see the same User-Agent, Accept and client
// hint lines over and over; caching skips re-tokenizing them. Cached values
// are shared, so callers must treat decoded slices as read-only (they
// should anyway).
type decodeCache struct {
	cache otter.Cache[string, any]
}

func newDecodeCache(capacity int) (*decodeCache, error) {
	cache, err := otter.MustBuilder[string, any](capacity).Build()
	if err != nil {
		return nil, err
	}
	return &decodeCache{cache: cache}, nil
}

func (d *decodeCache) get(name, value string) (any, bool) {
	return d.cache.Get(name + "\x00" + value)
}

func (d *decodeCache) put(name, value string, decoded any) {
	d.cache.Set(name+"\x00"+value, decoded)
}

// EnableDecodeCache turns on decode memoization with the given capacity
// (number of distinct name/value lines retained). Call Close when done with
// the store to release the cache.
func (h *HeaderStore) EnableDecodeCache(capacity int) error {
	cache, err := newDecodeCache(capacity)
	if err != nil {
		return err
	}
	h.cache = cache
	return nil
}

// Close releases the decode cache, if one was enabled. The store itself
// remains usable.
func (h *HeaderStore) Close() {
	if h.cache != nil {
		h.cache.cache.Close()
		h.cache = nil
	}
}

// decode runs the per-header decoder for name, through the memoization
// cache when enabled.
func (h *HeaderStore) decode(name, value string) any {
	if h.cache != nil {
		if v, ok := h.cache.get(name, value); ok {
			return v
		}
	}
	decoded := decodeValue(name, value)
	if h.cache != nil {
		h.cache.put(name, value, decoded)
	}
	return decoded
}
