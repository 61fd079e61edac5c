// Package header parses raw HTTP header and cookie text into structured,
// queryable in-memory stores, and serializes them back to wire-compatible
// text. Parsing is tolerant and best-effort rather than strictly
// RFC-conformant: malformed lines are skipped, numeric failures inside
// decoders fall back to defaults, and nothing here performs network I/O.
package header

import (
	"strings"
)

// HeaderStore is a case-insensitive mapping of header names to decoded
// values. Keys are normalized (lowercased, underscores to hyphens); the
// original casing of incoming names is never retained. Each slot holds one
// of: string, int, bool, *HeaderValue, AcceptList, LanguageList, BrandList,
// Directives, []string, or, when the same header was seen more than once
// during parsing, a []any of the single-value decodings in encounter order.
//
// A HeaderStore owns a CookieStore: Cookie lines are recorded both under
// the "cookie" header slot (raw string) and as structured pairs in the
// cookie store. A HeaderStore is not safe for concurrent use.
type HeaderStore struct {
	raw        string
	order      []string
	headers    map[string]any
	cookies    *CookieStore
	rawCookies []string
	cache      *decodeCache
	log        LogBackend
}

// NewHeaderStore creates an empty HeaderStore, optionally seeded with
// pairs. Pair names are normalized, pair values go through the per-header
// decoders like any Set call.
func NewHeaderStore(pairs ...Pair) *HeaderStore {
	h := &HeaderStore{
		headers: make(map[string]any),
		cookies: NewCookieStore(),
		log:     &noopLogger{},
	}
	h.setPairs(pairs)
	return h
}

// NewHeaderStoreFromMap creates a HeaderStore from a copy of headers, each
// entry going through Set. Go map iteration order determines the initial
// insertion order.
func NewHeaderStoreFromMap(headers map[string]string) *HeaderStore {
	h := NewHeaderStore()
	for name, value := range headers {
		h.setOne(normalizeHeaderKey(name), value)
	}
	return h
}

// ParseHeaders parses raw header text into a new HeaderStore.
func ParseHeaders(raw string, pairs ...Pair) *HeaderStore {
	h := NewHeaderStore()
	h.Parse(raw, pairs...)
	return h
}

// SetLogger replaces the store's logger. Passing nil restores the no-op
// default.
func (h *HeaderStore) SetLogger(log LogBackend) {
	if log == nil {
		log = &noopLogger{}
	}
	h.log = log
}

func normalizeHeaderKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", "-")
}

// store overwrites the slot for name, keeping insertion order on first
// write.
func (h *HeaderStore) store(name string, value any) {
	if _, ok := h.headers[name]; !ok {
		h.order = append(h.order, name)
	}
	h.headers[name] = value
}

// add merges a freshly parsed value into the slot for name: a repeated
// header promotes the slot from a scalar to a []any, appending in
// encounter order.
func (h *HeaderStore) add(name string, value any) {
	existing, ok := h.headers[name]
	if !ok {
		h.store(name, value)
		return
	}
	if seq, isSeq := existing.([]any); isSeq {
		h.headers[name] = append(seq, value)
		return
	}
	h.headers[name] = []any{existing, value}
}

// Parse splits raw text into "Name: value" lines and merges each into the
// store through the per-header decoders. Blank lines and lines without a
// colon are skipped. Cookie lines are recorded three ways: the raw value
// under the "cookie" slot (promoted to a []any on repeat like any other
// header), the fragment in the raw-cookie list, and the structured pairs
// in the owned CookieStore, which sees the whole pass as one batch.
//
// Parse accumulates into the existing mapping; only the raw-cookie
// fragment list is reset per call. Extra pairs are applied last via Set.
// Returns a copy of the full mapping.
func (h *HeaderStore) Parse(raw string, pairs ...Pair) map[string]any {
	if raw != "" {
		h.raw = raw
		h.rawCookies = h.rawCookies[:0]
		var cookieLines []string

		for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				h.log.Debug("skipping header line without separator", "line", line)
				continue
			}
			key := strings.ToLower(strings.TrimSpace(name))
			value = strings.TrimSpace(value)

			if key == "cookie" {
				cookieLines = append(cookieLines, "cookie: "+value)
				h.rawCookies = append(h.rawCookies, value)
				h.add(key, value)
				continue
			}
			h.add(key, h.decode(key, value))
		}

		// The cookie store parses the whole batch at once rather than
		// line-by-line.
		if len(cookieLines) > 0 {
			h.cookies.Parse(strings.Join(cookieLines, "\n"))
		}
	}
	h.setPairs(pairs)
	return h.snapshot()
}

// ParseBytes is Parse for raw bytes, decoded as UTF-8 with Latin-1
// fallback.
func (h *HeaderStore) ParseBytes(data []byte, pairs ...Pair) (map[string]any, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return h.Parse(text, pairs...), nil
}

// Set stores value under the normalized name, decoded by the per-header
// decoder for that name. A nil value with a non-empty name is
// ErrMissingValue.
//
// A "cookie" name is additionally routed into the CookieStore: a
// map[string]string or *CookieStore value is merged as structured pairs,
// anything else is parsed as a raw cookie-pair string. The header slot
// still receives the generically decoded (raw string) form either way.
func (h *HeaderStore) Set(name string, value any, pairs ...Pair) error {
	if name != "" {
		if value == nil {
			return ErrMissingValue
		}
		h.setOne(normalizeHeaderKey(name), value)
	}
	h.setPairs(pairs)
	return nil
}

func (h *HeaderStore) setOne(key string, value any) {
	if key == "cookie" {
		switch v := value.(type) {
		case map[string]string:
			h.cookies.Update(v)
		case *CookieStore:
			h.cookies.Update(v.ToMap())
		default:
			h.cookies.Parse("cookie: " + formatValue(value))
		}
	}
	h.store(key, h.decode(key, formatValue(value)))
}

func (h *HeaderStore) setPairs(pairs []Pair) {
	for _, p := range pairs {
		h.setOne(normalizeHeaderKey(p.Name), p.Value)
	}
}

// SetRaw stores value verbatim under the normalized name, bypassing the
// decoders. Use it when the caller already holds a structured value.
func (h *HeaderStore) SetRaw(name string, value any, pairs ...Pair) error {
	if name != "" {
		if value == nil {
			return ErrMissingValue
		}
		h.store(normalizeHeaderKey(name), value)
	}
	for _, p := range pairs {
		h.store(normalizeHeaderKey(p.Name), p.Value)
	}
	return nil
}

// Remove deletes each header by normalized name. Absent names are ignored.
func (h *HeaderStore) Remove(names ...string) *HeaderStore {
	for _, name := range names {
		h.drop(normalizeHeaderKey(name))
	}
	return h
}

func (h *HeaderStore) drop(key string) bool {
	if _, ok := h.headers[key]; !ok {
		return false
	}
	delete(h.headers, key)
	for i, n := range h.order {
		if n == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties both the header mapping and the cookie store.
func (h *HeaderStore) Clear() *HeaderStore {
	h.order = nil
	h.headers = make(map[string]any)
	h.rawCookies = nil
	h.cookies.Clear()
	return h
}

// Update applies headers entry-by-entry through Set, then the pairs.
func (h *HeaderStore) Update(headers map[string]any, pairs ...Pair) error {
	for name, value := range headers {
		if err := h.Set(name, value); err != nil {
			return err
		}
	}
	h.setPairs(pairs)
	return nil
}

// Get returns the decoded value stored under the normalized name, else def.
func (h *HeaderStore) Get(name string, def any) any {
	if v, ok := h.headers[normalizeHeaderKey(name)]; ok {
		return v
	}
	return def
}

// GetString returns the wire-text rendering of the slot for name, or ""
// when absent.
func (h *HeaderStore) GetString(name string) string {
	v, ok := h.headers[normalizeHeaderKey(name)]
	if !ok {
		return ""
	}
	return formatValue(v)
}

// Value is the indexed read: it returns ErrNotFound on an absent key.
func (h *HeaderStore) Value(name string) (any, error) {
	if v, ok := h.headers[normalizeHeaderKey(name)]; ok {
		return v, nil
	}
	return nil, ErrNotFound
}

// Delete is the indexed delete: it returns ErrNotFound on an absent key.
func (h *HeaderStore) Delete(name string) error {
	if h.drop(normalizeHeaderKey(name)) {
		return nil
	}
	return ErrNotFound
}

// Has reports whether the normalized name is present.
func (h *HeaderStore) Has(name string) bool {
	_, ok := h.headers[normalizeHeaderKey(name)]
	return ok
}

// Names returns the normalized header names in mapping insertion order.
func (h *HeaderStore) Names() []string {
	names := make([]string, len(h.order))
	copy(names, h.order)
	return names
}

// Len returns the number of header slots.
func (h *HeaderStore) Len() int { return len(h.headers) }

// Raw returns the raw text given to the most recent Parse call.
func (h *HeaderStore) Raw() string { return h.raw }

// Cookies returns the owned cookie store.
func (h *HeaderStore) Cookies() *CookieStore { return h.cookies }

// RawCookies returns the raw Cookie line values seen during the most
// recent Parse call.
func (h *HeaderStore) RawCookies() []string {
	out := make([]string, len(h.rawCookies))
	copy(out, h.rawCookies)
	return out
}

// Cookie returns the named cookie's value, else def.
func (h *HeaderStore) Cookie(name, def string) string {
	return h.cookies.Get(name, def)
}

// SetCookie sets a cookie on the owned store, leaving the header mapping
// untouched.
func (h *HeaderStore) SetCookie(name, value string, pairs ...Pair) *HeaderStore {
	h.cookies.Set(name, value, pairs...)
	return h
}

// CookieHeader renders all cookies as a Cookie header value.
func (h *HeaderStore) CookieHeader() string {
	return h.cookies.HeaderString()
}

// CookieMap returns all cookies as a name/value map.
func (h *HeaderStore) CookieMap() map[string]string {
	return h.cookies.ToMap()
}

func (h *HeaderStore) snapshot() map[string]any {
	out := make(map[string]any, len(h.headers))
	for name, value := range h.headers {
		out[name] = value
	}
	return out
}
