package header

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// CookieStore is an ordered, case-aware mapping of cookie names to values,
// with parse/serialize round-trip support. Names are stored exactly as
// supplied; lookups fall back to the normalized form (underscores replaced
// with hyphens) so that pair-style callers and literal callers resolve to
// the same slot.
//
// A CookieStore models header content only: no expiry, domain or path
// semantics. It is not safe for concurrent use.
type CookieStore struct {
	raw       string
	fragments []string
	order     []string
	cookies   map[string]string
}

// NewCookieStore creates an empty CookieStore, optionally seeded with pairs.
// Pair names are normalized before storage.
func NewCookieStore(pairs ...Pair) *CookieStore {
	c := &CookieStore{cookies: make(map[string]string)}
	c.setPairs(pairs)
	return c
}

// NewCookieStoreFromMap creates a CookieStore holding a copy of cookies.
// The input map is not aliased. Go map iteration order determines the
// initial insertion order.
func NewCookieStoreFromMap(cookies map[string]string) *CookieStore {
	c := NewCookieStore()
	for name, value := range cookies {
		c.put(name, value)
	}
	return c
}

// ParseCookies parses raw cookie text into a new CookieStore.
func ParseCookies(raw string, pairs ...Pair) *CookieStore {
	c := NewCookieStore()
	c.Parse(raw, pairs...)
	return c
}

// ToCookieHeader parses raw cookie text and renders it back as a single
// Cookie header value, extra pairs applied last.
func ToCookieHeader(raw string, pairs ...Pair) string {
	return ParseCookies(raw, pairs...).HeaderString()
}

func normalizeCookieKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// put stores under the exact name given, keeping insertion order on first
// write and position on overwrite.
func (c *CookieStore) put(name, value string) {
	if _, ok := c.cookies[name]; !ok {
		c.order = append(c.order, name)
	}
	c.cookies[name] = value
}

func (c *CookieStore) drop(name string) bool {
	if _, ok := c.cookies[name]; !ok {
		return false
	}
	delete(c.cookies, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *CookieStore) setPairs(pairs []Pair) {
	for _, p := range pairs {
		c.put(normalizeCookieKey(p.Name), p.Value)
	}
}

// Parse extracts cookie pairs from raw text and merges them into the store.
// A line is treated as a cookie source if it starts with "cookie:"
// (case-insensitive), or if it contains "=" with no ":" before the first
// "=" (so ordinary "Name: value" header lines are not mistaken for
// cookies). Extra pairs are applied last and take precedence. Returns a
// copy of the full current mapping.
func (c *CookieStore) Parse(raw string, pairs ...Pair) map[string]string {
	if raw != "" {
		c.raw = raw
		c.fragments = c.fragments[:0]
		for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if len(line) >= 7 && strings.EqualFold(line[:7], "cookie:") {
				fragment := strings.TrimSpace(line[7:])
				c.fragments = append(c.fragments, fragment)
				c.parsePairString(fragment)
				continue
			}
			if idx := strings.Index(line, "="); idx >= 0 && !strings.Contains(line[:idx], ":") {
				c.fragments = append(c.fragments, line)
				c.parsePairString(line)
			}
		}
	}
	c.setPairs(pairs)
	return c.ToMap()
}

// ParseBytes is Parse for raw bytes, decoded as UTF-8 with Latin-1 fallback.
func (c *CookieStore) ParseBytes(data []byte, pairs ...Pair) (map[string]string, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	return c.Parse(text, pairs...), nil
}

// parsePairString splits a "name=value[; name=value...]" cookie string.
// Empty names are dropped; a repeated name wins over earlier occurrences.
func (c *CookieStore) parsePairString(s string) {
	for _, part := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c.put(name, strings.TrimSpace(value))
	}
}

// Set stores name/value exactly as given, then applies the extra pairs with
// their names normalized. The asymmetry is deliberate: direct calls keep
// exact casing and punctuation, bulk pair-style calls get normalized.
func (c *CookieStore) Set(name, value string, pairs ...Pair) *CookieStore {
	c.put(name, value)
	c.setPairs(pairs)
	return c
}

// Remove deletes each name, in both its literal and normalized forms.
// Absent names are ignored.
func (c *CookieStore) Remove(names ...string) *CookieStore {
	for _, name := range names {
		c.drop(name)
		c.drop(normalizeCookieKey(name))
	}
	return c
}

// Clear removes all cookies.
func (c *CookieStore) Clear() *CookieStore {
	c.order = nil
	c.cookies = make(map[string]string)
	return c
}

// Update merges cookies (stored verbatim) and then pairs (normalized).
func (c *CookieStore) Update(cookies map[string]string, pairs ...Pair) *CookieStore {
	for name, value := range cookies {
		c.put(name, value)
	}
	c.setPairs(pairs)
	return c
}

// Get returns the value stored under the literal name, else under the
// normalized name, else def.
func (c *CookieStore) Get(name, def string) string {
	if v, ok := c.cookies[name]; ok {
		return v
	}
	if v, ok := c.cookies[normalizeCookieKey(name)]; ok {
		return v
	}
	return def
}

// Value is the indexed read: it returns ErrNotFound when neither the
// literal nor the normalized name is present.
func (c *CookieStore) Value(name string) (string, error) {
	if v, ok := c.cookies[name]; ok {
		return v, nil
	}
	if v, ok := c.cookies[normalizeCookieKey(name)]; ok {
		return v, nil
	}
	return "", ErrNotFound
}

// Delete is the indexed delete: the literal form wins over the normalized
// form, and ErrNotFound is returned when neither exists.
func (c *CookieStore) Delete(name string) error {
	if c.drop(name) || c.drop(normalizeCookieKey(name)) {
		return nil
	}
	return ErrNotFound
}

// Has reports whether name is present in literal or normalized form.
func (c *CookieStore) Has(name string) bool {
	if _, ok := c.cookies[name]; ok {
		return true
	}
	_, ok := c.cookies[normalizeCookieKey(name)]
	return ok
}

// Names returns the cookie names in insertion order.
func (c *CookieStore) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of cookies.
func (c *CookieStore) Len() int { return len(c.cookies) }

// Raw returns the raw text given to the most recent Parse call.
func (c *CookieStore) Raw() string { return c.raw }

// Fragments returns the raw per-line cookie fragments seen during the most
// recent Parse call.
func (c *CookieStore) Fragments() []string {
	fragments := make([]string, len(c.fragments))
	copy(fragments, c.fragments)
	return fragments
}

// HeaderString renders the store as a Cookie header value: "name=value"
// pairs joined with "; " in insertion order. Extra pairs are applied first,
// names normalized.
func (c *CookieStore) HeaderString(pairs ...Pair) string {
	c.setPairs(pairs)
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	for i, name := range c.order {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(c.cookies[name])
	}
	return b.String()
}

// ToMap returns a copy of the name/value mapping.
func (c *CookieStore) ToMap() map[string]string {
	out := make(map[string]string, len(c.cookies))
	for name, value := range c.cookies {
		out[name] = value
	}
	return out
}
