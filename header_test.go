package header

import (
	"errors"
	"reflect"
	"testing"
)

func TestHeaderStoreCaseInsensitiveLookup(t *testing.T) {
	h := NewHeaderStore()
	if err := h.Set("Content-Type", "application/json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"Content-Type", "content_type", "CONTENT-TYPE", "content-type"} {
		if !h.Has(name) {
			t.Errorf("lookup failed for %q", name)
		}
	}
	if h.ContentType() != "application/json" {
		t.Errorf("expected application/json, got %q", h.ContentType())
	}

	// Original casing is never retained.
	if !reflect.DeepEqual([]string{"content-type"}, h.Names()) {
		t.Errorf("expected normalized names, got %#v", h.Names())
	}
}

func TestHeaderStoreParse(t *testing.T) {
	raw := "Host: example.com\n" +
		"\n" +
		"not a header line\n" +
		"Accept: */*\n" +
		"Content-Length: 42\n"

	h := NewHeaderStore()
	h.Parse(raw)

	if got := h.GetString("host"); got != "example.com" {
		t.Errorf("expected example.com, got %q", got)
	}
	if !reflect.DeepEqual(AcceptList{{Type: "*/*", Q: 1}}, h.Get("accept", nil)) {
		t.Errorf("accept not decoded: %#v", h.Get("accept", nil))
	}
	if h.ContentLength() != 42 {
		t.Errorf("expected content length 42, got %d", h.ContentLength())
	}
	if h.Has("not a header line") {
		t.Error("junk line was not skipped")
	}
	if h.Raw() != raw {
		t.Error("raw input was not retained")
	}
}

func TestHeaderStorePromotion(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("X-Foo: a\nX-Foo: b")

	if !reflect.DeepEqual([]any{"a", "b"}, h.Get("x-foo", nil)) {
		t.Errorf("expected promotion to [a b], got %#v", h.Get("x-foo", nil))
	}

	// A third occurrence appends rather than nesting.
	h.Parse("X-Foo: c")
	if !reflect.DeepEqual([]any{"a", "b", "c"}, h.Get("x-foo", nil)) {
		t.Errorf("expected [a b c], got %#v", h.Get("x-foo", nil))
	}
}

func TestHeaderStoreCookieRouting(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Cookie: a=1; b=2\nCookie: c=3\nHost: example.com")

	// The header slot holds the raw strings, promoted like any repeat.
	if !reflect.DeepEqual([]any{"a=1; b=2", "c=3"}, h.Get("cookie", nil)) {
		t.Errorf("cookie slot: %#v", h.Get("cookie", nil))
	}
	if !reflect.DeepEqual([]string{"a=1; b=2", "c=3"}, h.RawCookies()) {
		t.Errorf("raw cookies: %#v", h.RawCookies())
	}

	// The cookie store sees the structured pairs from the whole batch.
	expected := map[string]string{"a": "1", "b": "2", "c": "3"}
	if !reflect.DeepEqual(expected, h.CookieMap()) {
		t.Errorf("cookie map: %#v", h.CookieMap())
	}
	if h.Cookie("a", "") != "1" {
		t.Errorf("expected cookie a=1, got %q", h.Cookie("a", ""))
	}
}

func TestHeaderStoreReparse(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Cookie: a=1\nHost: example.com")
	h.Parse("X-Next: 1")

	// Parsing accumulates into the mapping.
	if !h.Has("host") || !h.Has("x-next") {
		t.Error("second parse did not accumulate")
	}
	// The raw-cookie fragment list is per-pass, the cookie store is not.
	if len(h.RawCookies()) != 0 {
		t.Errorf("expected raw cookies reset, got %#v", h.RawCookies())
	}
	if h.Cookie("a", "") != "1" {
		t.Error("cookie store should accumulate across parses")
	}
}

func TestHeaderStoreSetCookieDualWrite(t *testing.T) {
	h := NewHeaderStore()
	if err := h.Set("Cookie", "session=abc; user=john"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The raw string lands in the header slot, the pairs in the cookie
	// store. Both writes are the observed behavior, kept deliberately.
	if got := h.GetString("cookie"); got != "session=abc; user=john" {
		t.Errorf("cookie slot: %q", got)
	}
	if h.Cookie("session", "") != "abc" || h.Cookie("user", "") != "john" {
		t.Errorf("cookie store: %#v", h.CookieMap())
	}
}

func TestHeaderStoreSetCookieFromMap(t *testing.T) {
	h := NewHeaderStore()
	if err := h.Set("cookie", map[string]string{"a": "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Cookie("a", "") != "1" {
		t.Errorf("cookie store: %#v", h.CookieMap())
	}
	// The header slot still receives a generically decoded string.
	if !h.Has("cookie") {
		t.Error("header slot missing after map-valued set")
	}
}

func TestHeaderStoreSetMissingValue(t *testing.T) {
	h := NewHeaderStore()
	if err := h.Set("X-Foo", nil); !errors.Is(err, ErrMissingValue) {
		t.Errorf("expected ErrMissingValue, got %v", err)
	}
	if h.Len() != 0 {
		t.Error("failed Set must not mutate the store")
	}
}

func TestHeaderStoreSetRaw(t *testing.T) {
	h := NewHeaderStore()
	structured := []string{"a", "b"}
	if err := h.SetRaw("X-List", structured); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(structured, h.Get("x-list", nil)) {
		t.Errorf("expected verbatim storage, got %#v", h.Get("x-list", nil))
	}
}

func TestHeaderStoreUpdate(t *testing.T) {
	h := NewHeaderStore()
	err := h.Update(map[string]any{"Accept": "*/*"}, Pair{"user_agent", "Mozilla/5.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(AcceptList{{Type: "*/*", Q: 1}}, h.Get("accept", nil)) {
		t.Errorf("accept: %#v", h.Get("accept", nil))
	}
	if h.UserAgent() != "Mozilla/5.0" {
		t.Errorf("user agent: %q", h.UserAgent())
	}
}

func TestHeaderStoreIndexedAccess(t *testing.T) {
	h := NewHeaderStore()
	h.Set("X-Foo", "bar")

	if v, err := h.Value("X_FOO"); err != nil || v != "bar" {
		t.Errorf("expected bar, got %#v (%v)", v, err)
	}
	if _, err := h.Value("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := h.Delete("x-foo"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := h.Delete("x-foo"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHeaderStoreRemoveAndClear(t *testing.T) {
	h := NewHeaderStore(Pair{"x_one", "1"}, Pair{"x_two", "2"})
	h.SetCookie("session", "abc")

	h.Remove("X-One", "never-there")
	if h.Has("x-one") || !h.Has("x-two") {
		t.Error("Remove deleted the wrong slots")
	}

	h.Clear()
	if h.Len() != 0 || h.Cookies().Len() != 0 {
		t.Error("Clear must empty headers and cookies")
	}
}

func TestHeaderStoreInsertionOrder(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("B: 2\nA: 1\nC: 3")
	if !reflect.DeepEqual([]string{"b", "a", "c"}, h.Names()) {
		t.Errorf("expected parse order, got %#v", h.Names())
	}
}

func TestHeaderStoreFromMap(t *testing.T) {
	m := map[string]string{"Content_Type": "text/plain"}
	h := NewHeaderStoreFromMap(m)
	if h.ContentType() != "text/plain" {
		t.Errorf("content type: %q", h.ContentType())
	}
	m["X-Later"] = "1"
	if h.Has("x-later") {
		t.Error("store aliases the caller's map")
	}
}

func TestHeaderStoreParseBytes(t *testing.T) {
	// Latin-1 bytes that are invalid UTF-8 fall back cleanly.
	h := NewHeaderStore()
	if _, err := h.ParseBytes([]byte("X-Note: caf\xe9")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.GetString("x-note"); got != "café" {
		t.Errorf("expected café, got %q", got)
	}
}

func TestHeaderStoreViews(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Origin: https://example.com\n" +
		"Referer: https://example.com/page\n" +
		"X-Requested-With: XMLHttpRequest\n" +
		"Sec-Fetch-Site: same-origin\n" +
		"Sec-Fetch-Mode: cors\n" +
		"Sec-CH-UA-Platform: \"Linux\"\n" +
		"Sec-CH-UA-Mobile: ?0")

	if !h.IsAJAX() {
		t.Error("expected AJAX request")
	}
	if !h.IsCORS() {
		t.Error("expected CORS request")
	}
	if h.Origin() != "https://example.com" {
		t.Errorf("origin: %q", h.Origin())
	}
	if h.Referer() != "https://example.com/page" {
		t.Errorf("referer: %q", h.Referer())
	}

	meta := h.SecFetchMetadata()
	if meta["site"] != "same-origin" || meta["mode"] != "cors" || meta["dest"] != "" {
		t.Errorf("fetch metadata: %#v", meta)
	}

	hints := h.ClientHints()
	if !reflect.DeepEqual(map[string]any{
		"sec-ch-ua-platform": "Linux",
		"sec-ch-ua-mobile":   false,
	}, hints) {
		t.Errorf("client hints: %#v", hints)
	}

	// Absent views degrade to zero values.
	empty := NewHeaderStore()
	if empty.ContentLength() != -1 || empty.UserAgent() != "" || empty.IsAJAX() || empty.IsCORS() {
		t.Error("absent headers should yield zero values")
	}
}

func TestHeaderStoreFromSource(t *testing.T) {
	src := HTTPHeaderSource{
		"X-Test":       {"1"},
		"Content-Type": {"text/plain"},
	}
	h := FromSource(src)
	if !h.Has("x-test") || h.ContentType() != "text/plain" {
		t.Errorf("FromSource missed headers: %#v", h.Names())
	}
}

func TestHeaderStoreDecodeCache(t *testing.T) {
	h := NewHeaderStore()
	if err := h.EnableDecodeCache(128); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Close()

	h.Parse("Accept: text/html;q=0.8, application/json")
	first := h.Get("accept", nil)
	h.Parse("Accept: text/html;q=0.8, application/json")

	// Second decode of the identical line is served from the cache; the
	// promoted slot holds the same decoded value twice.
	seq, ok := h.Get("accept", nil).([]any)
	if !ok || len(seq) != 2 {
		t.Fatalf("expected promoted slot, got %#v", h.Get("accept", nil))
	}
	if !reflect.DeepEqual(seq[0], seq[1]) || !reflect.DeepEqual(first, seq[0]) {
		t.Errorf("cached decode differs: %#v vs %#v", seq[0], seq[1])
	}
}
