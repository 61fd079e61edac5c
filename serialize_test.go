package header

import (
	"reflect"
	"strings"
	"testing"
)

func TestToRaw(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Host: example.com\n" +
		"X-Foo: a\n" +
		"X-Foo: b\n" +
		"DNT: 1\n" +
		"Content-Type: text/html; charset=utf-8")

	expected := "host: example.com\n" +
		"x-foo: a\n" +
		"x-foo: b\n" +
		"dnt: 1\n" +
		"content-type: text/html; charset=utf-8"
	if got := h.ToRaw(); got != expected {
		t.Errorf("ToRaw:\nexpected:\n%s\nactual:\n%s", expected, got)
	}
}

func TestToRawBooleanRendering(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("DNT: 1\nSec-GPC: 0")
	expected := "dnt: 1\nsec-gpc: 0"
	if got := h.ToRaw(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestToRawReRendersDecodedLists(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Accept: text/html;q=0.8, application/json\n" +
		"Accept-Encoding: gzip, deflate")

	raw := h.ToRaw()
	if !strings.Contains(raw, "accept: application/json, text/html;q=0.8") {
		t.Errorf("accept line not re-rendered: %q", raw)
	}
	if !strings.Contains(raw, "accept-encoding: gzip, deflate") {
		t.Errorf("accept-encoding line not re-rendered: %q", raw)
	}
}

func TestClientHeaders(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("X-Foo: a\nX-Foo: b\nContent-Length: 42")

	got := h.ClientHeaders()
	expected := map[string]string{
		"x-foo":          "a, b",
		"content-length": "42",
	}
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("expected %#v, got %#v", expected, got)
	}
}

func TestToMap(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Content-Length: 42\nHost: example.com")

	plain := h.ToMap(false)
	if plain["content-length"] != 42 {
		t.Errorf("expected decoded int, got %#v", plain["content-length"])
	}
	// The returned map is a copy.
	plain["injected"] = "x"
	if h.Has("injected") {
		t.Error("ToMap aliases the store's map")
	}

	stringified := h.ToMap(true)
	if stringified["content-length"] != "42" {
		t.Errorf("expected stringified value, got %#v", stringified["content-length"])
	}
}

func TestBrandListRendering(t *testing.T) {
	h := NewHeaderStore()
	h.Parse(`Sec-CH-UA: "Chromium";v="122", "Not A;Brand";v="99"`)

	expected := `"Chromium";v="122", "Not A;Brand";v="99"`
	if got := h.GetString("sec-ch-ua"); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestDirectivesRendering(t *testing.T) {
	h := NewHeaderStore()
	h.Parse("Cache-Control: max-age=3600, no-cache")

	if got := h.GetString("cache-control"); got != "max-age=3600, no-cache" {
		t.Errorf("got %q", got)
	}
}
