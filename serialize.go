package header

import (
	"github.com/valyala/bytebufferpool"
)

// ToMap returns a copy of the header mapping. With stringify set, every
// value is rendered to its wire-text form first.
func (h *HeaderStore) ToMap(stringify bool) map[string]any {
	if !stringify {
		return h.snapshot()
	}
	out := make(map[string]any, len(h.headers))
	for name, value := range h.headers {
		out[name] = formatValue(value)
	}
	return out
}

// ToRaw re-renders the store as "name: value" lines in insertion order.
// Sequence-valued slots are exploded into one line per element; booleans
// render as 1/0; decoded structures render back to wire-compatible text.
func (h *HeaderStore) ToRaw() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)
	first := true
	writeLine := func(name, value string) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
	}
	for _, name := range h.order {
		if seq, ok := h.headers[name].([]any); ok {
			for _, item := range seq {
				writeLine(name, formatValue(item))
			}
			continue
		}
		writeLine(name, formatValue(h.headers[name]))
	}
	return b.String()
}

// ClientHeaders flattens the store to a plain string map suitable for a
// generic HTTP client, joining sequence-valued slots with ", ".
func (h *HeaderStore) ClientHeaders() map[string]string {
	out := make(map[string]string, len(h.headers))
	for name, value := range h.headers {
		out[name] = formatValue(value)
	}
	return out
}
