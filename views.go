package header

import "strings"

// ContentType returns the primary Content-Type value, without parameters.
func (h *HeaderStore) ContentType() string {
	switch ct := h.Get("content-type", nil).(type) {
	case *HeaderValue:
		return ct.Value
	case string:
		return ct
	}
	return ""
}

// ContentLength returns the decoded Content-Length, or -1 when the header
// is absent or not an integer.
func (h *HeaderStore) ContentLength() int {
	if n, ok := h.Get("content-length", nil).(int); ok {
		return n
	}
	return -1
}

// UserAgent returns the User-Agent value, or "" when absent.
func (h *HeaderStore) UserAgent() string { return h.GetString("user-agent") }

// Origin returns the Origin value, or "" when absent.
func (h *HeaderStore) Origin() string { return h.GetString("origin") }

// Referer returns the Referer value, or "" when absent.
func (h *HeaderStore) Referer() string { return h.GetString("referer") }

// IsAJAX reports whether the headers describe an XHR-style request.
func (h *HeaderStore) IsAJAX() bool {
	return strings.EqualFold(h.GetString("x-requested-with"), "xmlhttprequest")
}

// IsCORS reports whether the headers carry an Origin, as cross-origin
// requests do.
func (h *HeaderStore) IsCORS() bool { return h.Has("origin") }

// SecFetchMetadata collects the Sec-Fetch-* fetch metadata headers into a
// small map. Absent headers yield empty strings.
func (h *HeaderStore) SecFetchMetadata() map[string]string {
	return map[string]string{
		"site": h.GetString("sec-fetch-site"),
		"mode": h.GetString("sec-fetch-mode"),
		"dest": h.GetString("sec-fetch-dest"),
		"user": h.GetString("sec-fetch-user"),
	}
}

// ClientHints collects every Sec-CH-* header into a map of normalized name
// to decoded value.
func (h *HeaderStore) ClientHints() map[string]any {
	hints := make(map[string]any)
	for _, name := range h.order {
		if strings.HasPrefix(name, "sec-ch-") {
			hints[name] = h.headers[name]
		}
	}
	return hints
}
