package header

// HeaderSource enumerates header name/value pairs via a visitor, the way
// response objects expose their headers. Any wrapped HTTP response type can
// implement it without this package knowing its shape.
type HeaderSource interface {
	VisitAll(fn func(name, value string))
}

// FromSource builds a HeaderStore by feeding every pair exposed by src
// through Set. Repeated names overwrite rather than promote, matching Set
// semantics.
func FromSource(src HeaderSource) *HeaderStore {
	h := NewHeaderStore()
	src.VisitAll(func(name, value string) {
		h.Set(name, value)
	})
	return h
}

// HTTPHeaderSource adapts a net/http style header map (http.Header is
// map[string][]string) to HeaderSource.
type HTTPHeaderSource map[string][]string

func (hs HTTPHeaderSource) VisitAll(fn func(name, value string)) {
	for name, values := range hs {
		for _, value := range values {
			fn(name, value)
		}
	}
}
