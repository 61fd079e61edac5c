package header

import (
	"fmt"
	"strconv"
	"strings"
)

// A Pair is an explicit name/value pair for bulk mutation. It stands in for
// keyword arguments: pair names are normalized (underscores to hyphens, and
// lowercased for header names) before use.
type Pair struct {
	Name  string
	Value string
}

// A Param is one parameter of a parameterized header value or list entry.
// Parameters are kept as a slice so that insertion order survives
// re-serialization.
type Param struct {
	Key   string
	Value string
}

// HeaderValue is a parsed parameterized header value, such as Content-Type
// or Content-Disposition: a primary value followed by `; key=value` pairs.
type HeaderValue struct {
	Value  string
	Params []Param
}

// Param returns the value of the named parameter.
func (hv *HeaderValue) Param(key string) (string, bool) {
	for _, p := range hv.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (hv *HeaderValue) String() string {
	if len(hv.Params) == 0 {
		return hv.Value
	}
	b := &strings.Builder{}
	b.WriteString(hv.Value)
	for _, p := range hv.Params {
		b.WriteString("; ")
		b.WriteString(p.Key)
		b.WriteString("=")
		b.WriteString(p.Value)
	}
	return b.String()
}

// An AcceptEntry is one element of a decoded Accept header. Q defaults to
// 1.0; parameters other than q are carried verbatim in Params.
type AcceptEntry struct {
	Type   string
	Q      float64
	Params []Param
}

// AcceptList is a decoded Accept header, sorted by Q descending.
type AcceptList []AcceptEntry

func (l AcceptList) String() string {
	b := &strings.Builder{}
	for i, e := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Type)
		if e.Q != 1 {
			b.WriteString(";q=")
			b.WriteString(formatQ(e.Q))
		}
		for _, p := range e.Params {
			b.WriteString(";")
			b.WriteString(p.Key)
			b.WriteString("=")
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

// A LanguageEntry is one element of a decoded Accept-Language header.
type LanguageEntry struct {
	Lang string
	Q    float64
}

// LanguageList is a decoded Accept-Language header, sorted by Q descending.
type LanguageList []LanguageEntry

func (l LanguageList) String() string {
	b := &strings.Builder{}
	for i, e := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Lang)
		if e.Q != 1 {
			b.WriteString(";q=")
			b.WriteString(formatQ(e.Q))
		}
	}
	return b.String()
}

// A Brand is one brand/version record of a decoded Sec-CH-UA style header.
type Brand struct {
	Brand   string
	Version string
}

// BrandList is a decoded Sec-CH-UA or Sec-CH-UA-Full-Version-List header.
type BrandList []Brand

func (l BrandList) String() string {
	b := &strings.Builder{}
	for i, br := range l {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q;v=%q", br.Brand, br.Version)
	}
	return b.String()
}

// A Directive is one element of a decoded Cache-Control or Priority header.
// Value is an int (Cache-Control only), a string, or the bool true for a
// bare flag directive.
type Directive struct {
	Name  string
	Value any
}

// Directives is a decoded directive-style header, in encounter order.
type Directives []Directive

// Get returns the value of the named directive.
func (d Directives) Get(name string) (any, bool) {
	for _, dir := range d {
		if dir.Name == name {
			return dir.Value, true
		}
	}
	return nil, false
}

func (d Directives) String() string {
	b := &strings.Builder{}
	for i, dir := range d {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(dir.Name)
		switch v := dir.Value.(type) {
		case bool:
			// bare flag, no value
		case int:
			b.WriteString("=")
			b.WriteString(strconv.Itoa(v))
		case string:
			b.WriteString("=")
			b.WriteString(v)
		}
	}
	return b.String()
}

func formatQ(q float64) string {
	return strconv.FormatFloat(q, 'g', -1, 64)
}

// formatValue renders a header slot back to wire-compatible text. The type
// switch is exhaustive over every shape a decoder can produce, plus []any
// for promoted multi-value slots.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(val)
	case *HeaderValue:
		return val.String()
	case AcceptList:
		return val.String()
	case LanguageList:
		return val.String()
	case BrandList:
		return val.String()
	case Directives:
		return val.String()
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
