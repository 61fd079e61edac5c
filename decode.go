package header

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// booleanHeaders are decoded to bool: true iff the lowercased value is one
// of "1", "true", "yes", "?1".
var booleanHeaders = map[string]bool{
	"dnt":                       true,
	"sec-gpc":                   true,
	"upgrade-insecure-requests": true,
}

// brandPattern matches one `"<brand>";v="<version>"` record of a Sec-CH-UA
// style header.
var brandPattern = regexp.MustCompile(`"([^"]+)";v="([^"]+)"`)

// decodeValue converts a raw header value into its structured form, selected
// by the normalized header name. Decoding is best-effort: numeric failures
// fall back to defaults or the raw string, never to an error.
func decodeValue(name, value string) any {
	if booleanHeaders[name] {
		return decodeBool(value)
	}
	if strings.HasPrefix(name, "sec-ch-ua") {
		return decodeClientHint(name, value)
	}

	switch name {
	case "content-type", "content-disposition":
		return decodeParameterized(value)
	case "accept":
		return decodeAccept(value)
	case "accept-language":
		return decodeAcceptLanguage(value)
	case "accept-encoding":
		return decodeAcceptEncoding(value)
	case "cache-control":
		return decodeDirectives(value, true)
	case "priority":
		return decodeDirectives(value, false)
	case "content-length":
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		return value
	}

	return value
}

func decodeBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "?1":
		return true
	}
	return false
}

// decodeClientHint handles the sec-ch-ua* family. The structured headers
// (sec-ch-ua, sec-ch-ua-full-version-list) decode to a BrandList; if no
// brand record matches, the quote-stripped original is returned instead of
// an empty list. The remaining members are plain quoted strings.
func decodeClientHint(name, value string) any {
	if name == "sec-ch-ua-mobile" {
		return value == "?1"
	}

	if name == "sec-ch-ua" || name == "sec-ch-ua-full-version-list" {
		matches := brandPattern.FindAllStringSubmatch(value, -1)
		if len(matches) == 0 {
			return strings.Trim(value, `"`)
		}
		brands := make(BrandList, 0, len(matches))
		for _, m := range matches {
			brands = append(brands, Brand{Brand: m[1], Version: m[2]})
		}
		return brands
	}

	return strings.Trim(value, `"`)
}

// decodeParameterized handles Content-Type and Content-Disposition:
// a primary value followed by `; key=value` parameters, parameter values
// stripped of surrounding quotes.
func decodeParameterized(value string) *HeaderValue {
	parts := strings.Split(value, ";")
	hv := &HeaderValue{Value: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		hv.Params = append(hv.Params, Param{
			Key:   strings.TrimSpace(k),
			Value: strings.Trim(strings.TrimSpace(v), `"`),
		})
	}
	return hv
}

func decodeAccept(value string) AcceptList {
	if value == "*/*" {
		return AcceptList{{Type: "*/*", Q: 1}}
	}

	var list AcceptList
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		media, rest, hasParams := strings.Cut(part, ";")
		entry := AcceptEntry{Type: strings.TrimSpace(media), Q: 1}
		if hasParams {
			for _, p := range strings.Split(rest, ";") {
				k, v, ok := strings.Cut(p, "=")
				if !ok {
					continue
				}
				k = strings.TrimSpace(k)
				v = strings.TrimSpace(v)
				if k == "q" {
					// Unparseable q keeps the 1.0 default.
					if q, err := strconv.ParseFloat(v, 64); err == nil {
						entry.Q = q
					}
				} else {
					entry.Params = append(entry.Params, Param{Key: k, Value: v})
				}
			}
		}
		list = append(list, entry)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Q > list[j].Q })
	return list
}

func decodeAcceptLanguage(value string) LanguageList {
	var list LanguageList
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		lang, rest, hasParams := strings.Cut(part, ";")
		entry := LanguageEntry{Lang: strings.TrimSpace(lang), Q: 1}
		if hasParams {
			// Only a q parameter is recognized here.
			for _, p := range strings.Split(rest, ";") {
				k, v, ok := strings.Cut(p, "=")
				if !ok || strings.TrimSpace(k) != "q" {
					continue
				}
				if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
					entry.Q = q
				}
			}
		}
		list = append(list, entry)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Q > list[j].Q })
	return list
}

func decodeAcceptEncoding(value string) []string {
	parts := strings.Split(value, ",")
	encodings := make([]string, len(parts))
	for i, p := range parts {
		encodings[i] = strings.TrimSpace(p)
	}
	return encodings
}

// decodeDirectives handles Cache-Control and Priority. A `name=value`
// directive stores the value (coerced to int for Cache-Control when
// possible), a bare directive stores true. A repeated name overwrites the
// earlier occurrence in place.
func decodeDirectives(value string, coerceInt bool) Directives {
	var d Directives
	put := func(name string, val any) {
		for i := range d {
			if d[i].Name == name {
				d[i].Value = val
				return
			}
		}
		d = append(d, Directive{Name: name, Value: val})
	}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			put(part, true)
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if coerceInt {
			if n, err := strconv.Atoi(v); err == nil {
				put(k, n)
				continue
			}
		}
		put(k, v)
	}
	return d
}
