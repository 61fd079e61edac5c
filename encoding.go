package header

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText converts raw input bytes to a string. UTF-8 is tried first,
// then Latin-1. An *EncodingError is returned if neither decoding succeeds.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", &EncodingError{Err: err}
	}
	return string(decoded), nil
}
