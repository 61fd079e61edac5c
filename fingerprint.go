package header

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

type DigestAlgorithm int

const (
	SHA1 DigestAlgorithm = iota
	SHA256Base16
	SHA256Base32
	BLAKE3
)

// Fingerprint returns a stable digest of the store's content: the ToRaw
// rendering with its lines sorted, so two stores holding the same headers
// hash identically regardless of insertion order. Useful for comparing
// header dumps.
func (h *HeaderStore) Fingerprint(algorithm DigestAlgorithm) (string, error) {
	lines := strings.Split(h.ToRaw(), "\n")
	sort.Strings(lines)
	canonical := strings.Join(lines, "\n")

	switch algorithm {
	case SHA1:
		sha := sha1.New()
		sha.Write([]byte(canonical))
		return "sha1:" + base32.StdEncoding.EncodeToString(sha.Sum(nil)), nil
	case SHA256Base16:
		sha := sha256.New()
		sha.Write([]byte(canonical))
		return "sha256:" + hex.EncodeToString(sha.Sum(nil)), nil
	case SHA256Base32:
		sha := sha256.New()
		sha.Write([]byte(canonical))
		return "sha256:" + base32.StdEncoding.EncodeToString(sha.Sum(nil)), nil
	case BLAKE3:
		b3 := blake3.New()
		b3.Write([]byte(canonical))
		return "blake3:" + hex.EncodeToString(b3.Sum(nil)), nil
	default:
		return "", ErrUnknownDigestAlgorithm
	}
}

// ParseDigestAlgorithm maps a user-facing algorithm name to its
// DigestAlgorithm.
func ParseDigestAlgorithm(name string) (DigestAlgorithm, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256Base16, nil
	case "sha256-32":
		return SHA256Base32, nil
	case "blake3":
		return BLAKE3, nil
	default:
		return 0, ErrUnknownDigestAlgorithm
	}
}
