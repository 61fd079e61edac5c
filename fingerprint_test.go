package header

import (
	"errors"
	"strings"
	"testing"
)

func TestFingerprintStableAcrossOrder(t *testing.T) {
	a := NewHeaderStore()
	a.Parse("Host: example.com\nAccept: */*")

	b := NewHeaderStore()
	b.Parse("Accept: */*\nHost: example.com")

	for _, algorithm := range []DigestAlgorithm{SHA1, SHA256Base16, SHA256Base32, BLAKE3} {
		da, err := a.Fingerprint(algorithm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		db, err := b.Fingerprint(algorithm)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if da != db {
			t.Errorf("algorithm %d: %q != %q", algorithm, da, db)
		}
	}
}

func TestFingerprintDiffersOnContent(t *testing.T) {
	a := NewHeaderStore()
	a.Parse("Host: example.com")

	b := NewHeaderStore()
	b.Parse("Host: example.org")

	da, _ := a.Fingerprint(BLAKE3)
	db, _ := b.Fingerprint(BLAKE3)
	if da == db {
		t.Error("different content must produce different digests")
	}
	if !strings.HasPrefix(da, "blake3:") {
		t.Errorf("expected blake3 prefix, got %q", da)
	}
}

func TestFingerprintUnknownAlgorithm(t *testing.T) {
	h := NewHeaderStore()
	if _, err := h.Fingerprint(DigestAlgorithm(99)); !errors.Is(err, ErrUnknownDigestAlgorithm) {
		t.Errorf("expected ErrUnknownDigestAlgorithm, got %v", err)
	}
}

func TestParseDigestAlgorithm(t *testing.T) {
	tests := []struct {
		name   string
		result DigestAlgorithm
		ok     bool
	}{
		{"sha1", SHA1, true},
		{"SHA256", SHA256Base16, true},
		{"sha256-32", SHA256Base32, true},
		{"blake3", BLAKE3, true},
		{"md5", 0, false},
	}
	for _, test := range tests {
		algorithm, err := ParseDigestAlgorithm(test.name)
		if test.ok && (err != nil || algorithm != test.result) {
			t.Errorf("%s: got %d, %v", test.name, algorithm, err)
		}
		if !test.ok && err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}
