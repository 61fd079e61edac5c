package header

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

const (
	magicGZip  = "\x1f\x8b"                 // RFC 1952, section 2.3.1
	magicBZip2 = "\x42\x5a"                 // no formal spec exists
	magicXZ    = "\xfd\x37\x7a\x58\x5a\x00" // https://tukaani.org/xz/xz-file-format.txt
	magicZStd  = "\x28\xb5\x2f\xfd"         // RFC 8478, section 3.1.1
)

// newDecompressionReader wraps r with the decompressor matching the
// stream's magic bytes. Plain text passes through untouched.
func newDecompressionReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(6)
	if err != nil && len(magic) == 0 {
		// Empty or unreadable input: let the caller's read surface it.
		return io.NopCloser(br), nil
	}

	switch {
	case len(magic) >= 2 && string(magic[:2]) == magicGZip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("read gzip stream: %w", err)
		}
		return zr, nil

	case len(magic) >= 2 && string(magic[:2]) == magicBZip2:
		return io.NopCloser(bzip2.NewReader(br)), nil

	case len(magic) >= 6 && string(magic[:6]) == magicXZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("read xz stream: %w", err)
		}
		return io.NopCloser(xr), nil

	case len(magic) >= 4 && string(magic[:4]) == magicZStd:
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("read zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil

	default:
		return io.NopCloser(br), nil
	}
}

// ParseReader reads a header dump from r and parses it, transparently
// decompressing gzip, bzip2, xz and zstd streams detected by their magic
// bytes. The bytes are decoded as UTF-8 with Latin-1 fallback, like
// ParseBytes.
func (h *HeaderStore) ParseReader(r io.Reader, pairs ...Pair) error {
	dr, err := newDecompressionReader(r)
	if err != nil {
		return err
	}
	defer dr.Close()

	data, err := io.ReadAll(dr)
	if err != nil {
		return fmt.Errorf("read header dump: %w", err)
	}
	_, err = h.ParseBytes(data, pairs...)
	return err
}
