// Package compress wraps exported quote files in gzip, xz or zstd, chosen by
// the file name's final extension.
package compress

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format is a compression format.
type Format string

const (
	None Format = ""
	Gzip Format = "gz"
	XZ   Format = "xz"
	Zstd Format = "zst"
)

// FromPath returns the compression format named by path's extension and the
// path with that extension removed, e.g. "quotes.yaml.gz" gives Gzip and
// "quotes.yaml". Paths without a known extension return None and path.
func FromPath(path string) (Format, string) {
	ext := filepath.Ext(path)
	switch f := Format(strings.TrimPrefix(strings.ToLower(ext), ".")); f {
	case Gzip, XZ, Zstd:
		return f, strings.TrimSuffix(path, ext)
	}
	return None, path
}

// Compress compresses data using format. None returns data unchanged.
func Compress(data []byte, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch format {
	case None:
		return data, nil
	case Gzip:
		w = gzip.NewWriter(&buf)
	case XZ:
		w, err = xz.NewWriter(&buf)
	case Zstd:
		w, err = zstd.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unsupported compression format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Decompress detects the format from the leading magic bytes and
// decompresses data. Unrecognised data is returned unchanged.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case bytes.HasPrefix(data, xzMagic):
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(r)
	case bytes.HasPrefix(data, zstdMagic):
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}
	return data, nil
}
