package compress

import (
	"bytes"
	"testing"
)

func TestRoundTrip_Good(t *testing.T) {
	original := []byte(`{"wisdom": [{"quote": "Know thyself.", "author": "Socrates"}]}`)

	for _, format := range []Format{Gzip, XZ, Zstd} {
		t.Run(string(format), func(t *testing.T) {
			compressed, err := Compress(original, format)
			if err != nil {
				t.Fatalf("%s compression failed: %v", format, err)
			}
			if bytes.Equal(original, compressed) {
				t.Fatalf("%s compressed data is the same as the original", format)
			}

			decompressed, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("%s decompression failed: %v", format, err)
			}
			if !bytes.Equal(original, decompressed) {
				t.Errorf("%s decompressed data does not match original data", format)
			}
		})
	}
}

func TestNone_Good(t *testing.T) {
	original := []byte("plain text")
	compressed, err := Compress(original, None)
	if err != nil {
		t.Fatalf("None compression failed: %v", err)
	}
	if !bytes.Equal(original, compressed) {
		t.Errorf("None compression should not change data")
	}

	decompressed, err := Decompress(compressed)
	if err != nil {
		t.Fatalf("decompression of plain data failed: %v", err)
	}
	if !bytes.Equal(original, decompressed) {
		t.Errorf("plain data should pass through Decompress unchanged")
	}
}

func TestCompress_Bad(t *testing.T) {
	if _, err := Compress([]byte("x"), Format("bz2")); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestFromPath(t *testing.T) {
	cases := []struct {
		path   string
		format Format
		inner  string
	}{
		{"quotes.json", None, "quotes.json"},
		{"quotes.json.gz", Gzip, "quotes.json"},
		{"out/quotes.yaml.XZ", XZ, "out/quotes.yaml"},
		{"quotes.toml.zst", Zstd, "quotes.toml"},
		{"archive.gz", Gzip, "archive"},
	}
	for _, tc := range cases {
		format, inner := FromPath(tc.path)
		if format != tc.format || inner != tc.inner {
			t.Errorf("FromPath(%q) = (%q, %q), want (%q, %q)", tc.path, format, inner, tc.format, tc.inner)
		}
	}
}
