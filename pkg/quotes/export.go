package quotes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Snider/quotegen/pkg/compress"
	"github.com/Snider/quotegen/pkg/jsonfile"
)

// Export writes the quote set to path. With includeCustom the merged set is
// written; otherwise only the built-in table, whatever was merged.
// The format follows the extension: .yaml/.yml, .toml, or JSON for anything
// else, optionally followed by .gz, .xz or .zst to compress the output.
func (s *Store) Export(path string, includeCustom bool) error {
	data := s.quotes
	if !includeCustom {
		builtin, err := Builtin()
		if err != nil {
			return err
		}
		data = builtin
	}

	compression, inner := compress.FromPath(path)
	encoded, err := Encode(data, formatFor(inner))
	if err != nil {
		return err
	}
	if encoded, err = compress.Compress(encoded, compression); err != nil {
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.log.Debug("exported quotes", "path", path, "include_custom", includeCustom, "quotes", data.Len())
	return nil
}

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Encode serializes c in the given format.
func Encode(c *Collection, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(c.Map()); err != nil {
			return nil, fmt.Errorf("failed to encode TOML: %w", err)
		}
	case FormatJSON:
		return jsonfile.Marshal(c)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	return buf.Bytes(), nil
}
