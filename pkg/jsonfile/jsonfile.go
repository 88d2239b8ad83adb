// Package jsonfile reads and writes the small JSON documents the CLI keeps on
// disk. Every write replaces the whole file; there is no locking, so two
// processes mutating the same file at once can lose an update.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrCorrupt is returned when a file exists but does not hold valid JSON for
// the requested type.
var ErrCorrupt = errors.New("corrupt JSON file")

// Read decodes the file at path into v.
// A missing file returns an error satisfying IsNotExist; undecodable content
// returns an error wrapping ErrCorrupt.
func Read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return nil
}

// Write encodes v with two-space indentation and overwrites path.
func Write(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal encodes v the way Write stores it on disk.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// IsNotExist reports whether err means the file was absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsCorrupt reports whether err came from undecodable file content.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorrupt)
}
