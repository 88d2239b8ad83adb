package quotes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// builtinJSON is the quote table bundled into the binary.
//
//go:embed builtin.json
var builtinJSON []byte

var (
	cachedBuiltin *Collection
	builtinOnce   sync.Once
	builtinErr    error
)

// loadBuiltin unmarshals the embedded table.
func loadBuiltin() (*Collection, error) {
	c := NewCollection()
	if err := json.Unmarshal(builtinJSON, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal builtin.json: %w", err)
	}
	return c, nil
}

// Builtin returns a fresh copy of the built-in quote table. Callers may
// modify the result freely.
func Builtin() (*Collection, error) {
	builtinOnce.Do(func() {
		cachedBuiltin, builtinErr = loadBuiltin()
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return cachedBuiltin.Clone(), nil
}
