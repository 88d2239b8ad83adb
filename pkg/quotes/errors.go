package quotes

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownCategory indicates a category that is not in the store.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyCategory indicates a category that exists but holds no quotes.
	ErrEmptyCategory = errors.New("empty category")

	// ErrInvalidQuote indicates a quote that failed input validation.
	ErrInvalidQuote = errors.New("invalid quote")
)

// UnknownCategoryError carries the requested name and the categories that do exist.
type UnknownCategoryError struct {
	Name      string
	Available []string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("category %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownCategoryError) Unwrap() error {
	return ErrUnknownCategory
}
