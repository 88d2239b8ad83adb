package quotes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Quote is a single quotation and its author.
type Quote struct {
	Text   string `json:"quote" yaml:"quote" toml:"quote" validate:"required"`
	Author string `json:"author" yaml:"author" toml:"author" validate:"required"`
}

// Selection pairs a quote with the category it was found in.
type Selection struct {
	Quote
	Category string
}

// Collection maps category names to ordered quote lists. Categories keep the
// order in which they were first added, and that order survives encoding.
type Collection struct {
	order []string
	items map[string][]Quote
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{items: make(map[string][]Quote)}
}

// Append adds quotes to category, creating the category when it is new.
// A new category is created even when no quotes are given.
func (c *Collection) Append(category string, qs ...Quote) {
	if c.items == nil {
		c.items = make(map[string][]Quote)
	}
	existing, ok := c.items[category]
	if !ok {
		c.order = append(c.order, category)
		existing = []Quote{}
	}
	c.items[category] = append(existing, qs...)
}

// Merge appends every category of other onto c in other's order.
func (c *Collection) Merge(other *Collection) {
	for _, name := range other.order {
		c.Append(name, other.items[name]...)
	}
}

// Categories returns the category names in order.
func (c *Collection) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Quotes returns the quotes of category and whether the category exists.
func (c *Collection) Quotes(category string) ([]Quote, bool) {
	qs, ok := c.items[category]
	return qs, ok
}

// Has reports whether category exists.
func (c *Collection) Has(category string) bool {
	_, ok := c.items[category]
	return ok
}

// Len returns the total number of quotes across all categories.
func (c *Collection) Len() int {
	n := 0
	for _, qs := range c.items {
		n += len(qs)
	}
	return n
}

// Clone returns a deep copy of c.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	out.Merge(c)
	return out
}

// Map returns the collection as a plain map. Category order is lost.
func (c *Collection) Map() map[string][]Quote {
	out := make(map[string][]Quote, len(c.items))
	for name, qs := range c.items {
		out[name] = append([]Quote{}, qs...)
	}
	return out
}

// MarshalJSON encodes the collection as an object whose keys follow category order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(c.items[name]); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object of category lists, keeping key order.
// Repeated keys are merged.
func (c *Collection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("expected an object mapping categories to quote lists")
	}

	fresh := NewCollection()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var qs []Quote
		if err := dec.Decode(&qs); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		fresh.Append(name, qs...)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = *fresh
	return nil
}

// MarshalYAML implements yaml.Marshaler, keeping category order.
func (c *Collection) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.order {
		var value yaml.Node
		if err := value.Encode(c.items[name]); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&value,
		)
	}
	return root, nil
}
