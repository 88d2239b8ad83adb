// Package quotes holds the quote store: the built-in table merged with the
// user's custom quotes file, plus selection, search and export.
package quotes

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Snider/quotegen/pkg/jsonfile"
)

// DefaultCustomPath is where custom quotes are kept unless configured otherwise.
const DefaultCustomPath = "custom_quotes.json"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options configures a Store.
type Options struct {
	// CustomPath is the custom quotes file. Defaults to DefaultCustomPath.
	CustomPath string
	// Rand drives category and quote selection. Defaults to the global source.
	Rand *rand.Rand
	// Logger receives debug and warning output. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Store is the in-memory quote set for one invocation.
type Store struct {
	quotes     *Collection
	customPath string
	intn       func(int) int
	log        *slog.Logger
}

// NewStore returns a store holding only the built-in quotes. Call Load to
// merge the custom quotes file.
func NewStore(opts Options) (*Store, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	s := &Store{
		quotes:     builtin,
		customPath: opts.CustomPath,
		intn:       rand.IntN,
		log:        opts.Logger,
	}
	if s.customPath == "" {
		s.customPath = DefaultCustomPath
	}
	if opts.Rand != nil {
		s.intn = opts.Rand.IntN
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Load rebuilds the store from the built-in table and the custom quotes file.
// A missing custom file is not an error. If the custom file cannot be read or
// parsed the store keeps the built-in quotes and the error is returned.
func (s *Store) Load() error {
	builtin, err := Builtin()
	if err != nil {
		return err
	}
	s.quotes = builtin

	custom, err := s.readCustom()
	if err != nil {
		if jsonfile.IsNotExist(err) {
			s.log.Debug("no custom quotes file", "path", s.customPath)
			return nil
		}
		return err
	}
	s.quotes.Merge(custom)
	s.log.Debug("merged custom quotes", "path", s.customPath, "categories", len(custom.Categories()), "quotes", custom.Len())
	return nil
}

func (s *Store) readCustom() (*Collection, error) {
	custom := NewCollection()
	if err := jsonfile.Read(s.customPath, custom); err != nil {
		return nil, err
	}
	return custom, nil
}

// Categories returns the category names in display order.
func (s *Store) Categories() []string {
	return s.quotes.Categories()
}

// Collection returns a copy of the merged quote set.
func (s *Store) Collection() *Collection {
	return s.quotes.Clone()
}

// Pick selects a random quote. An empty category picks a random category first.
func (s *Store) Pick(category string) (Selection, error) {
	if category == "" {
		names := s.quotes.Categories()
		if len(names) == 0 {
			return Selection{}, ErrEmptyCategory
		}
		category = names[s.intn(len(names))]
	}

	qs, ok := s.quotes.Quotes(category)
	if !ok {
		return Selection{}, &UnknownCategoryError{Name: category, Available: s.quotes.Categories()}
	}
	if len(qs) == 0 {
		return Selection{Category: category}, fmt.Errorf("%w: %q", ErrEmptyCategory, category)
	}
	return Selection{Quote: qs[s.intn(len(qs))], Category: category}, nil
}

// AddCustom appends q to category in the custom quotes file and reloads the
// store. A missing or corrupt custom file is replaced by a new one.
func (s *Store) AddCustom(q Quote, category string) error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: quote text and author are required", ErrInvalidQuote)
	}
	if err := validate.Var(category, "required"); err != nil {
		return fmt.Errorf("%w: category is required", ErrInvalidQuote)
	}

	custom, err := s.readCustom()
	switch {
	case err == nil:
	case jsonfile.IsNotExist(err):
		custom = NewCollection()
	case jsonfile.IsCorrupt(err):
		s.log.Warn("discarding unreadable custom quotes", "path", s.customPath, "err", err)
		custom = NewCollection()
	default:
		return fmt.Errorf("failed to read custom quotes: %w", err)
	}

	custom.Append(category, q)
	if err := jsonfile.Write(s.customPath, custom); err != nil {
		return err
	}
	s.log.Debug("saved custom quote", "path", s.customPath, "category", category)
	return s.Load()
}

// Search returns every quote whose text or author contains keyword,
// ignoring case, in category order.
func (s *Store) Search(keyword string) []Selection {
	needle := strings.ToLower(keyword)
	var results []Selection
	for _, name := range s.quotes.Categories() {
		qs, _ := s.quotes.Quotes(name)
		for _, q := range qs {
			if strings.Contains(strings.ToLower(q.Text), needle) ||
				strings.Contains(strings.ToLower(q.Author), needle) {
				results = append(results, Selection{Quote: q, Category: name})
			}
		}
	}
	return results
}
