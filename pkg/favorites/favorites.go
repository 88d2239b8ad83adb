// Package favorites stores the quotes a user chose to keep. Entries are
// unique by quote text and author and keep insertion order.
package favorites

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Snider/quotegen/pkg/jsonfile"
	"github.com/Snider/quotegen/pkg/quotes"
)

// DefaultPath is the favorites file used unless configured otherwise.
const DefaultPath = "favorite_quotes.json"

var (
	// ErrNoFavorites is returned when nothing has been saved yet.
	ErrNoFavorites = errors.New("no favorite quotes saved")

	// ErrAlreadyFavorite is returned when the quote and author are already saved.
	ErrAlreadyFavorite = errors.New("quote already in favorites")

	// ErrNotFound is returned when a reference matches no saved entry.
	ErrNotFound = errors.New("favorite not found")
)

// Entry is a saved quote.
type Entry struct {
	ID       string        `json:"id,omitempty"`
	Quote    string        `json:"quote"`
	Author   string        `json:"author"`
	Category string        `json:"category"`
	SavedAt  jsonfile.Time `json:"saved_at"`
}

// Log is the favorites file.
type Log struct {
	path string
	now  func() time.Time
	log  *slog.Logger
}

// New returns a Log backed by path. A nil logger discards output.
func New(path string, log *slog.Logger) *Log {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Log{path: path, now: time.Now, log: log}
}

// Add saves sel unless an entry with the same text and author exists, in
// which case ErrAlreadyFavorite is returned and nothing is written.
func (l *Log) Add(sel quotes.Selection) (Entry, error) {
	entries, err := l.read()
	switch {
	case err == nil:
	case jsonfile.IsNotExist(err):
	case jsonfile.IsCorrupt(err):
		l.log.Warn("starting new favorites, existing file is unreadable", "path", l.path, "err", err)
		entries = nil
	default:
		return Entry{}, err
	}

	for _, e := range entries {
		if e.Quote == sel.Text && e.Author == sel.Author {
			return e, ErrAlreadyFavorite
		}
	}

	entry := Entry{
		ID:       uuid.NewString(),
		Quote:    sel.Text,
		Author:   sel.Author,
		Category: sel.Category,
		SavedAt:  jsonfile.Time{Time: l.now()},
	}
	if err := jsonfile.Write(l.path, append(entries, entry)); err != nil {
		return Entry{}, fmt.Errorf("failed to save favorites: %w", err)
	}
	l.log.Debug("saved favorite", "path", l.path, "id", entry.ID)
	return entry, nil
}

// List returns all saved entries in the order they were added.
func (l *Log) List() ([]Entry, error) {
	entries, err := l.read()
	if jsonfile.IsNotExist(err) {
		return nil, ErrNoFavorites
	}
	return entries, err
}

// Remove deletes the entry matching ref, either a 1-based position as shown
// by List or a prefix of the entry ID.
func (l *Log) Remove(ref string) (Entry, error) {
	entries, err := l.List()
	if err != nil {
		return Entry{}, err
	}

	idx := find(entries, ref)
	if idx < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	removed := entries[idx]
	entries = append(entries[:idx], entries[idx+1:]...)

	if err := jsonfile.Write(l.path, entries); err != nil {
		return Entry{}, fmt.Errorf("failed to save favorites: %w", err)
	}
	return removed, nil
}

func find(entries []Entry, ref string) int {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(entries) {
			return n - 1
		}
		return -1
	}
	match := -1
	for i, e := range entries {
		if e.ID != "" && strings.HasPrefix(e.ID, ref) {
			if match >= 0 {
				return -1 // ambiguous
			}
			match = i
		}
	}
	return match
}

func (l *Log) read() ([]Entry, error) {
	var entries []Entry
	if err := jsonfile.Read(l.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
