// Package history keeps a bounded log of the quotes shown to the user.
package history

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Snider/quotegen/pkg/jsonfile"
	"github.com/Snider/quotegen/pkg/quotes"
)

const (
	// DefaultPath is the history file used unless configured otherwise.
	DefaultPath = ".quote_history.json"
	// DefaultMaxEntries bounds the log; older entries are evicted first.
	DefaultMaxEntries = 100
)

// ErrNoHistory is returned when no history has been recorded yet.
var ErrNoHistory = errors.New("no history found")

// Entry is one shown quote.
type Entry struct {
	ID        string        `json:"id,omitempty"`
	Quote     string        `json:"quote"`
	Author    string        `json:"author"`
	Category  string        `json:"category"`
	Timestamp jsonfile.Time `json:"timestamp"`
}

// Log is the history file. It is re-read on every call.
type Log struct {
	path string
	max  int
	now  func() time.Time
	log  *slog.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithMaxEntries overrides DefaultMaxEntries.
func WithMaxEntries(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.max = n
		}
	}
}

// WithClock sets the time source used for new entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Log) { l.log = log }
}

// New returns a Log backed by path.
func New(path string, opts ...Option) *Log {
	l := &Log{
		path: path,
		max:  DefaultMaxEntries,
		now:  time.Now,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if l.path == "" {
		l.path = DefaultPath
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends sel to the log, keeping only the most recent entries.
// A missing or corrupt log is started afresh.
func (l *Log) Record(sel quotes.Selection) error {
	entries, err := l.read()
	switch {
	case err == nil:
	case jsonfile.IsNotExist(err):
	case jsonfile.IsCorrupt(err):
		l.log.Warn("starting new history, existing file is unreadable", "path", l.path, "err", err)
		entries = nil
	default:
		return err
	}

	entries = append(entries, Entry{
		ID:        uuid.NewString(),
		Quote:     sel.Text,
		Author:    sel.Author,
		Category:  sel.Category,
		Timestamp: jsonfile.Time{Time: l.now()},
	})
	if len(entries) > l.max {
		entries = entries[len(entries)-l.max:]
	}

	if err := jsonfile.Write(l.path, entries); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	l.log.Debug("recorded history entry", "path", l.path, "entries", len(entries))
	return nil
}

// Recent returns up to limit entries, newest first. A limit of zero or less
// returns the whole log.
func (l *Log) Recent(limit int) ([]Entry, error) {
	entries, err := l.load()
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[len(entries)-limit:]
	}
	out := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Last returns the most recently recorded entry.
func (l *Log) Last() (Entry, error) {
	entries, err := l.load()
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoHistory
	}
	return entries[len(entries)-1], nil
}

// load reads the log, mapping a missing file to ErrNoHistory.
func (l *Log) load() ([]Entry, error) {
	entries, err := l.read()
	if jsonfile.IsNotExist(err) {
		return nil, ErrNoHistory
	}
	return entries, err
}

func (l *Log) read() ([]Entry, error) {
	var entries []Entry
	if err := jsonfile.Read(l.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
