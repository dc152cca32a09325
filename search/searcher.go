package search

import (
	"log/slog"
	"time"

	"github.com/poiesic/charfind/core"
	"github.com/poiesic/charfind/history"
)

// RecordSource supplies the character table. unidata.Store implements it.
type RecordSource interface {
	Load() ([]*core.Record, error)
}

// Result is a completed search.
type Result struct {
	Query   string
	Mode    core.MatchMode
	Records []*core.Record
	Rows    []Row
	Header  string
	// HistoryChanged is true when the search was recorded and the recent
	// searches list changed, so any menu built from it needs refreshing.
	HistoryChanged bool
}

// Searcher runs keyword and code point searches over a record source and
// records successful searches in the history store.
type Searcher struct {
	source  RecordSource
	history *history.Store
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(source RecordSource, store *history.Store, opts ...Option) (*Searcher, error) {
	if source == nil {
		return nil, ErrRecordSourceRequired
	}
	if store == nil {
		return nil, ErrHistoryRequired
	}

	s := &Searcher{
		source:  source,
		history: store,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search finds the records matching raw under the given match mode.
// Returns a nil Result and nil error when raw is an empty query.
func (s *Searcher) Search(raw string, mode core.MatchMode) (*Result, error) {
	return s.SearchWithMonitor(raw, mode, nil)
}

// SearchWithMonitor is Search with callbacks at each stage.
func (s *Searcher) SearchWithMonitor(raw string, mode core.MatchMode, monitor SearchMonitor) (*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	parser, err := NewParser(mode)
	if err != nil {
		return nil, err
	}

	monitor.Start(raw, mode)
	q := parser.Parse(raw)
	monitor.AfterParse(q)
	if q.IsEmpty() {
		s.logger.Debug("empty query, nothing to search", "query", raw)
		return nil, nil
	}

	records, err := s.source.Load()
	if err != nil {
		s.logger.Error("error loading character table", "err", err)
		return nil, err
	}
	monitor.AfterLoad(len(records))

	start := time.Now()
	var matches []*core.Record
	for _, record := range records {
		if Matches(record, q) {
			monitor.Hit(record)
			matches = append(matches, record)
		}
	}
	rows, header := Format(matches)

	result := &Result{
		Query:   raw,
		Mode:    mode,
		Records: matches,
		Rows:    rows,
		Header:  header,
	}
	if len(matches) > 0 {
		result.HistoryChanged = s.history.AddSearch(raw)
	}
	s.logger.Debug("search finished",
		"query", raw,
		"mode", mode,
		"matches", len(matches),
		"elapsed", time.Since(start))
	monitor.Finish(rows, header)

	return result, nil
}
