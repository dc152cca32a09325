// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package charfind finds Unicode characters by name keyword or code point
// and remembers recent searches and characters between runs.
//
//	finder, err := charfind.Open(config.NewConfig(config.WithDataDir(dir)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer finder.Close()
//
//	result, err := finder.Search("arrow left")
package charfind

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/poiesic/charfind/config"
	"github.com/poiesic/charfind/core"
	"github.com/poiesic/charfind/history"
	"github.com/poiesic/charfind/search"
	"github.com/poiesic/charfind/storage"
	"github.com/poiesic/charfind/storage/badger"
	"github.com/poiesic/charfind/unidata"
)

// Finder ties together the character table, the searcher, the history
// store and the settings database.
type Finder struct {
	repo      storage.SettingsRepository
	source    search.RecordSource
	history   *history.Store
	searcher  *search.Searcher
	logger    *slog.Logger
	closeOnce sync.Once
	closeErr  error
}

// Option configures a Finder.
type Option func(*finderOptions)

type finderOptions struct {
	logger *slog.Logger
	source search.RecordSource
	repo   storage.SettingsRepository
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *finderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRecordSource replaces the embedded character table.
func WithRecordSource(source search.RecordSource) Option {
	return func(o *finderOptions) {
		o.source = source
	}
}

// WithSettingsRepository uses repo instead of opening one in the
// configured data directory. The Finder closes it on Close.
func WithSettingsRepository(repo storage.SettingsRepository) Option {
	return func(o *finderOptions) {
		o.repo = repo
	}
}

// Open validates cfg, loads saved history and prepares a Finder. A nil cfg
// uses config.DefaultConfig().
//
// Capacities always come from cfg. The match mode comes from the saved
// history once one exists, otherwise from cfg.
func Open(cfg *config.Config, opts ...Option) (*Finder, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &finderOptions{
		logger: slog.Default(),
		source: unidata.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger

	repo := options.repo
	if repo == nil {
		var err error
		repo, err = badger.NewSettingsRepository(cfg.DataDir, badger.WithLogger(logger))
		if err != nil {
			return nil, err
		}
	}

	saved, err := repo.LoadHistory(context.Background())
	switch {
	case errors.Is(err, storage.ErrSerializationFailed):
		logger.Warn("discarding undecodable saved history", "err", err)
		saved = core.NewHistory()
	case err != nil:
		repo.Close()
		return nil, err
	}

	store, err := history.NewStore(history.WithLogger(logger))
	if err != nil {
		repo.Close()
		return nil, err
	}
	if err := store.Restore(saved); err != nil {
		logger.Warn("discarding unusable saved history", "err", err)
	}
	if saved.UpdatedAt.IsZero() {
		if err := store.SetMatchMode(cfg.Mode()); err != nil {
			repo.Close()
			return nil, err
		}
	}
	if store.SearchesCapacity() != cfg.SearchesSize || store.CharsCapacity() != cfg.HistorySize {
		if err := store.SetCapacity(cfg.SearchesSize, cfg.HistorySize); err != nil {
			repo.Close()
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(options.source, store, search.WithLogger(logger))
	if err != nil {
		repo.Close()
		return nil, err
	}

	return &Finder{
		repo:     repo,
		source:   options.source,
		history:  store,
		searcher: searcher,
		logger:   logger,
	}, nil
}

// Search runs raw with the remembered match mode.
func (f *Finder) Search(raw string) (*search.Result, error) {
	return f.searcher.Search(raw, f.history.MatchMode())
}

// SearchWithMode runs raw with mode. The mode is remembered for later
// searches once a search with it has actually run.
func (f *Finder) SearchWithMode(raw string, mode core.MatchMode) (*search.Result, error) {
	result, err := f.searcher.Search(raw, mode)
	if err != nil || result == nil {
		return result, err
	}
	if err := f.history.SetMatchMode(mode); err != nil {
		return nil, err
	}
	return result, nil
}

// AddChar records c as a recently used character.
func (f *Finder) AddChar(c rune) bool {
	return f.history.AddChar(c)
}

// Lookup returns the table record for cp, or nil if there is none.
func (f *Finder) Lookup(cp core.CodePoint) (*core.Record, error) {
	records, err := f.source.Load()
	if err != nil {
		return nil, err
	}
	return unidata.Lookup(records, cp), nil
}

// History returns the live history store.
func (f *Finder) History() *history.Store {
	return f.history
}

// Save persists the current history.
func (f *Finder) Save(ctx context.Context) error {
	return f.repo.SaveHistory(ctx, f.history.Snapshot())
}

// Close saves the history and closes the settings database. Calling Close
// again returns the first result.
func (f *Finder) Close() error {
	f.closeOnce.Do(func() {
		if err := f.Save(context.Background()); err != nil {
			f.logger.Error("error saving history", "err", err)
			f.closeErr = err
		}
		if err := f.repo.Close(); err != nil {
			f.logger.Error("error closing settings repository", "err", err)
			if f.closeErr == nil {
				f.closeErr = err
			}
		}
	})
	return f.closeErr
}
