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

package history

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/charfind/core"
)

// Store owns the recent searches and recent characters lists and the
// last used match mode. All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	searches  *List[string]
	chars     *List[rune]
	mode      core.MatchMode
	updatedAt time.Time
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithCapacity sets the capacity of the searches and characters lists.
// Default is core.DefaultCapacity for both.
func WithCapacity(searches, chars int) Option {
	return func(s *Store) error {
		if err := core.ValidateCapacity(searches); err != nil {
			return err
		}
		if err := core.ValidateCapacity(chars); err != nil {
			return err
		}
		s.searches.SetCapacity(searches)
		s.chars.SetCapacity(chars)
		return nil
	}
}

// WithMatchMode sets the initial match mode.
// Default is core.MatchAll.
func WithMatchMode(mode core.MatchMode) Option {
	return func(s *Store) error {
		if err := core.ValidateMatchMode(mode); err != nil {
			return err
		}
		s.mode = mode
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a store with empty lists.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		searches: NewList[string](core.DefaultCapacity),
		chars:    NewList[rune](core.DefaultCapacity),
		mode:     core.MatchAll,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Searches returns the recent searches, most recent first.
func (s *Store) Searches() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searches.Values()
}

// Chars returns the recent characters, most recent first.
func (s *Store) Chars() []rune {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chars.Values()
}

func (s *Store) SearchesCapacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searches.Capacity()
}

func (s *Store) CharsCapacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chars.Capacity()
}

func (s *Store) MatchMode() core.MatchMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Store) SetMatchMode(mode core.MatchMode) error {
	if err := core.ValidateMatchMode(mode); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != mode {
		s.mode = mode
		s.touch()
	}
	return nil
}

// SetCapacity changes both capacities, dropping the oldest entries of a
// list that no longer fits.
func (s *Store) SetCapacity(searches, chars int) error {
	if err := core.ValidateCapacity(searches); err != nil {
		return err
	}
	if err := core.ValidateCapacity(chars); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches.SetCapacity(searches)
	s.chars.SetCapacity(chars)
	s.touch()
	return nil
}

// AddChar records c as recently used. Returns false if c was already in
// the list or is not a valid character.
func (s *Store) AddChar(c rune) bool {
	if err := core.ValidateChar(c); err != nil {
		s.logger.Debug("ignoring invalid character", "err", err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := AddChar(s.chars, c)
	if changed {
		s.touch()
	}
	return changed
}

// AddSearch records query as the most recent search. Surrounding
// whitespace is ignored and a blank query is never recorded. Returns true
// if the visible list changed.
func (s *Store) AddSearch(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := AddSearch(s.searches, query)
	if changed {
		s.touch()
	}
	return changed
}

// Snapshot copies the current state for persistence.
func (s *Store) Snapshot() *core.History {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &core.History{
		Searches:     s.searches.Values(),
		Chars:        s.chars.Values(),
		SearchesSize: s.searches.Capacity(),
		CharsSize:    s.chars.Capacity(),
		MatchMode:    s.mode,
		UpdatedAt:    s.updatedAt,
	}
}

// Restore replaces the current state with h. Repeated entries and
// entries past capacity are dropped.
func (s *Store) Restore(h *core.History) error {
	if err := core.ValidateHistory(h); err != nil {
		return err
	}
	searches := make([]string, 0, len(h.Searches))
	for _, q := range h.Searches {
		if q = strings.TrimSpace(q); q != "" {
			searches = append(searches, q)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = NewList(h.SearchesSize, searches...)
	s.chars = NewList(h.CharsSize, h.Chars...)
	s.mode = h.MatchMode
	s.updatedAt = h.UpdatedAt
	s.logger.Debug("restored history",
		"searches", s.searches.Len(),
		"chars", s.chars.Len())
	return nil
}

// touch must be called with mu held for writing.
func (s *Store) touch() {
	s.updatedAt = time.Now().UTC()
}
