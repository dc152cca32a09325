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

package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/charfind/core"
	"github.com/poiesic/charfind/storage"
)

// SettingsRepository implements storage.SettingsRepository for BadgerDB.
type SettingsRepository struct {
	backend *Backend
	owned   bool
}

var _ storage.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository opens a BadgerDB database in dir and returns a
// repository that closes it on Close. An empty dir opens an in-memory
// database.
func NewSettingsRepository(dir string, opts ...Option) (storage.SettingsRepository, error) {
	backend, err := OpenBackend(dir, dir == "", opts...)
	if err != nil {
		return nil, err
	}
	return &SettingsRepository{backend: backend, owned: true}, nil
}

// NewSettingsRepositoryWithBackend creates a repository over an existing
// backend. The caller keeps ownership of the backend.
func NewSettingsRepositoryWithBackend(backend *Backend) *SettingsRepository {
	return &SettingsRepository{backend: backend}
}

// Close closes the backend if the repository opened it.
func (r *SettingsRepository) Close() error {
	if !r.owned || r.backend.IsClosed() {
		return nil
	}
	return r.backend.Close()
}

// LoadHistory retrieves the saved history.
// Returns core.NewHistory() if no history has been saved.
func (r *SettingsRepository) LoadHistory(ctx context.Context) (*core.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var history *core.History
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSettingsKey(historyName))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			history, unmarshalErr = storage.UnmarshalHistory(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if history == nil {
		r.backend.logger.Debug("no saved history, using defaults")
		return core.NewHistory(), nil
	}
	return history, nil
}

// SaveHistory persists the history, replacing any saved one.
func (r *SettingsRepository) SaveHistory(ctx context.Context, history *core.History) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := core.ValidateHistory(history); err != nil {
		return err
	}

	saved := *history
	saved.UpdatedAt = time.Now().UTC()
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalHistory(&saved)
		if err := tx.Set(makeSettingsKey(historyName), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
