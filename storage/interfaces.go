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

package storage

import (
	"context"

	"github.com/poiesic/charfind/core"
)

// SettingsRepository persists application settings across runs.
// Implementations must be thread-safe and support concurrent access.
type SettingsRepository interface {
	// LoadHistory returns the saved history.
	// Returns core.NewHistory() defaults if nothing has been saved yet.
	LoadHistory(ctx context.Context) (*core.History, error)

	// SaveHistory replaces the saved history.
	// The stored copy is stamped with the save time; history is not modified.
	SaveHistory(ctx context.Context, history *core.History) error

	// Close closes the repository and releases resources.
	Close() error
}
