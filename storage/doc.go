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

// Package storage provides the settings persistence layer for charfind.
//
// SettingsRepository decouples the application from the storage engine.
// The BadgerDB implementation lives in the badger subpackage:
//
//	repo, err := badger.NewSettingsRepository("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
// Tests use in-memory storage:
//
//	repo, err := badger.NewMemorySettingsRepository()
//
// Values are encoded with MarshalHistory, a compact varint format built on
// mus-go. The first field is a format version so older databases can be
// detected.
//
// All repository methods accept context.Context for cancellation.
// Pass context.Background() for operations without specific timeout
// requirements.
package storage
