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

// Package history keeps the bounded most-recently-used lists of searches
// and characters.
//
// Both lists keep their most recent entry at index 0 and silently drop the
// oldest entries when they grow past their capacity. They differ in how a
// new entry is merged:
//   - AddChar ignores a character that is already anywhere in the list.
//   - AddSearch promotes an existing identical search to the front, and
//     replaces the front entry in place when the new search refines it
//     (the front is a prefix of it, or they differ by a single edit).
//
// Store guards both lists behind a reader/writer lock and is the only
// handle the rest of the application holds on them.
package history
