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

// Package search finds Unicode characters by keyword or code point.
//
// A search runs in three stages:
//   - Parser turns free text into a Query of required, optional and
//     excluded terms plus code point candidates
//   - Matches tests each record of the character table against the Query
//   - Format turns the matching records into display rows and a header
//
// The Searcher type runs all three and, when anything matched, records the
// search in the recent searches history.
package search
