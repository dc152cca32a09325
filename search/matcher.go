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

package search

import "github.com/poiesic/charfind/core"

// Matches reports whether record satisfies q.
//
// An excluded keyword rejects the record outright, even when its code point
// is a candidate. Otherwise a code point hit matches regardless of
// keywords. Failing that, every required term must be present and, if
// there are optional terms, at least one of them.
func Matches(record *core.Record, q *Query) bool {
	for term := range q.Excluded {
		if record.HasKeyword(term) {
			return false
		}
	}
	if record.CodePoint.IsValid() {
		if _, ok := q.CodePoints[record.CodePoint]; ok {
			return true
		}
	}
	if len(q.Required) == 0 && len(q.Optional) == 0 {
		return false
	}
	for term := range q.Required {
		if !record.HasKeyword(term) {
			return false
		}
	}
	if len(q.Optional) == 0 {
		return true
	}
	for term := range q.Optional {
		if record.HasKeyword(term) {
			return true
		}
	}
	return false
}

// Match returns the records that satisfy q, in their original order.
func Match(records []*core.Record, q *Query) []*core.Record {
	var matches []*core.Record
	for _, record := range records {
		if Matches(record, q) {
			matches = append(matches, record)
		}
	}
	return matches
}
