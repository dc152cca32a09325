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
	"strings"

	"github.com/hbollon/go-edlib"
)

// A search within this Levenshtein distance of the front entry replaces it.
const refineDistance = 2

// AddChar pushes c to the front of l unless it is already present.
// Returns true if the list changed.
func AddChar(l *List[rune], c rune) bool {
	if l.Contains(c) {
		return false
	}
	l.PushFront(c)
	return true
}

// AddSearch records s as the most recent search. Returns true if the list
// changed.
func AddSearch(l *List[string], s string) bool {
	front, ok := l.Front()
	if ok && front == s {
		return false
	}
	if i := l.IndexOf(s); i > 0 {
		l.Promote(i)
		return true
	}
	if ok && isRefinement(front, s) {
		l.ReplaceFront(s)
		return true
	}
	l.PushFront(s)
	return true
}

// isRefinement reports whether s looks like an edit of the previous search.
func isRefinement(previous, s string) bool {
	return strings.HasPrefix(s, previous) ||
		edlib.LevenshteinDistance(s, previous) < refineDistance
}
