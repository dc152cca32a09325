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

package core

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// CodePoint is a Unicode scalar value as stored in the character table.
type CodePoint uint32

// NoCodePoint marks a record whose code point column could not be parsed.
// Such records are never matched by code point.
const NoCodePoint CodePoint = 0

// IsValid reports whether the code point can take part in code point matching.
func (c CodePoint) IsValid() bool {
	return c != NoCodePoint
}

// Char returns the character for the code point, or "" for NoCodePoint
// and values outside the Unicode range.
func (c CodePoint) Char() string {
	if !c.IsValid() || !utf8.ValidRune(rune(c)) {
		return ""
	}
	return string(rune(c))
}

// String renders the code point in upper case hex, right aligned in six
// columns with BMP values zero padded to four digits.
func (c CodePoint) String() string {
	if c <= 0xFFFF {
		return fmt.Sprintf("  %04X", uint32(c))
	}
	return fmt.Sprintf("%6X", uint32(c))
}

// Record is one line of the character table.
type Record struct {
	CodePoint   CodePoint
	Description string
	Keywords    map[string]struct{} // upper case
}

// NewRecord builds a record from already normalised keywords.
func NewRecord(cp CodePoint, description string, keywords ...string) *Record {
	r := &Record{
		CodePoint:   cp,
		Description: description,
		Keywords:    make(map[string]struct{}, len(keywords)),
	}
	for _, kw := range keywords {
		if kw != "" {
			r.Keywords[kw] = struct{}{}
		}
	}
	return r
}

// HasKeyword reports whether kw is in the record's keyword set.
func (r *Record) HasKeyword(kw string) bool {
	_, ok := r.Keywords[kw]
	return ok
}

// MatchMode selects how an unadorned search term is classified.
type MatchMode int

const (
	// MatchAll treats unadorned terms as required.
	MatchAll MatchMode = iota + 1
	// MatchAny treats unadorned terms as optional.
	MatchAny
)

func (m MatchMode) String() string {
	switch m {
	case MatchAll:
		return "all"
	case MatchAny:
		return "any"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode converts "all" or "any" to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "all":
		return MatchAll, nil
	case "any":
		return MatchAny, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMatchMode, s)
	}
}

// Capacity limits for the recent searches and recent characters lists.
const (
	DefaultCapacity = 26
	MinCapacity     = 2
)

// History is the persisted state of the recent searches and recent
// characters lists. Index 0 is the most recent entry.
type History struct {
	Searches     []string
	Chars        []rune
	SearchesSize int
	CharsSize    int
	MatchMode    MatchMode
	UpdatedAt    time.Time
}

// NewHistory returns an empty history with default capacities.
func NewHistory() *History {
	return &History{
		SearchesSize: DefaultCapacity,
		CharsSize:    DefaultCapacity,
		MatchMode:    MatchAll,
	}
}
