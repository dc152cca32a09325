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

import (
	"github.com/poiesic/charfind/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoMatchesHeader is the header for an empty result.
const NoMatchesHeader = "No matches found"

// Row is one displayable match.
type Row struct {
	Index       int
	CodePoint   core.CodePoint
	Char        string
	Label       string // code point as rendered by core.CodePoint.String
	Description string
	Shaded      bool // odd rows, for alternating backgrounds
}

// Format builds one row per match, keeping the matches' order, and the
// summary header.
func Format(matches []*core.Record) ([]Row, string) {
	rows := make([]Row, 0, len(matches))
	for i, record := range matches {
		rows = append(rows, Row{
			Index:       i,
			CodePoint:   record.CodePoint,
			Char:        record.CodePoint.Char(),
			Label:       record.CodePoint.String(),
			Description: record.Description,
			Shaded:      i%2 == 1,
		})
	}
	return rows, Header(len(matches))
}

// Header summarises a match count, e.g. "1 match" or "1,234 matches".
func Header(count int) string {
	switch count {
	case 0:
		return NoMatchesHeader
	case 1:
		return "1 match"
	default:
		return message.NewPrinter(language.English).Sprintf("%d matches", count)
	}
}
