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
	"maps"
	"strconv"
	"strings"

	"github.com/poiesic/charfind/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query is a parsed search. Terms are upper case.
type Query struct {
	Required   map[string]struct{}
	Optional   map[string]struct{}
	Excluded   map[string]struct{}
	CodePoints map[core.CodePoint]struct{}
}

func newQuery() *Query {
	return &Query{
		Required:   make(map[string]struct{}),
		Optional:   make(map[string]struct{}),
		Excluded:   make(map[string]struct{}),
		CodePoints: make(map[core.CodePoint]struct{}),
	}
}

// IsEmpty reports whether the query can match nothing: it has no required
// or optional terms and no code point candidates. Excluded terms alone do
// not make a query.
func (q *Query) IsEmpty() bool {
	return len(q.Required) == 0 && len(q.Optional) == 0 && len(q.CodePoints) == 0
}

func (q *Query) Equal(other *Query) bool {
	return maps.Equal(q.Required, other.Required) &&
		maps.Equal(q.Optional, other.Optional) &&
		maps.Equal(q.Excluded, other.Excluded) &&
		maps.Equal(q.CodePoints, other.CodePoints)
}

type termKind int

const (
	requiredTerm termKind = iota
	optionalTerm
	excludedTerm
)

// Parser turns raw search text into a Query.
//
// Tokens are separated by white space. A leading + makes a token required,
// a leading - excludes it and a trailing ? makes it optional. The match
// mode decides what an unadorned token is: required for core.MatchAll,
// optional for core.MatchAny.
//
// Independently of any sigil, a token that parses as a decimal number and
// a token that parses as a hexadecimal number (optionally written U+XXXX or
// 0xXXXX) each add a code point candidate. Numeric tokens still count as
// terms too.
type Parser struct {
	mode core.MatchMode
}

func NewParser(mode core.MatchMode) (*Parser, error) {
	if err := core.ValidateMatchMode(mode); err != nil {
		return nil, err
	}
	return &Parser{mode: mode}, nil
}

func (p *Parser) Mode() core.MatchMode {
	return p.mode
}

func (p *Parser) Parse(raw string) *Query {
	caser := cases.Upper(language.Und)
	q := newQuery()
	for _, token := range strings.Fields(raw) {
		term, kind := p.classify(token)
		addCodePoints(q, term)
		if term == "" {
			continue
		}
		term = caser.String(term)
		switch kind {
		case requiredTerm:
			q.Required[term] = struct{}{}
		case optionalTerm:
			q.Optional[term] = struct{}{}
		case excludedTerm:
			q.Excluded[term] = struct{}{}
		}
	}
	return q
}

func (p *Parser) classify(token string) (string, termKind) {
	switch {
	case strings.HasPrefix(token, "+"):
		return strings.TrimSuffix(token[1:], "?"), requiredTerm
	case strings.HasPrefix(token, "-"):
		return strings.TrimSuffix(token[1:], "?"), excludedTerm
	case strings.HasSuffix(token, "?"):
		return strings.TrimSuffix(token, "?"), optionalTerm
	case p.mode == core.MatchAny:
		return token, optionalTerm
	default:
		return token, requiredTerm
	}
}

func addCodePoints(q *Query, term string) {
	if term == "" {
		return
	}
	if n, err := strconv.ParseUint(term, 10, 32); err == nil && n != 0 {
		q.CodePoints[core.CodePoint(n)] = struct{}{}
	}
	hex := term
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		if rest, ok := strings.CutPrefix(term, prefix); ok {
			hex = rest
			break
		}
	}
	if n, err := strconv.ParseUint(hex, 16, 32); err == nil && n != 0 {
		q.CodePoints[core.CodePoint(n)] = struct{}{}
	}
}
