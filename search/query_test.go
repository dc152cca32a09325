package search

import (
	"testing"

	"github.com/poiesic/charfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(terms ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		m[term] = struct{}{}
	}
	return m
}

func codePoints(cps ...core.CodePoint) map[core.CodePoint]struct{} {
	m := make(map[core.CodePoint]struct{}, len(cps))
	for _, cp := range cps {
		m[cp] = struct{}{}
	}
	return m
}

func mustParser(t *testing.T, mode core.MatchMode) *Parser {
	t.Helper()
	p, err := NewParser(mode)
	require.NoError(t, err)
	return p
}

func TestNewParser(t *testing.T) {
	p, err := NewParser(core.MatchAny)
	require.NoError(t, err)
	assert.Equal(t, core.MatchAny, p.Mode())

	_, err = NewParser(core.MatchMode(0))
	assert.ErrorIs(t, err, core.ErrInvalidMatchMode)
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name         string
		mode         core.MatchMode
		raw          string
		wantRequired map[string]struct{}
		wantOptional map[string]struct{}
		wantExcluded map[string]struct{}
		wantCPs      map[core.CodePoint]struct{}
	}{
		{
			name:         "bare terms in match all mode are required",
			mode:         core.MatchAll,
			raw:          "arrow left",
			wantRequired: set("ARROW", "LEFT"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "bare terms in match any mode are optional",
			mode:         core.MatchAny,
			raw:          "up down",
			wantRequired: set(),
			wantOptional: set("UP", "DOWN"),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "sigils override the mode",
			mode:         core.MatchAny,
			raw:          "+arrow -double left? up",
			wantRequired: set("ARROW"),
			wantOptional: set("LEFT", "UP"),
			wantExcluded: set("DOUBLE"),
			wantCPs:      codePoints(),
		},
		{
			name:         "leading sigil wins over trailing",
			mode:         core.MatchAll,
			raw:          "+arrow? -heavy?",
			wantRequired: set("ARROW"),
			wantOptional: set(),
			wantExcluded: set("HEAVY"),
			wantCPs:      codePoints(),
		},
		{
			name:         "lone sigils are ignored",
			mode:         core.MatchAll,
			raw:          "+ - ? euro",
			wantRequired: set("EURO"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "decimal and hex candidates",
			mode:         core.MatchAll,
			raw:          "2026",
			wantRequired: set("2026"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(2026, 0x2026),
		},
		{
			name:         "hex only",
			mode:         core.MatchAll,
			raw:          "7ea",
			wantRequired: set("7EA"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(0x7EA),
		},
		{
			name:         "U+ notation",
			mode:         core.MatchAll,
			raw:          "U+20AC",
			wantRequired: set("U+20AC"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(0x20AC),
		},
		{
			name:         "0x notation",
			mode:         core.MatchAny,
			raw:          "0x41",
			wantRequired: set(),
			wantOptional: set("0X41"),
			wantExcluded: set(),
			wantCPs:      codePoints(0x41),
		},
		{
			name:         "sigils do not suppress code points",
			mode:         core.MatchAll,
			raw:          "-41 +42 43?",
			wantRequired: set("42"),
			wantOptional: set("43"),
			wantExcluded: set("41"),
			wantCPs:      codePoints(41, 0x41, 42, 0x42, 43, 0x43),
		},
		{
			name:         "zero is never a candidate",
			mode:         core.MatchAll,
			raw:          "0",
			wantRequired: set("0"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "non numeric word stays a keyword",
			mode:         core.MatchAll,
			raw:          "12z",
			wantRequired: set("12Z"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "too large for 32 bits",
			mode:         core.MatchAll,
			raw:          "123456789ABC",
			wantRequired: set("123456789ABC"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
		{
			name:         "non ascii terms are upper cased",
			mode:         core.MatchAll,
			raw:          "\tgreek  ω\n",
			wantRequired: set("GREEK", "Ω"),
			wantOptional: set(),
			wantExcluded: set(),
			wantCPs:      codePoints(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mustParser(t, tt.mode).Parse(tt.raw)
			assert.Equal(t, tt.wantRequired, q.Required)
			assert.Equal(t, tt.wantOptional, q.Optional)
			assert.Equal(t, tt.wantExcluded, q.Excluded)
			assert.Equal(t, tt.wantCPs, q.CodePoints)
		})
	}
}

func TestQuery_IsEmpty(t *testing.T) {
	p := mustParser(t, core.MatchAll)

	assert.True(t, p.Parse("").IsEmpty())
	assert.True(t, p.Parse("   \t ").IsEmpty())
	assert.True(t, p.Parse("-arrow -left").IsEmpty())
	assert.True(t, p.Parse("+ ?").IsEmpty())
	assert.False(t, p.Parse("arrow").IsEmpty())
	assert.False(t, p.Parse("euro?").IsEmpty())
	assert.False(t, p.Parse("-2026").IsEmpty())
}

func TestParser_Idempotent(t *testing.T) {
	for _, mode := range []core.MatchMode{core.MatchAll, core.MatchAny} {
		p := mustParser(t, mode)
		for _, raw := range []string{"", "arrow left", "+a -b c? 2026 U+20AC", "ω Ω"} {
			first := p.Parse(raw)
			second := p.Parse(raw)
			assert.True(t, first.Equal(second), "mode %v raw %q", mode, raw)
		}
	}

	required := mustParser(t, core.MatchAll).Parse("arrow")
	optional := mustParser(t, core.MatchAny).Parse("arrow")
	assert.False(t, required.Equal(optional))
}
