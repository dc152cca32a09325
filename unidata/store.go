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

package unidata

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"github.com/poiesic/charfind/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed chardata.txt.gz
var chardata []byte

const (
	columnSeparator  = "\t"
	keywordSeparator = "\v"
	columnCount      = 3
)

// Store decodes the character table once and caches the result,
// including a decode error, for every later call.
type Store struct {
	data   []byte
	logger *slog.Logger

	once    sync.Once
	records []*core.Record
	err     error
}

// Option configures a Store.
type Option func(*Store)

// WithData replaces the embedded table with gzip-compressed data.
func WithData(data []byte) Option {
	return func(s *Store) {
		s.data = data
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates a store over the embedded table. Nothing is decoded
// until Load is called.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data:   chardata,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultStore = NewStore()

// Default returns the process-wide store over the embedded table.
func Default() *Store {
	return defaultStore
}

// Load returns the table's records in table order. It is safe for
// concurrent use; only the first call decodes. A decode error is fatal:
// no partial table is ever returned.
func (s *Store) Load() ([]*core.Record, error) {
	s.once.Do(func() {
		start := time.Now()
		s.records, s.err = decode(s.data, s.logger)
		if s.err != nil {
			s.records = nil
			s.logger.Error("failed to load character table", "err", s.err)
			return
		}
		s.logger.Debug("loaded character table",
			"records", len(s.records),
			"elapsed", time.Since(start))
	})
	return s.records, s.err
}

// Decode gunzips and parses a complete table.
func Decode(data []byte) ([]*core.Record, error) {
	return decode(data, slog.Default())
}

// Parse parses an uncompressed table.
func Parse(r io.Reader) ([]*core.Record, error) {
	return parse(r, slog.Default())
}

// Lookup returns the record for cp, or nil.
func Lookup(records []*core.Record, cp core.CodePoint) *core.Record {
	i := slices.IndexFunc(records, func(r *core.Record) bool {
		return r.CodePoint == cp
	})
	if i < 0 {
		return nil
	}
	return records[i]
}

func decode(data []byte, logger *slog.Logger) ([]*core.Record, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer zr.Close()
	return parse(zr, logger)
}

func parse(r io.Reader, logger *slog.Logger) ([]*core.Record, error) {
	caser := cases.Upper(language.Und)
	records := make([]*core.Record, 0, 32768)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, lineNo)
		}
		fields := strings.Split(line, columnSeparator)
		if len(fields) != columnCount {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d",
				ErrMalformedRecord, lineNo, len(fields), columnCount)
		}

		cp := core.NoCodePoint
		if n, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 16, 32); err == nil {
			cp = core.CodePoint(n)
		} else {
			logger.Debug("unparsable code point, record kept without one",
				"line", lineNo, "field", fields[0])
		}

		keywords := strings.Split(fields[2], keywordSeparator)
		for i, kw := range keywords {
			keywords[i] = caser.String(strings.TrimSpace(kw))
		}
		records = append(records, core.NewRecord(cp, fields[1], keywords...))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	return records, nil
}
