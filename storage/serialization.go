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

package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/charfind/core"
)

// HistoryFormatVersion is written ahead of every encoded history.
const HistoryFormatVersion = 1

// HistoryMUS encodes core.History values.
var HistoryMUS = historyMUS{}

type historyMUS struct{}

// Marshal writes v to bs, which must be at least Size(v) long.
func (s historyMUS) Marshal(v core.History, bs []byte) (n int) {
	n = varint.Int.Marshal(HistoryFormatVersion, bs)
	n += varint.Int.Marshal(v.SearchesSize, bs[n:])
	n += varint.Int.Marshal(v.CharsSize, bs[n:])
	n += varint.Int.Marshal(int(v.MatchMode), bs[n:])
	n += varint.Int64.Marshal(unixMicro(v.UpdatedAt), bs[n:])
	n += varint.Int.Marshal(len(v.Searches), bs[n:])
	for _, search := range v.Searches {
		n += ord.String.Marshal(search, bs[n:])
	}
	n += varint.Int.Marshal(len(v.Chars), bs[n:])
	for _, c := range v.Chars {
		n += varint.Int32.Marshal(c, bs[n:])
	}
	return
}

// Unmarshal reads a history from bs.
func (s historyMUS) Unmarshal(bs []byte) (v core.History, n int, err error) {
	version, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if version != HistoryFormatVersion {
		err = fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
		return
	}
	var (
		n1   int
		mode int
	)
	v.SearchesSize, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CharsSize, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	mode, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MatchMode = core.MatchMode(mode)
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt = fromUnixMicro(micros)

	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if err = checkCount(count, len(bs)-n); err != nil {
		return
	}
	if count > 0 {
		v.Searches = make([]string, count)
	}
	for i := range v.Searches {
		v.Searches[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}

	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if err = checkCount(count, len(bs)-n); err != nil {
		return
	}
	if count > 0 {
		v.Chars = make([]rune, count)
	}
	for i := range v.Chars {
		v.Chars[i], n1, err = varint.Int32.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// Size returns the encoded length of v.
func (s historyMUS) Size(v core.History) (size int) {
	size = varint.Int.Size(HistoryFormatVersion)
	size += varint.Int.Size(v.SearchesSize)
	size += varint.Int.Size(v.CharsSize)
	size += varint.Int.Size(int(v.MatchMode))
	size += varint.Int64.Size(unixMicro(v.UpdatedAt))
	size += varint.Int.Size(len(v.Searches))
	for _, search := range v.Searches {
		size += ord.String.Size(search)
	}
	size += varint.Int.Size(len(v.Chars))
	for _, c := range v.Chars {
		size += varint.Int32.Size(c)
	}
	return
}

// Every element takes at least one byte.
func checkCount(count, remaining int) error {
	if count < 0 || count > remaining {
		return fmt.Errorf("%w: %d elements in %d bytes", ErrTruncatedData, count, remaining)
	}
	return nil
}

// The zero time encodes as 0 so it survives a round trip.
func unixMicro(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func fromUnixMicro(micros int64) time.Time {
	if micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros).UTC()
}

// MarshalHistory serializes a History to bytes.
func MarshalHistory(history *core.History) []byte {
	buf := make([]byte, HistoryMUS.Size(*history))
	HistoryMUS.Marshal(*history, buf)
	return buf
}

// UnmarshalHistory deserializes a History from bytes.
func UnmarshalHistory(data []byte) (*core.History, error) {
	history, n, err := HistoryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return &history, nil
}
