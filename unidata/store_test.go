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
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/poiesic/charfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "41\tLATIN CAPITAL LETTER A\tA\vCAPITAL\vLATIN\vLETTER\n" +
	"7EA\tNKO LETTER JONA RA\tJONA\vLETTER\vNKO\vRA\n" +
	"ZZZZ\tBROKEN CODE POINT\tBroken\vpoint\n" +
	"2026\tHORIZONTAL ELLIPSIS\tELLIPSIS\vHORIZONTAL\n"

func gzipped(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, core.CodePoint(0x41), records[0].CodePoint)
	assert.Equal(t, "LATIN CAPITAL LETTER A", records[0].Description)
	assert.True(t, records[0].HasKeyword("CAPITAL"))
	assert.Len(t, records[0].Keywords, 4)

	t.Run("preserves table order", func(t *testing.T) {
		assert.Equal(t, core.CodePoint(0x7EA), records[1].CodePoint)
		assert.Equal(t, core.CodePoint(0x2026), records[3].CodePoint)
	})

	t.Run("bad code point is tolerated", func(t *testing.T) {
		broken := records[2]
		assert.Equal(t, core.NoCodePoint, broken.CodePoint)
		assert.Equal(t, "BROKEN CODE POINT", broken.Description)
	})

	t.Run("keywords are upper cased", func(t *testing.T) {
		assert.True(t, records[2].HasKeyword("BROKEN"))
		assert.True(t, records[2].HasKeyword("POINT"))
		assert.False(t, records[2].HasKeyword("Broken"))
	})
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "empty table",
			input:   "",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "blank lines only",
			input:   "\n\n",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "missing keyword column",
			input:   "41\tLATIN CAPITAL LETTER A\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "extra column",
			input:   "41\tA\tA\textra\n",
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "invalid utf-8",
			input:   "41\tA\t\xff\n",
			wantErr: ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, records)
		})
	}
}

func TestParse_ReportsLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("41\tA\tA\n42\tB\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDecode(t *testing.T) {
	t.Run("valid gzip", func(t *testing.T) {
		records, err := Decode(gzipped(t, fixture))
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("not gzip", func(t *testing.T) {
		_, err := Decode([]byte(fixture))
		assert.ErrorIs(t, err, ErrDecompress)
	})

	t.Run("truncated gzip", func(t *testing.T) {
		data := gzipped(t, strings.Repeat(fixture, 50))
		_, err := Decode(data[:len(data)/2])
		assert.ErrorIs(t, err, ErrDecompress)
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		store := NewStore(WithData(gzipped(t, fixture)))
		first, err := store.Load()
		require.NoError(t, err)
		second, err := store.Load()
		require.NoError(t, err)
		require.Len(t, second, len(first))
		assert.Same(t, first[0], second[0])
	})

	t.Run("error is cached", func(t *testing.T) {
		store := NewStore(WithData([]byte("garbage")), WithLogger(nil))
		records, err := store.Load()
		assert.ErrorIs(t, err, ErrDecompress)
		assert.Nil(t, records)

		records, err = store.Load()
		assert.ErrorIs(t, err, ErrDecompress)
		assert.Nil(t, records)
	})

	t.Run("concurrent first load", func(t *testing.T) {
		store := NewStore(WithData(gzipped(t, fixture)))
		var wg sync.WaitGroup
		results := make([][]*core.Record, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = store.Load()
			}(i)
		}
		wg.Wait()
		for _, records := range results {
			require.Len(t, records, 4)
			assert.Same(t, results[0][0], records[0])
		}
	})
}

func TestEmbeddedTable(t *testing.T) {
	records, err := Default().Load()
	require.NoError(t, err)
	assert.Greater(t, len(records), 20000)

	euro := Lookup(records, 0x20AC)
	require.NotNil(t, euro)
	assert.Equal(t, "EURO SIGN", euro.Description)
	assert.True(t, euro.HasKeyword("EURO"))

	arrow := Lookup(records, 0x2190)
	require.NotNil(t, arrow)
	assert.True(t, arrow.HasKeyword("LEFT"))
	assert.True(t, arrow.HasKeyword("ARROW"))

	for i := 1; i < len(records); i++ {
		require.Less(t, records[i-1].CodePoint, records[i].CodePoint)
	}
	assert.Nil(t, Lookup(records, 0x20))
}
