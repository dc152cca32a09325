package storage

import (
	"testing"
	"time"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/charfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalHistory(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name    string
		history *core.History
	}{
		{
			name:    "defaults",
			history: core.NewHistory(),
		},
		{
			name: "populated",
			history: &core.History{
				Searches:     []string{"euro sign", "arrow left", "ω"},
				Chars:        []rune{'€', '←', 'A', 0x1F600},
				SearchesSize: 10,
				CharsSize:    5,
				MatchMode:    core.MatchAny,
				UpdatedAt:    now,
			},
		},
		{
			name: "empty search string",
			history: &core.History{
				Searches:     []string{""},
				SearchesSize: 2,
				CharsSize:    2,
				MatchMode:    core.MatchAll,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalHistory(tt.history)
			require.NotEmpty(t, data)
			assert.Len(t, data, HistoryMUS.Size(*tt.history))

			decoded, err := UnmarshalHistory(data)
			require.NoError(t, err)
			assert.Equal(t, tt.history, decoded)
		})
	}
}

func TestUnmarshalHistory_Truncated(t *testing.T) {
	data := MarshalHistory(&core.History{
		Searches:     []string{"euro", "arrow"},
		Chars:        []rune{'€', '←'},
		SearchesSize: 26,
		CharsSize:    26,
		MatchMode:    core.MatchAll,
		UpdatedAt:    time.Now(),
	})

	for i := 0; i < len(data); i++ {
		_, err := UnmarshalHistory(data[:i])
		assert.ErrorIs(t, err, ErrSerializationFailed, "prefix of %d bytes", i)
	}
}

func TestUnmarshalHistory_TrailingBytes(t *testing.T) {
	data := MarshalHistory(core.NewHistory())
	_, err := UnmarshalHistory(append(data, 0x00))
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestUnmarshalHistory_UnknownVersion(t *testing.T) {
	data := MarshalHistory(core.NewHistory())
	bs := make([]byte, varint.Int.Size(HistoryFormatVersion+1))
	varint.Int.Marshal(HistoryFormatVersion+1, bs)
	copy(data, bs)

	_, err := UnmarshalHistory(data)
	assert.ErrorIs(t, err, ErrSerializationFailed)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestUnmarshalHistory_ImpossibleCount(t *testing.T) {
	h := core.NewHistory()
	size := HistoryMUS.Size(*h)
	data := MarshalHistory(h)

	// Rewrite the trailing chars count (0) as a count larger than the data.
	countSize := varint.Int.Size(0)
	bs := make([]byte, varint.Int.Size(1000))
	varint.Int.Marshal(1000, bs)
	data = append(data[:size-countSize], bs...)

	_, err := UnmarshalHistory(data)
	assert.ErrorIs(t, err, ErrTruncatedData)
}
