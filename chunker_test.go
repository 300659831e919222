package sep39

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name        string
		encoded     string
		opts        ChunkOptions
		wantRecords int
	}{
		{"empty input", "", ChunkOptions{Namespace: "ns"}, 0},
		{"shorter than one value", "abc", ChunkOptions{Namespace: "ns"}, 1},
		{"exactly one value", strings.Repeat("x", 64), ChunkOptions{Namespace: "ns"}, 1},
		{"one value plus one char", strings.Repeat("x", 65), ChunkOptions{Namespace: "ns"}, 2},
		{"custom value length", strings.Repeat("x", 100), ChunkOptions{Namespace: "ns", MaxValueLen: 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Chunk(tt.encoded, tt.opts)
			require.NoError(t, err)
			require.Len(t, records, tt.wantRecords)

			opts := tt.opts.withDefaults()
			var joined strings.Builder
			for i, rec := range records {
				assert.Equal(t, tt.opts.Namespace+encodeIndex(i), rec.Key)
				assert.LessOrEqual(t, len(rec.Key), opts.MaxKeyLen)
				assert.LessOrEqual(t, len(rec.Value), opts.MaxValueLen)
				if i < len(records)-1 {
					assert.Len(t, rec.Value, opts.MaxValueLen,
						"every record but the last must be full")
				}
				joined.WriteString(rec.Value)
			}
			assert.Equal(t, tt.encoded, joined.String(),
				"concatenating values in order must reproduce the stream")
		})
	}
}

func TestChunkKeyBudget(t *testing.T) {
	// 60 characters of namespace + 4 of index fit exactly.
	fits := strings.Repeat("n", MaxKeyLen-IndexWidth)
	records, err := Chunk("data", ChunkOptions{Namespace: fits})
	assert.NoError(t, err)
	assert.Len(t, records[0].Key, MaxKeyLen)

	// One more character and the chunker must fail before emitting
	// anything.
	_, err = Chunk("data", ChunkOptions{Namespace: fits + "n"})
	assert.ErrorIs(t, err, ErrKeyBudgetExceeded)

	// A stream needing more records than the index space can address
	// fails the same way.
	huge := strings.Repeat("x", 2*MaxRecords)
	_, err = Chunk(huge, ChunkOptions{Namespace: "ns", MaxValueLen: 1})
	assert.ErrorIs(t, err, ErrKeyBudgetExceeded)
}

func TestChunkDeterministic(t *testing.T) {
	encoded := strings.Repeat("abcdef", 50)
	opts := ChunkOptions{Namespace: "asset", MaxValueLen: 17}

	first, err := Chunk(encoded, opts)
	require.NoError(t, err)
	second, err := Chunk(encoded, opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
