package sep39

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunked(t *testing.T, encoded, namespace string) ([]Record, Manifest) {
	t.Helper()
	records, err := Chunk(encoded, ChunkOptions{Namespace: namespace})
	require.NoError(t, err)
	return records, Manifest{
		Version:   ManifestVersion,
		Namespace: namespace,
		Encoding:  EncodingID,
		Records:   len(records),
	}
}

func TestReassemble(t *testing.T) {
	encoded := strings.Repeat("0123456789", 20)
	records, manifest := chunked(t, encoded, "asset")

	out, err := Reassemble(records, manifest)
	require.NoError(t, err)
	assert.Equal(t, encoded, out)
}

func TestReassembleAnyOrder(t *testing.T) {
	encoded := strings.Repeat("payload fragments", 40)
	records, manifest := chunked(t, encoded, "asset")
	require.Greater(t, len(records), 2)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Record, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		out, err := Reassemble(shuffled, manifest)
		require.NoError(t, err)
		assert.Equal(t, encoded, out)
	}
}

func TestReassembleIgnoresForeignRecords(t *testing.T) {
	encoded := strings.Repeat("z", 150)
	records, manifest := chunked(t, encoded, "mine")

	// The store may return anything else living under the same account.
	noise := []Record{
		{Key: "other0000", Value: "unrelated"},
		{Key: "mine", Value: "no index at all"},
		{Key: "mine00ZZ", Value: "uppercase index is not ours"},
		{Key: "config", Value: "some app setting"},
	}
	out, err := Reassemble(append(noise, records...), manifest)
	require.NoError(t, err)
	assert.Equal(t, encoded, out)
}

func TestReassembleIncomplete(t *testing.T) {
	encoded := strings.Repeat("q", 300)
	records, manifest := chunked(t, encoded, "asset")
	require.Len(t, records, 5)

	// Dropping any single record must be detected.
	for drop := range records {
		subset := make([]Record, 0, len(records)-1)
		for i, rec := range records {
			if i != drop {
				subset = append(subset, rec)
			}
		}
		_, err := Reassemble(subset, manifest)
		assert.ErrorIs(t, err, ErrIncompleteData, "dropping record %d", drop)
	}

	// An extra same-namespace record past the end is also a count
	// mismatch, not silent garbage.
	extra := append([]Record{{Key: "asset" + encodeIndex(len(records)), Value: "x"}}, records...)
	_, err := Reassemble(extra, manifest)
	assert.ErrorIs(t, err, ErrIncompleteData)
}

func TestReassembleDuplicates(t *testing.T) {
	encoded := strings.Repeat("w", 200)
	records, manifest := chunked(t, encoded, "asset")

	// Identical duplicates are harmless: stores may return a record
	// twice.
	dup := append([]Record{records[1]}, records...)
	out, err := Reassemble(dup, manifest)
	require.NoError(t, err)
	assert.Equal(t, encoded, out)

	// Conflicting content at one index makes reassembly ambiguous.
	conflict := append([]Record{{Key: records[1].Key, Value: "different"}}, records...)
	_, err = Reassemble(conflict, manifest)
	assert.ErrorIs(t, err, ErrDuplicateIndex)
}

func TestReassembleEmpty(t *testing.T) {
	manifest := Manifest{Version: ManifestVersion, Namespace: "ns", Encoding: EncodingID}

	out, err := Reassemble(nil, manifest)
	require.NoError(t, err)
	assert.Empty(t, out)
}
