package sep39

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_encodeIndex(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0000"},
		{1, "0001"},
		{35, "000z"},
		{36, "0010"},
		{1295, "00zz"},
		{MaxRecords - 1, "zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeIndex(tt.in))

			idx, ok := decodeIndex(tt.want)
			assert.True(t, ok)
			assert.Equal(t, tt.in, idx)
		})
	}
}

func Test_decodeIndexRejectsNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"too short", "001"},
		{"too long", "00001"},
		{"uppercase", "00A1"},
		{"sign", "+001"},
		{"space", "0 01"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decodeIndex(tt.in)
			assert.False(t, ok)
		})
	}
}

func Test_splitKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		namespace string
		wantIdx   int
		wantOK    bool
	}{
		{"first record", "asset0000", "asset", 0, true},
		{"later record", "asset00zz", "asset", 1295, true},
		{"empty namespace", "0007", "", 7, true},
		{"foreign namespace", "other0000", "asset", 0, false},
		{"namespace only", "asset", "asset", 0, false},
		{"index too long", "asset00000", "asset", 0, false},
		{"bad index", "asset00!0", "asset", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := splitKey(tt.key, tt.namespace)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}
