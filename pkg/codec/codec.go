// Package codec maps arbitrary bytes to a printable-ASCII form and back.
//
// The encoding is basE91 with the standard alphabet below. Ledger metadata
// fields mistreat non-printable bytes, so raw binary is mapped into this
// alphabet before it is split into records. basE91 expands data by roughly
// 23% worst case, well below the 33% of base64.
package codec

import (
	"strings"

	"github.com/mtraver/base91"

	"github.com/Shaptic/sep-39/pkg/errors"
)

// Alphabet is the standard basE91 symbol set: every printable ASCII
// character except space, apostrophe, hyphen and backslash. It is pinned
// here, rather than taken from the library default, so that the wire
// format cannot drift between library versions.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!#$%&()*+,./:;<=>?@[]^_`{|}~\""

// ErrMalformedEncoding reports text that is not valid output of Encode:
// a symbol outside the alphabet or a truncated trailing group.
var ErrMalformedEncoding = errors.New("malformed encoding")

var encoding = base91.NewEncoding(Alphabet)

// Encode maps data to its printable-ASCII representation. It is
// deterministic and lossless; Decode is its exact inverse.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// Decode maps text produced by Encode back to the original bytes. Text
// containing symbols outside Alphabet fails with ErrMalformedEncoding.
func Decode(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(Alphabet, text[i]) < 0 {
			return nil, errors.Errorf("symbol %q at offset %d: %w", text[i], i, ErrMalformedEncoding)
		}
	}

	data, err := encoding.DecodeString(text)
	if err != nil {
		return nil, errors.Errorf("%s: %w", err.Error(), ErrMalformedEncoding)
	}
	return data, nil
}

// Ratio reports the expansion ratio encodedLen/originalLen. A zero-length
// original reports 0.
func Ratio(originalLen, encodedLen int) float64 {
	if originalLen == 0 {
		return 0
	}
	return float64(encodedLen) / float64(originalLen)
}
