package sep39

import (
	"strings"
)

const (
	// MaxKeyLen and MaxValueLen are the ledger's data-entry limits:
	// 64-character names and 64-byte values.
	MaxKeyLen   = 64
	MaxValueLen = 64

	// MaxPayloadSize caps a single asset. Larger payloads do not fit the
	// wire protocol and must be split upstream.
	MaxPayloadSize = 126000

	// IndexWidth is the fixed width of the base-36 sequence index that
	// terminates every record key.
	IndexWidth = 4

	// MaxRecords is the number of indices IndexWidth can address.
	MaxRecords = 36 * 36 * 36 * 36

	// EncodingID identifies the encoding family in manifests.
	EncodingID = "base91/1"

	// ManifestVersion is the current manifest schema version.
	ManifestVersion = 1
)

const indexAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Record is the atomic unit persisted externally: a bounded key/value
// pair holding one fragment of the encoded stream.
type Record struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Manifest carries the metadata needed to validate a decode. It travels
// out of band, alongside the records.
type Manifest struct {
	Version   int    `json:"version"`
	Namespace string `json:"namespace"`
	Encoding  string `json:"encoding"`
	Size      int64  `json:"size"`
	Checksum  uint32 `json:"checksum"`
	Records   int    `json:"records"`
}

// encodeIndex renders i as a zero-padded base-36 string of IndexWidth
// characters. i must be in [0, MaxRecords).
func encodeIndex(i int) string {
	var buf [IndexWidth]byte
	for pos := IndexWidth - 1; pos >= 0; pos-- {
		buf[pos] = indexAlphabet[i%36]
		i /= 36
	}
	return string(buf[:])
}

// decodeIndex parses a canonical index produced by encodeIndex. Uppercase
// letters, signs and other strconv leniencies are rejected: anything that
// is not the canonical form is not one of our keys.
func decodeIndex(s string) (int, bool) {
	if len(s) != IndexWidth {
		return 0, false
	}
	idx := 0
	for i := 0; i < len(s); i++ {
		digit := strings.IndexByte(indexAlphabet, s[i])
		if digit < 0 {
			return 0, false
		}
		idx = idx*36 + digit
	}
	return idx, true
}

// splitKey extracts the sequence index from key, given the namespace the
// key must carry. Keys from other namespaces, or with non-canonical
// indices, report ok=false.
func splitKey(key, namespace string) (idx int, ok bool) {
	if len(key) != len(namespace)+IndexWidth || !strings.HasPrefix(key, namespace) {
		return 0, false
	}
	return decodeIndex(key[len(namespace):])
}
