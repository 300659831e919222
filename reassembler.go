package sep39

import (
	"strings"

	"github.com/Shaptic/sep-39/pkg/errors"
)

// Reassemble reconstructs the encoded stream from records retrieved in
// arbitrary order. Records whose keys carry a different namespace or a
// non-canonical index are ignored; the external store is free to hold
// unrelated entries. Identical duplicates are tolerated, conflicting ones
// are not.
func Reassemble(records []Record, manifest Manifest) (string, error) {
	fragments := make(map[int]string, manifest.Records)
	for _, rec := range records {
		idx, ok := splitKey(rec.Key, manifest.Namespace)
		if !ok {
			continue
		}
		if prev, seen := fragments[idx]; seen {
			if prev != rec.Value {
				return "", errors.Errorf("index %d appears with differing content: %w",
					idx, ErrDuplicateIndex)
			}
			continue
		}
		fragments[idx] = rec.Value
	}

	if len(fragments) != manifest.Records {
		return "", errors.Errorf("expected %d records, found %d valid: %w",
			manifest.Records, len(fragments), ErrIncompleteData)
	}

	var sb strings.Builder
	for i := 0; i < manifest.Records; i++ {
		fragment, ok := fragments[i]
		if !ok {
			// The count matched but an index is missing, so a stray
			// index past the end must have filled the gap.
			return "", errors.Errorf("record index %d missing: %w", i, ErrIncompleteData)
		}
		sb.WriteString(fragment)
	}
	return sb.String(), nil
}
