package sep39

import (
	"github.com/Shaptic/sep-39/pkg/errors"
)

// ChunkOptions control how the encoded stream is split into records.
// Zero values fall back to the ledger's data-entry limits.
type ChunkOptions struct {
	// Namespace prefixes every record key, distinguishing this asset's
	// records from anything else stored under the same account.
	Namespace string

	MaxKeyLen   int
	MaxValueLen int
}

func (o ChunkOptions) withDefaults() ChunkOptions {
	if o.MaxKeyLen <= 0 {
		o.MaxKeyLen = MaxKeyLen
	}
	if o.MaxValueLen <= 0 {
		o.MaxValueLen = MaxValueLen
	}
	return o
}

// validate fails fast, before any record is emitted, when the namespace
// and index scheme cannot address `count` records within the key budget.
func (o ChunkOptions) validate(count int) error {
	if keyLen := len(o.Namespace) + IndexWidth; keyLen > o.MaxKeyLen {
		return errors.Errorf("namespace %q needs %d-character keys, limit is %d: %w",
			o.Namespace, keyLen, o.MaxKeyLen, ErrKeyBudgetExceeded)
	}
	if count > MaxRecords {
		return errors.Errorf("%d records needed, index space holds %d: %w",
			count, MaxRecords, ErrKeyBudgetExceeded)
	}
	return nil
}

// Chunk splits the encoded stream into consecutive, non-overlapping
// records of at most MaxValueLen characters; every record but the last is
// exactly MaxValueLen. An empty stream yields zero records.
func Chunk(encoded string, opts ChunkOptions) ([]Record, error) {
	opts = opts.withDefaults()

	count := (len(encoded) + opts.MaxValueLen - 1) / opts.MaxValueLen
	if err := opts.validate(count); err != nil {
		return nil, err
	}

	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		start := i * opts.MaxValueLen
		end := start + opts.MaxValueLen
		if end > len(encoded) {
			end = len(encoded)
		}
		records = append(records, Record{
			Key:   opts.Namespace + encodeIndex(i),
			Value: encoded[start:end],
		})
	}
	return records, nil
}
