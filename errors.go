package sep39

import (
	"github.com/Shaptic/sep-39/pkg/errors"
)

var (
	// ErrPayloadTooLarge reports a payload over MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrKeyBudgetExceeded reports a namespace that leaves no room for
	// the sequence index within the key length limit, or a payload that
	// needs more records than the index space can address.
	ErrKeyBudgetExceeded = errors.New("key budget exceeded")

	// ErrIncompleteData reports fewer (or more) valid records than the
	// manifest promises.
	ErrIncompleteData = errors.New("incomplete record set")

	// ErrDuplicateIndex reports two records at the same sequence index
	// with differing content.
	ErrDuplicateIndex = errors.New("conflicting records at duplicate index")

	// ErrChecksumMismatch reports a reassembled payload whose checksum
	// or size disagrees with the manifest.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
