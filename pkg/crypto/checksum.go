package crypto

import (
	"hash/crc32"

	"github.com/cosmos/btcutil/base58"
	"lukechampine.com/blake3"
)

// contentIDBytes is how much of the BLAKE3 digest survives into a content
// ID. 20 bytes keeps IDs short enough to embed in a record key while
// leaving no realistic collision chance.
const contentIDBytes = 20

// Checksum returns the CRC-32 (IEEE polynomial) of data. This matches
// zlib's crc32, so checksums interoperate with non-Go encoders.
func Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ContentID returns a short, deterministic identifier for data: the
// base58 encoding of a truncated BLAKE3 digest. Two distinct payloads
// stored under one ledger account get distinct IDs.
func ContentID(data []byte) string {
	sum := blake3.Sum256(data)
	return base58.Encode(sum[:contentIDBytes])
}
