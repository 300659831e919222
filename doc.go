// Package sep39 encodes arbitrary binary payloads into bounded key/value
// records suitable for a ledger's data-entry operation (64-character keys,
// 64-byte values, as with Stellar's ManageData), and decodes such records
// back into the original payload with integrity verification.
//
// Wire conventions, fixed so independent implementations interoperate:
//
//   - The payload is mapped to printable ASCII with basE91 (see pkg/codec;
//     the alphabet is pinned there).
//   - The encoded stream is split into consecutive fragments of at most 64
//     characters; every fragment but the last is exactly 64.
//   - Each fragment becomes the Value of one record. Its Key is the record
//     namespace followed by a 4-character zero-padded base-36 sequence
//     index (digits then lowercase letters), so keys sort lexicographically
//     in fragment order and retrieval order never matters.
//   - The manifest (original size, CRC-32 IEEE checksum, record count,
//     encoding identifier, namespace) travels out of band.
//
// Decode is all-or-nothing: it returns the fully verified payload or an
// error that distinguishes truncation, corruption and scheme mismatch.
package sep39
