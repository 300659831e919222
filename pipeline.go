package sep39

import (
	"context"
	"time"

	"github.com/Shaptic/sep-39/pkg/codec"
	"github.com/Shaptic/sep-39/pkg/crypto"
	"github.com/Shaptic/sep-39/pkg/errors"
	"github.com/Shaptic/sep-39/pkg/logtrace"
)

const logPrefix = logtrace.ValuePipeline

// EncodeRequest represents the request to encode a payload into records.
type EncodeRequest struct {
	Data      []byte
	Namespace string

	// Zero means the ledger defaults (64/64).
	MaxKeyLen   int
	MaxValueLen int
}

// EncodeResponse carries the durable artifacts (records and manifest)
// plus the run's statistics.
type EncodeResponse struct {
	Records  []Record
	Manifest Manifest
	Stats    Stats
}

// DecodeRequest represents the request to reconstruct a payload from
// retrieved records.
type DecodeRequest struct {
	Records  []Record
	Manifest Manifest
}

// DecodeResponse carries the verified payload and the run's statistics.
type DecodeResponse struct {
	Data  []byte
	Stats Stats
}

// Stats describes one encode or decode run. The caller prints them; the
// pipeline only computes them.
type Stats struct {
	OriginalSize     int64         `json:"original_size"`
	EncodedSize      int64         `json:"encoded_size"`
	TotalRecordBytes int64         `json:"total_record_bytes"`
	Records          int           `json:"records"`
	Checksum         uint32        `json:"checksum"`
	Ratio            float64       `json:"ratio"`
	Elapsed          time.Duration `json:"elapsed"`
}

// Encode turns a payload into an ordered record sequence plus the
// manifest a decoder needs to validate reassembly. It performs no I/O.
func Encode(ctx context.Context, req EncodeRequest) (EncodeResponse, error) {
	start := time.Now()

	if len(req.Data) > MaxPayloadSize {
		return EncodeResponse{}, errors.Errorf("%d bytes, limit is %d: %w",
			len(req.Data), MaxPayloadSize, ErrPayloadTooLarge)
	}

	encoded := codec.Encode(req.Data)
	records, err := Chunk(encoded, ChunkOptions{
		Namespace:   req.Namespace,
		MaxKeyLen:   req.MaxKeyLen,
		MaxValueLen: req.MaxValueLen,
	})
	if err != nil {
		return EncodeResponse{}, err
	}

	manifest := Manifest{
		Version:   ManifestVersion,
		Namespace: req.Namespace,
		Encoding:  EncodingID,
		Size:      int64(len(req.Data)),
		Checksum:  crypto.Checksum(req.Data),
		Records:   len(records),
	}

	stats := Stats{
		OriginalSize:     int64(len(req.Data)),
		EncodedSize:      int64(len(encoded)),
		TotalRecordBytes: totalRecordBytes(records),
		Records:          len(records),
		Checksum:         manifest.Checksum,
		Ratio:            codec.Ratio(len(req.Data), len(encoded)),
		Elapsed:          time.Since(start),
	}

	logtrace.Debug(ctx, "payload encoded", logtrace.Fields{
		logtrace.FieldModule:    logPrefix,
		logtrace.FieldNamespace: req.Namespace,
		logtrace.FieldRecords:   stats.Records,
		logtrace.FieldSize:      stats.OriginalSize,
	})
	return EncodeResponse{Records: records, Manifest: manifest, Stats: stats}, nil
}

// Decode reconstructs and verifies the payload described by the manifest.
// It either returns the exact original bytes or an error; no partial
// output is ever produced.
func Decode(ctx context.Context, req DecodeRequest) (DecodeResponse, error) {
	start := time.Now()

	if req.Manifest.Encoding != EncodingID {
		return DecodeResponse{}, errors.Errorf("manifest encoding %q, this decoder speaks %q: %w",
			req.Manifest.Encoding, EncodingID, codec.ErrMalformedEncoding)
	}

	encoded, err := Reassemble(req.Records, req.Manifest)
	if err != nil {
		return DecodeResponse{}, err
	}

	data, err := codec.Decode(encoded)
	if err != nil {
		return DecodeResponse{}, err
	}

	if int64(len(data)) != req.Manifest.Size {
		return DecodeResponse{}, errors.Errorf("decoded %d bytes, manifest says %d: %w",
			len(data), req.Manifest.Size, ErrChecksumMismatch)
	}
	if sum := crypto.Checksum(data); sum != req.Manifest.Checksum {
		return DecodeResponse{}, errors.Errorf("computed %d, manifest says %d: %w",
			sum, req.Manifest.Checksum, ErrChecksumMismatch)
	}

	stats := Stats{
		OriginalSize:     int64(len(data)),
		EncodedSize:      int64(len(encoded)),
		TotalRecordBytes: totalRecordBytes(req.Records),
		Records:          req.Manifest.Records,
		Checksum:         req.Manifest.Checksum,
		Ratio:            codec.Ratio(len(data), len(encoded)),
		Elapsed:          time.Since(start),
	}

	logtrace.Debug(ctx, "payload decoded and verified", logtrace.Fields{
		logtrace.FieldModule:    logPrefix,
		logtrace.FieldNamespace: req.Manifest.Namespace,
		logtrace.FieldChecksum:  stats.Checksum,
		logtrace.FieldSize:      stats.OriginalSize,
	})
	return DecodeResponse{Data: data, Stats: stats}, nil
}

func totalRecordBytes(records []Record) (total int64) {
	for _, rec := range records {
		total += int64(len(rec.Key) + len(rec.Value))
	}
	return total
}
