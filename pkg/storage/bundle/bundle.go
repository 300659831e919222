// Package bundle reads and writes an asset as a single JSON document, the
// hand-off format for out-of-process submission tooling.
package bundle

import (
	"context"
	"os"

	json "github.com/json-iterator/go"

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/errors"
	"github.com/Shaptic/sep-39/pkg/logtrace"
)

const logPrefix = logtrace.ValueBundle

// Bundle pairs a manifest with its records.
type Bundle struct {
	Manifest sep39.Manifest `json:"manifest"`
	Records  []sep39.Record `json:"records"`
}

// Write stores the bundle at path, creating or truncating the file.
func Write(ctx context.Context, path string, manifest sep39.Manifest, records []sep39.Record) error {
	data, err := json.MarshalIndent(Bundle{Manifest: manifest, Records: records}, "", "  ")
	if err != nil {
		return errors.Errorf("marshal bundle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Errorf("write bundle %q: %w", path, err)
	}

	logtrace.Info(ctx, "bundle written", logtrace.Fields{
		logtrace.FieldModule:  logPrefix,
		logtrace.FieldPath:    path,
		logtrace.FieldRecords: len(records),
	})
	return nil
}

// Read loads a bundle from path.
func Read(ctx context.Context, path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, errors.Errorf("read bundle %q: %w", path, err)
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, errors.Errorf("unmarshal bundle %q: %w", path, err)
	}

	logtrace.Debug(ctx, "bundle read", logtrace.Fields{
		logtrace.FieldModule:  logPrefix,
		logtrace.FieldPath:    path,
		logtrace.FieldRecords: len(b.Records),
	})
	return b, nil
}
