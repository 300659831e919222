// Package storage defines the narrow interfaces through which encoded
// assets reach their durable home. The ledger-submission layer lives
// behind the same surface; this repo ships local implementations only.
package storage

import (
	"context"
	"time"

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/errors"
)

// ErrAssetNotFound is returned when no asset exists under the given ID.
var ErrAssetNotFound = errors.New("asset not found")

// Asset describes one archived record set.
type Asset struct {
	ID        string
	Manifest  sep39.Manifest
	CreatedAt time.Time
}

// RecordStore persists record sets and their manifests. Implementations
// make no ordering promise for loaded records; reassembly orders them.
type RecordStore interface {
	SaveAsset(ctx context.Context, id string, manifest sep39.Manifest, records []sep39.Record) error
	LoadAsset(ctx context.Context, id string) (sep39.Manifest, []sep39.Record, error)
	ListAssets(ctx context.Context) ([]Asset, error)
	DeleteAsset(ctx context.Context, id string) error
	Close() error
}
