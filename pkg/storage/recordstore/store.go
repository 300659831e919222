// Package recordstore is a SQLite-backed archive of encoded assets. It
// stands in for the ledger during local workflows and testing: records
// written here can later be handed to a submission layer unchanged.
package recordstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	json "github.com/json-iterator/go"
	_ "github.com/mattn/go-sqlite3" //go-sqlite3

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/errors"
	"github.com/Shaptic/sep-39/pkg/logtrace"
	"github.com/Shaptic/sep-39/pkg/storage"
)

const logPrefix = logtrace.ValueRecordStore

const schema = `
CREATE TABLE IF NOT EXISTS assets (
    id         TEXT PRIMARY KEY,
    manifest   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
    asset_id  TEXT NOT NULL,
    key       TEXT NOT NULL,
    value     TEXT NOT NULL,
    PRIMARY KEY (asset_id, key),
    FOREIGN KEY (asset_id) REFERENCES assets(id) ON DELETE CASCADE
);
`

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA busy_timeout=15000;",
	"PRAGMA foreign_keys=ON;",
}

// Store is a SQLite-backed RecordStore.
type Store struct {
	db *sqlx.DB
}

var _ storage.RecordStore = (*Store)(nil)

// NewStore opens (creating if needed) the archive database inside dataDir.
func NewStore(ctx context.Context, dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, errors.Errorf("mkdir %q: %w", dataDir, err)
	}

	dbFile := filepath.Join(dataDir, "archive.sqlite3")
	db, err := sqlx.Connect("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Errorf("cannot open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(3)
	db.SetMaxIdleConns(3)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.Errorf("cannot set sqlite database parameter: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Errorf("cannot create table(s) in sqlite database: %w", err)
	}

	logtrace.Debug(ctx, "record archive opened", logtrace.Fields{
		logtrace.FieldModule: logPrefix,
		logtrace.FieldPath:   dbFile,
	})
	return &Store{db: db}, nil
}

// SaveAsset stores the manifest and records atomically. Saving an ID that
// already exists overwrites it; encoding is deterministic, so identical
// payloads produce identical rows anyway.
func (s *Store) SaveAsset(ctx context.Context, id string, manifest sep39.Manifest, records []sep39.Record) error {
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return errors.Errorf("marshal manifest: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR REPLACE INTO assets(id, manifest, created_at) VALUES(?,?,?)",
		id, string(manifestJSON), time.Now().UTC()); err != nil {
		return errors.Errorf("insert asset %q: %w", id, err)
	}
	if _, err := tx.Exec("DELETE FROM records WHERE asset_id = ?", id); err != nil {
		return errors.Errorf("clear records for %q: %w", id, err)
	}
	for _, rec := range records {
		if _, err := tx.Exec("INSERT INTO records(asset_id, key, value) VALUES(?,?,?)",
			id, rec.Key, rec.Value); err != nil {
			return errors.Errorf("insert record %q: %w", rec.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Errorf("commit asset %q: %w", id, err)
	}

	logtrace.Info(ctx, "asset archived", logtrace.Fields{
		logtrace.FieldModule:  logPrefix,
		logtrace.FieldAssetID: id,
		logtrace.FieldRecords: len(records),
	})
	return nil
}

// LoadAsset returns the manifest and records for id. Record order is
// whatever SQLite hands back; callers must not rely on it.
func (s *Store) LoadAsset(ctx context.Context, id string) (sep39.Manifest, []sep39.Record, error) {
	var manifestJSON string
	err := s.db.GetContext(ctx, &manifestJSON, "SELECT manifest FROM assets WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return sep39.Manifest{}, nil, errors.Errorf("asset %q: %w", id, storage.ErrAssetNotFound)
	}
	if err != nil {
		return sep39.Manifest{}, nil, errors.Errorf("query asset %q: %w", id, err)
	}

	var manifest sep39.Manifest
	if err := json.Unmarshal([]byte(manifestJSON), &manifest); err != nil {
		return sep39.Manifest{}, nil, errors.Errorf("unmarshal manifest for %q: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM records WHERE asset_id = ?", id)
	if err != nil {
		return sep39.Manifest{}, nil, errors.Errorf("query records for %q: %w", id, err)
	}
	defer rows.Close()

	var records []sep39.Record
	for rows.Next() {
		var rec sep39.Record
		if err := rows.Scan(&rec.Key, &rec.Value); err != nil {
			return sep39.Manifest{}, nil, errors.Errorf("scan record for %q: %w", id, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return sep39.Manifest{}, nil, errors.Errorf("iterate records for %q: %w", id, err)
	}

	return manifest, records, nil
}

// ListAssets returns every archived asset, newest first.
func (s *Store) ListAssets(ctx context.Context) ([]storage.Asset, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, manifest, created_at FROM assets ORDER BY created_at DESC")
	if err != nil {
		return nil, errors.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var assets []storage.Asset
	for rows.Next() {
		var (
			asset        storage.Asset
			manifestJSON string
		)
		if err := rows.Scan(&asset.ID, &manifestJSON, &asset.CreatedAt); err != nil {
			return nil, errors.Errorf("scan asset: %w", err)
		}
		if err := json.Unmarshal([]byte(manifestJSON), &asset.Manifest); err != nil {
			return nil, errors.Errorf("unmarshal manifest for %q: %w", asset.ID, err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

// DeleteAsset removes an asset and its records.
func (s *Store) DeleteAsset(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		return errors.Errorf("delete asset %q: %w", id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return errors.Errorf("asset %q: %w", id, storage.ErrAssetNotFound)
	}

	logtrace.Info(ctx, "asset deleted", logtrace.Fields{
		logtrace.FieldModule:  logPrefix,
		logtrace.FieldAssetID: id,
	})
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
