package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sep39 "github.com/Shaptic/sep-39"
)

func TestWriteRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "asset.json")

	payload := []byte("bundled payload")
	enc, err := sep39.Encode(ctx, sep39.EncodeRequest{Data: payload, Namespace: "asset"})
	require.NoError(t, err)

	require.NoError(t, Write(ctx, path, enc.Manifest, enc.Records))

	b, err := Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, enc.Manifest, b.Manifest)
	assert.Equal(t, enc.Records, b.Records)

	dec, err := sep39.Decode(ctx, sep39.DecodeRequest{Records: b.Records, Manifest: b.Manifest})
	require.NoError(t, err)
	assert.Equal(t, payload, dec.Data)
}

func TestReadErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := Read(ctx, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0o644))
	_, err = Read(ctx, broken)
	assert.Error(t, err)
}
