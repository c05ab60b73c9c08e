package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.Save(ctx, "bulletin mars.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Contains(t, key, "bulletin_mars.pdf")

	data, err := store.Open(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, store.Delete(ctx, key))
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", "a/b", ".hidden"} {
		_, err := store.Open(context.Background(), key)
		assert.ErrorIs(t, err, ErrBlobNotFound, key)
	}
}

func TestSafeName(t *testing.T) {
	tests := map[string]string{
		"fiche.png":           "fiche.png",
		"../../secret.pdf":    "secret.pdf",
		`C:\Users\x\paie.pdf`: "paie.pdf",
		"...":                 "document",
		"mon bulletin.jpg":    "mon_bulletin.jpg",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeName(in), in)
	}
}
