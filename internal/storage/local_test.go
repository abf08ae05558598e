package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/storage"
)

func newLocal(t *testing.T) storage.Storage {
	t.Helper()

	store, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
		BaseURL:  "http://files.test",
	})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)

	err := store.Save(ctx, "startups/abc/pitchdeck.pdf", strings.NewReader("deck bytes"), "application/pdf")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "startups/abc/pitchdeck.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := store.GetSize(ctx, "startups/abc/pitchdeck.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("deck bytes")), size)

	reader, err := store.Get(ctx, "startups/abc/pitchdeck.pdf")
	require.NoError(t, err)
	defer reader.Close()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "deck bytes", string(content))

	url, err := store.GetURL(ctx, "startups/abc/pitchdeck.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://files.test/startups/abc/pitchdeck.pdf", url)
}

func TestLocalStorage_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)

	require.NoError(t, store.Save(ctx, "a/b.txt", strings.NewReader("x"), "text/plain"))
	require.NoError(t, store.Delete(ctx, "a/b.txt"))
	require.NoError(t, store.Delete(ctx, "a/b.txt"))

	exists, err := store.Exists(ctx, "a/b.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := storage.NewStorage(storage.Config{Type: "ftp"})
	assert.Error(t, err)
}
