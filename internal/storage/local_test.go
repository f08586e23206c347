package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	require.NoError(t, s.Save(ctx, "resumes/u1/cv.pdf", strings.NewReader("pdf-bytes"), "application/pdf"))

	exists, err := s.Exists(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len("pdf-bytes")), size)

	rc, err := s.Get(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(body))

	require.NoError(t, s.Delete(ctx, "resumes/u1/cv.pdf"))
	exists, err = s.Exists(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	s := newLocal(t)
	assert.NoError(t, s.Delete(context.Background(), "never/existed.pdf"))
}

func TestLocalStorageTraversalStaysInBase(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	// A path trying to climb out of the base is flattened, never written
	// outside the storage root.
	require.NoError(t, s.Save(ctx, "../../escape.txt", strings.NewReader("x"), "text/plain"))

	outside := filepath.Join(s.basePath, "..", "escape.txt")
	_, err := os.Stat(outside)
	assert.True(t, os.IsNotExist(err))

	inside, err := s.Exists(ctx, "escape.txt")
	require.NoError(t, err)
	assert.True(t, inside)
}

func TestLocalStorageGetURL(t *testing.T) {
	ctx := context.Background()

	s := newLocal(t)
	url, err := s.GetURL(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/u1/cv.pdf", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/resumes/u1/cv.pdf", url)
}
