package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

func newTestFileStorage(t *testing.T) (DocumentFileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "documents")
	s := NewDocumentFileStorage(dir, logger.Nop())
	require.NoError(t, s.Init(testContext()))
	return s, dir
}

func TestDocumentFileStorage_InitIsIdempotent(t *testing.T) {
	s, dir := newTestFileStorage(t)
	require.NoError(t, s.Init(testContext()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestDocumentFileStorage_WriteReadDelete(t *testing.T) {
	ctx := testContext()
	s, dir := newTestFileStorage(t)

	_, err := s.Read(ctx, "passport.png")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, s.Write(ctx, "passport.png", []byte("cipher-1")))
	require.NoError(t, s.Write(ctx, "passport.png", []byte("cipher-2")))

	got, err := s.Read(ctx, "passport.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher-2"), got)

	info, err := os.Stat(filepath.Join(dir, "passport.png"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Delete(ctx, "passport.png"))
	require.NoError(t, s.Delete(ctx, "passport.png"))

	_, err = s.Read(ctx, "passport.png")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDocumentFileStorage_ListSkipsHiddenAndDirs(t *testing.T) {
	ctx := testContext()
	s, dir := newTestFileStorage(t)

	require.NoError(t, s.Write(ctx, "b.pdf", []byte("x")))
	require.NoError(t, s.Write(ctx, "a.pdf", []byte("x")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".a.pdf.123.tmp"), []byte("partial"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, names)
}

func TestDocumentFileStorage_ListMissingDir(t *testing.T) {
	s := NewDocumentFileStorage(filepath.Join(t.TempDir(), "absent"), logger.Nop())

	_, err := s.List(testContext())
	assert.Error(t, err)
}

func TestDocumentFileStorage_RejectsInvalidNames(t *testing.T) {
	ctx := testContext()
	s, _ := newTestFileStorage(t)

	for _, name := range []string{"", "..", "../escape", ".hidden", "a/b"} {
		assert.ErrorIs(t, s.Write(ctx, name, []byte("x")), ErrInvalidName, name)
		_, err := s.Read(ctx, name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.ErrorIs(t, s.Delete(ctx, name), ErrInvalidName, name)
	}
}

func TestDocumentFileStorage_ConcurrentWritesLeaveOneVersion(t *testing.T) {
	ctx := testContext()
	s, dir := newTestFileStorage(t)

	payloads := [][]byte{[]byte("first-version"), []byte("second-version-longer")}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(p []byte) {
			defer wg.Done()
			assert.NoError(t, s.Write(ctx, "doc", p))
		}(payloads[i%2])
	}
	wg.Wait()

	got, err := s.Read(ctx, "doc")
	require.NoError(t, err)
	assert.Contains(t, payloads, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestDocumentFileStorage_LongNameFitsTempFile(t *testing.T) {
	ctx := testContext()
	s, dir := newTestFileStorage(t)

	name := strings.Repeat("a", 240)
	require.NoError(t, s.Write(ctx, name, []byte("cipher")))

	got, err := s.Read(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher"), got)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
