package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

const (
	documentsDirMode  = 0o700
	documentsFileMode = 0o600
	tempFilePrefix    = ".tmp-"
)

// documentFileStorage is the default implementation of
// [DocumentFileStorage]. It keeps one file per document directly inside
// dir; the file content is the raw ciphertext, nothing else.
type documentFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewDocumentFileStorage constructs a [DocumentFileStorage] rooted at dir.
// The directory is not touched until [DocumentFileStorage.Init].
func NewDocumentFileStorage(dir string, logger *logger.Logger) DocumentFileStorage {
	return &documentFileStorage{dir: dir, logger: logger}
}

// Init implements [DocumentFileStorage]. Safe to call repeatedly.
func (s *documentFileStorage) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, documentsDirMode); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentFileStorage.Init").
			Str("dir", s.dir).
			Msg("failed to create documents directory")
		return fmt.Errorf("create documents dir: %w", err)
	}
	return nil
}

// Write implements [DocumentFileStorage]. Data goes to a hidden temporary
// file that is synced and renamed over the target, so readers never see a
// partially written document.
func (s *documentFileStorage) Write(ctx context.Context, name string, data []byte) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	// The temp name does not embed the document name, so any name that
	// fits the file system also fits its temp file.
	tmpPath := filepath.Join(s.dir, tempFilePrefix+uuid.NewString())
	if err := writeSynced(tmpPath, data); err != nil {
		_ = os.Remove(tmpPath)
		log.Err(err).
			Str("func", "documentFileStorage.Write").
			Str("name", name).
			Msg("failed to write temporary document file")
		return fmt.Errorf("write document %q: %w", name, err)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		_ = os.Remove(tmpPath)
		log.Err(err).
			Str("func", "documentFileStorage.Write").
			Str("name", name).
			Msg("failed to move document file into place")
		return fmt.Errorf("write document %q: %w", name, err)
	}

	return nil
}

// Read implements [DocumentFileStorage].
func (s *documentFileStorage) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentFileStorage.Read").
			Str("name", name).
			Msg("failed to read document file")
		return nil, fmt.Errorf("read document %q: %w", name, err)
	}

	return data, nil
}

// Delete implements [DocumentFileStorage].
func (s *documentFileStorage) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentFileStorage.Delete").
			Str("name", name).
			Msg("failed to delete document file")
		return fmt.Errorf("delete document %q: %w", name, err)
	}

	return nil
}

// List implements [DocumentFileStorage]. Hidden entries (including
// in-flight temporary files) and sub-directories are skipped.
func (s *documentFileStorage) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentFileStorage.List").
			Str("dir", s.dir).
			Msg("failed to read documents directory")
		return nil, fmt.Errorf("list documents: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (s *documentFileStorage) path(name string) string {
	return filepath.Join(s.dir, name)
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, documentsFileMode)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
