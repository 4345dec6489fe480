// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// NotePrefix namespaces note envelopes inside the key-value backend.
const NotePrefix = "note_"

type vaultService struct {
	storages *store.ClientStorages
	cipher   crypto.Cipher
	keys     KeySource
	logger   *logger.Logger
}

// NewVaultService returns a [VaultService] that encrypts with cipher under
// the key handed out by keys and persists into storages.
func NewVaultService(storages *store.ClientStorages, cipher crypto.Cipher, keys KeySource, logger *logger.Logger) VaultService {
	return &vaultService{
		storages: storages,
		cipher:   cipher,
		keys:     keys,
		logger:   logger,
	}
}

// begin checks the session and then waits for the backends. The returned
// key must be wiped by the caller.
func (s *vaultService) begin(ctx context.Context) ([]byte, error) {
	key, ok := s.keys.Current()
	if !ok {
		return nil, ErrNoActiveSession
	}

	if err := s.storages.Ready.Wait(ctx); err != nil {
		clear(key)
		return nil, fmt.Errorf("%w: storage is not ready: %w", ErrIOFailure, err)
	}

	return key, nil
}

func (s *vaultService) SaveDocument(ctx context.Context, name string, payload []byte, mediaType string) error {
	key, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer clear(key)

	if err = validateDocumentName(name); err != nil {
		return err
	}

	ciphertext, err := s.cipher.Encrypt(key, payload)
	if err != nil {
		return fmt.Errorf("encrypt document %q: %w", name, err)
	}

	record, err := json.Marshal(models.DocumentEnvelope{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		MediaType:  mediaType,
	})
	if err != nil {
		return fmt.Errorf("marshal document envelope: %w", err)
	}

	var (
		g              errgroup.Group
		kvErr, fileErr error
	)
	g.Go(func() error {
		kvErr = s.storages.KeyValue.Put(ctx, name, string(record))
		return kvErr
	})
	g.Go(func() error {
		fileErr = s.storages.Files.Write(ctx, name, ciphertext)
		return fileErr
	})

	if g.Wait() != nil {
		perr := &PersistError{Name: name, KeyValue: kvErr, File: fileErr}
		s.logger.Error().
			Str("func", "vaultService.SaveDocument").
			Str("name", name).
			Strs("failed_backends", perr.FailedBackends()).
			Msg("document was not persisted to every backend")
		return perr
	}

	return nil
}

func (s *vaultService) GetDocument(ctx context.Context, name string) (models.Document, error) {
	key, err := s.begin(ctx)
	if err != nil {
		return models.Document{}, err
	}
	defer clear(key)

	if err = validateDocumentName(name); err != nil {
		return models.Document{}, err
	}

	record, err := s.storages.KeyValue.Get(ctx, name)
	switch {
	case err == nil:
		return s.decodeEnvelope(key, name, record)
	case !errors.Is(err, store.ErrRecordNotFound):
		return models.Document{}, mapStoreError(err)
	}

	// The file backend keeps only the raw ciphertext.
	ciphertext, err := s.storages.Files.Read(ctx, name)
	if err != nil {
		return models.Document{}, mapStoreError(err)
	}

	s.logger.Warn().
		Str("func", "vaultService.GetDocument").
		Str("name", name).
		Msg("document recovered from file backend only")

	plaintext, err := s.cipher.Decrypt(key, ciphertext)
	if err != nil {
		return models.Document{}, mapCipherError(err)
	}

	return models.Document{Name: name, MediaType: models.DefaultMediaType, Payload: plaintext}, nil
}

func (s *vaultService) decodeEnvelope(key []byte, name, record string) (models.Document, error) {
	var envelope models.DocumentEnvelope
	if err := json.Unmarshal([]byte(record), &envelope); err != nil {
		return models.Document{}, fmt.Errorf("%w: document %q envelope: %w", ErrDecodeFailure, name, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: document %q ciphertext: %w", ErrDecodeFailure, name, err)
	}

	plaintext, err := s.cipher.Decrypt(key, ciphertext)
	if err != nil {
		return models.Document{}, mapCipherError(err)
	}

	return models.Document{Name: name, MediaType: envelope.MediaType, Payload: plaintext}, nil
}

func (s *vaultService) ListDocuments(ctx context.Context) ([]string, error) {
	entries, err := s.ListDocumentEntries(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

func (s *vaultService) ListDocumentEntries(ctx context.Context) ([]models.DocumentEntry, error) {
	key, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	clear(key)

	var (
		g                 errgroup.Group
		kvKeys, fileNames []string
	)
	g.Go(func() (err error) {
		kvKeys, err = s.storages.KeyValue.ListKeys(ctx)
		return err
	})
	g.Go(func() (err error) {
		fileNames, err = s.storages.Files.List(ctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, mapStoreError(err)
	}

	byName := make(map[string]*models.DocumentEntry)
	entry := func(name string) *models.DocumentEntry {
		e, ok := byName[name]
		if !ok {
			e = &models.DocumentEntry{Name: name}
			byName[name] = e
		}
		return e
	}

	for _, k := range kvKeys {
		if !isDocumentKey(k) {
			continue
		}
		entry(k).InKeyValue = true
	}
	for _, n := range fileNames {
		if !isDocumentKey(n) {
			continue
		}
		entry(n).InFileSystem = true
	}

	entries := make([]models.DocumentEntry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}

func (s *vaultService) DeleteDocument(ctx context.Context, name string) error {
	key, err := s.begin(ctx)
	if err != nil {
		return err
	}
	clear(key)

	if err = validateDocumentName(name); err != nil {
		return err
	}

	kvErr := s.storages.KeyValue.Delete(ctx, name)
	fileErr := s.storages.Files.Delete(ctx, name)
	if err = errors.Join(kvErr, fileErr); err != nil {
		s.logger.Err(err).
			Str("func", "vaultService.DeleteDocument").
			Str("name", name).
			Msg("failed to delete document")
		return fmt.Errorf("%w: delete document %q: %w", ErrIOFailure, name, err)
	}

	return nil
}

func (s *vaultService) SaveNote(ctx context.Context, title, content string) error {
	key, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer clear(key)

	if err = validateNoteTitle(title); err != nil {
		return err
	}

	ciphertext, err := s.cipher.Encrypt(key, []byte(content))
	if err != nil {
		return fmt.Errorf("encrypt note %q: %w", title, err)
	}

	record, err := json.Marshal(models.NoteEnvelope{
		Title:      title,
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})
	if err != nil {
		return fmt.Errorf("marshal note envelope: %w", err)
	}

	if err = s.storages.KeyValue.Put(ctx, NotePrefix+title, string(record)); err != nil {
		s.logger.Err(err).
			Str("func", "vaultService.SaveNote").
			Str("title", title).
			Msg("failed to persist note")
		return &PersistError{Name: title, KeyValue: err}
	}

	return nil
}

func (s *vaultService) GetNote(ctx context.Context, title string) (string, error) {
	key, err := s.begin(ctx)
	if err != nil {
		return "", err
	}
	defer clear(key)

	if err = validateNoteTitle(title); err != nil {
		return "", err
	}

	record, err := s.storages.KeyValue.Get(ctx, NotePrefix+title)
	if err != nil {
		return "", mapStoreError(err)
	}

	var envelope models.NoteEnvelope
	if err = json.Unmarshal([]byte(record), &envelope); err != nil {
		return "", fmt.Errorf("%w: note %q envelope: %w", ErrDecodeFailure, title, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: note %q ciphertext: %w", ErrDecodeFailure, title, err)
	}

	plaintext, err := s.cipher.Decrypt(key, ciphertext)
	if err != nil {
		return "", mapCipherError(err)
	}

	return string(plaintext), nil
}

func (s *vaultService) ListNotes(ctx context.Context) ([]string, error) {
	key, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	clear(key)

	keys, err := s.storages.KeyValue.ListKeysWithPrefix(ctx, NotePrefix)
	if err != nil {
		return nil, mapStoreError(err)
	}

	titles := make([]string, 0, len(keys))
	for _, k := range keys {
		titles = append(titles, strings.TrimPrefix(k, NotePrefix))
	}
	return titles, nil
}

func (s *vaultService) DeleteNote(ctx context.Context, title string) error {
	key, err := s.begin(ctx)
	if err != nil {
		return err
	}
	clear(key)

	if err = validateNoteTitle(title); err != nil {
		return err
	}

	if err = s.storages.KeyValue.Delete(ctx, NotePrefix+title); err != nil {
		s.logger.Err(err).
			Str("func", "vaultService.DeleteNote").
			Str("title", title).
			Msg("failed to delete note")
		return fmt.Errorf("%w: delete note %q: %w", ErrIOFailure, title, err)
	}

	return nil
}

func isDocumentKey(key string) bool {
	return key != CredentialKey && !strings.HasPrefix(key, NotePrefix)
}
