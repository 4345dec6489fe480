package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// CredentialKey is the reserved key-value entry holding the password
// verifier. It never appears in document listings and cannot be used as a
// document name.
const CredentialKey = "passwordHash"

type credentialService struct {
	storages *store.ClientStorages
	keyChain crypto.KeyChainService
	logger   *logger.Logger

	// mu serializes bootstrap so that two concurrent first logins cannot
	// both store a verifier.
	mu sync.Mutex
}

// NewCredentialService returns a [CredentialService] keeping its verifier in
// the key-value backend of storages.
func NewCredentialService(storages *store.ClientStorages, keyChain crypto.KeyChainService, logger *logger.Logger) CredentialService {
	return &credentialService{
		storages: storages,
		keyChain: keyChain,
		logger:   logger,
	}
}

func (s *credentialService) BootstrapOrVerify(ctx context.Context, password string) (bool, error) {
	if err := s.storages.Ready.Wait(ctx); err != nil {
		return false, fmt.Errorf("%w: storage is not ready: %w", ErrIOFailure, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	verifier, err := s.storages.KeyValue.Get(ctx, CredentialKey)
	if errors.Is(err, store.ErrRecordNotFound) {
		return s.bootstrap(ctx, password)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "credentialService.BootstrapOrVerify").Msg("failed to read credential record")
		return false, fmt.Errorf("%w: read credential: %w", ErrIOFailure, err)
	}

	ok, err := s.keyChain.VerifyPassword(password, verifier)
	if err != nil {
		s.logger.Err(err).Str("func", "credentialService.BootstrapOrVerify").Msg("stored credential record is unusable")
		return false, fmt.Errorf("%w: verify credential: %w", ErrIOFailure, err)
	}
	if !ok {
		s.logger.Warn().Str("func", "credentialService.BootstrapOrVerify").Msg("password mismatch")
	}

	return ok, nil
}

func (s *credentialService) bootstrap(ctx context.Context, password string) (bool, error) {
	verifier, err := s.keyChain.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	if err = s.storages.KeyValue.Put(ctx, CredentialKey, verifier); err != nil {
		s.logger.Err(err).Str("func", "credentialService.bootstrap").Msg("failed to store credential record")
		return false, fmt.Errorf("%w: write credential: %w", ErrIOFailure, err)
	}

	s.logger.Info().Str("func", "credentialService.bootstrap").Msg("vault password has been set")
	return true, nil
}
