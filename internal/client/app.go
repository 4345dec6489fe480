package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/session"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

type App struct {
	storages *store.ClientStorages
	session  *session.Manager
	services *service.Services
	logger   *logger.Logger
}

// NewApp wires storages, key chain, cipher, session and services from cfg.
// No I/O happens until [App.Start] or the first operation.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	cipher, err := crypto.NewCipher(cfg.App.Cipher)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	keyChain := crypto.NewKeyChainServiceWithParams(cfg.App.KeySalt, cfg.App.ArgonTime, cfg.App.ArgonMemory, cfg.App.ArgonThreads)
	sessions := session.NewManager(keyChain)

	log.Debug().Str("cipher", cipher.Name()).Msg("vault application assembled")

	return &App{
		storages: storages,
		session:  sessions,
		services: service.NewServices(storages, keyChain, cipher, sessions, log),
		logger:   log,
	}, nil
}

// Start begins storage initialization in the background.
func (a *App) Start(ctx context.Context) {
	a.storages.Ready.Start(ctx)
}

func (a *App) Unlock(ctx context.Context, password string) error {
	ok, err := a.services.Credentials.BootstrapOrVerify(ctx, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}

	a.session.Activate(password)
	a.logger.Info().Msg("vault unlocked")
	return nil
}

func (a *App) Lock() {
	a.session.Clear()
	a.logger.Info().Msg("vault locked")
}

func (a *App) Unlocked() bool {
	return a.session.Active()
}

func (a *App) Vault() service.VaultService {
	return a.services.Vault
}

// Close locks the vault and releases the database.
func (a *App) Close() error {
	a.Lock()
	return a.storages.Close()
}
