package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

type Services struct {
	Credentials CredentialService
	Vault       VaultService
}

func NewServices(storages *store.ClientStorages, keyChain crypto.KeyChainService, cipher crypto.Cipher, keys KeySource, logger *logger.Logger) *Services {
	return &Services{
		Credentials: NewCredentialService(storages, keyChain, logger),
		Vault:       NewVaultService(storages, cipher, keys, logger),
	}
}
