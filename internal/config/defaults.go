package config

import (
	"os"
	"path/filepath"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultCipher       = "ctr"
	DefaultKeySalt      = "go-doc-vault/session-key/v1"
	DefaultLogLevel     = "info"
	DefaultArgonTime    = 1
	DefaultArgonMemory  = 64 * 1024
	DefaultArgonThreads = 4

	defaultHomeDir      = ".docvault"
	defaultDBFile       = "vault.db"
	defaultDocumentsDir = "documents"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Cipher == "" {
		cfg.App.Cipher = DefaultCipher
	}
	if cfg.App.KeySalt == "" {
		cfg.App.KeySalt = DefaultKeySalt
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.ArgonTime == 0 {
		cfg.App.ArgonTime = DefaultArgonTime
	}
	if cfg.App.ArgonMemory == 0 {
		cfg.App.ArgonMemory = DefaultArgonMemory
	}
	if cfg.App.ArgonThreads == 0 {
		cfg.App.ArgonThreads = DefaultArgonThreads
	}

	if cfg.Storage.DB.DSN != "" && cfg.Storage.Files.DocumentsDir != "" {
		return
	}

	base := defaultHomeDir
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, defaultHomeDir)
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(base, defaultDBFile)
	}
	if cfg.Storage.Files.DocumentsDir == "" {
		cfg.Storage.Files.DocumentsDir = filepath.Join(base, defaultDocumentsDir)
	}
}
