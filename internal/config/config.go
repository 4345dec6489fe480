// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-doc-vault application. It aggregates all sub-configurations and is
// populated by merging values from a JSON or YAML file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: cipher selection, key
	// derivation parameters and logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for both persistence backends: the
	// SQLite key-value store and the documents directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Cipher selects the at-rest cipher: "ctr" (default, unauthenticated)
	// or "gcm" (authenticated, rejects a wrong key).
	// Env: APP_CIPHER
	Cipher string `env:"CIPHER"`

	// KeySalt is the domain-separation salt mixed into the session key
	// derivation. Changing it makes previously stored data unreadable.
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`

	// ArgonTime is the Argon2id iteration count.
	// Env: APP_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the Argon2id memory cost in KiB.
	// Env: APP_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the Argon2id parallelism.
	// Env: APP_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`

	// LogLevel is one of zerolog's level names (debug, info, warn, ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path the client logger appends to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for both storage backends.
type Storage struct {
	// DB holds the SQLite key-value store settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the documents directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite key-value backend.
type DB struct {
	// DSN is the SQLite database file path (e.g. "/home/me/.docvault/vault.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for the redundant document store.
type Files struct {
	// DocumentsDir is the directory holding one raw-ciphertext file per
	// document. Created on first use.
	// Env: STORAGE_FILES_DOCUMENTS_DIR
	DocumentsDir string `env:"DOCUMENTS_DIR"`
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration. Sources in increasing priority:
//  1. JSON or YAML file (path resolved from env or flags)
//  2. Environment variables
//  3. Command-line flags bound via [BindFlags]
//
// flagCfg may be nil when no flags were bound.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
