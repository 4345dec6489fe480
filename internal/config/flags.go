package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the vault configuration flags on fs and returns the
// config they populate once fs has been parsed. The returned pointer is
// meant to be handed to [GetStructuredConfig] after parsing.
//
// Flags:
//
//	--db         SQLite key-value store path
//	--docs-dir   documents directory path
//	--cipher     at-rest cipher (ctr|gcm)
//	--config     JSON or YAML config file path
//	--log-level  log level (debug|info|warn|error)
//	--log-file   log file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Storage.DB.DSN, "db", "", "SQLite key-value store path")
	fs.StringVar(&cfg.Storage.Files.DocumentsDir, "docs-dir", "", "Documents directory path")
	fs.StringVar(&cfg.App.Cipher, "cipher", "", "At-rest cipher (ctr|gcm)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")

	return cfg
}
