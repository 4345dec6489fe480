// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.DocumentsDir == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.App.Cipher {
	case "ctr", "gcm":
	default:
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidAppConfigs, cfg.App.Cipher)
	}

	if cfg.App.KeySalt == "" || cfg.App.ArgonTime == 0 || cfg.App.ArgonMemory == 0 || cfg.App.ArgonThreads == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
