// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Karpov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Engine.MaxDepth < 0 {
		return ErrInvalidEngineConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "", "pgx", "sqlite3":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
