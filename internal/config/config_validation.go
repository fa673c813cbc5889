// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MoleculeInsight Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// OAuth credentials are intentionally not required: without them Google
// sign-in is disabled but the rest of the application runs.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Adapter.AgentBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		return ErrInvalidAppConfigs
	}

	return nil
}
