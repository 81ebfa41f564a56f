// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"golang.org/x/crypto/bcrypt"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
}

// validate checks that the final merged [StructuredConfig] carries
// everything the server needs before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenConfigs
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return ErrInvalidPasswordHashConfigs
	}

	return nil
}
