// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment through the `env` and
// `envPrefix` tags of [StructuredConfig].
//
// A variable that is exported but blank counts as unset, so a line such as
// "AUTH_BCRYPT_COST=" in a .env file falls through to the other sources
// instead of failing to parse.
func parseEnv(cfg any) error {
	environment := env.ToMap(os.Environ())
	for key, value := range environment {
		if strings.TrimSpace(value) == "" {
			delete(environment, key)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
