// Package config loads outbreak settings from the environment and maps
// failures to process exit codes.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, so `env:"R0"` reads OUTBREAK_R0.
const EnvPrefix = "OUTBREAK_"

// ParseEnv fills target from OUTBREAK_* variables, applying envDefault tags
// for unset ones.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse %s* env: %w", EnvPrefix, err)
	}
	return nil
}
