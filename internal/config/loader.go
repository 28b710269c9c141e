package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load assembles the tracker configuration.
//
// When CONFIG_PATH names a YAML file it must exist and is read first;
// otherwise ./config.yaml is picked up if present. Environment variables
// override whatever the file says, and env-default tags fill the rest, so
// a deployment that only sets AIRTABLE_BASE_ID and AIRTABLE_API_KEY works
// without any file at all. The result is validated before it is returned.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: CONFIG_PATH %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
