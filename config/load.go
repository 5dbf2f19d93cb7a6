package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the configuration from the given YAML file plus environment
// overrides. An empty path means environment-only.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
