package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/dashrun.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default tuning file, useful for
// writing a starter config for the user to edit.
func DefaultYAML() []byte {
	return defaultYAML
}

// Load loads the runner tuning.
// Search order: customPath -> ~/.dashrun/config.yaml -> ./configs/dashrun.yaml -> embedded default.
// A config that fails validation is rejected rather than silently used;
// only an explicit customPath turns read errors into failures.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := parse(data, userPath); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "dashrun.yaml")); err == nil {
		if cfg, err := parse(data, "configs/dashrun.yaml"); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		// The embedded default is validated by tests; fall back to the
		// hardcoded tuning if it is ever corrupted.
		return Default(), nil
	}
	return cfg, nil
}

// parse unmarshals and validates a YAML tuning document.
func parse(data []byte, source string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config path, empty if the home
// directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dashrun", "config.yaml")
}
