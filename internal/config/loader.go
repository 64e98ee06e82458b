package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "hanoi.yaml"

// LoadHanoi loads the Tower of Hanoi configuration.
// Search order: customPath -> ~/.hanoi/configs/hanoi.yaml -> ./configs/hanoi.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that can't be
// read or parsed is an error; the other locations are skipped silently.
func LoadHanoi(customPath string) (HanoiConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HanoiConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return HanoiConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultHanoiYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultHanoiConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (HanoiConfig, error) {
	cfg := DefaultHanoiConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HanoiConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hanoi", "configs", filename)
}
