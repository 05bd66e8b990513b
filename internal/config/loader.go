package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "astrobounce.yaml"

// LoadAstro loads the engine tuning.
// Search order: customPath -> ~/.astrobounce/configs/astrobounce.yaml ->
// ./configs/astrobounce.yaml -> embedded default.
// Only an explicit customPath turns read or parse failures into errors.
func LoadAstro(customPath string) (AstroConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AstroConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AstroConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAstroYAML)
	if err != nil {
		return DefaultAstroConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes, then validates the result.
func Parse(data []byte) (AstroConfig, error) {
	cfg := DefaultAstroConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AstroConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AstroConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astrobounce", "configs", filename)
}
