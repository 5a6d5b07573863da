package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in every search location.
const FileName = "skyfall.yaml"

// LoadSkyfall loads Skyfall configuration.
// Search order: customPath -> ~/.skyfall/configs/skyfall.yaml -> ./configs/skyfall.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
func LoadSkyfall(customPath string) (SkyfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkyfallConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SkyfallConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSkyfallYAML)
	if err != nil {
		return DefaultSkyfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration.
func Parse(data []byte) (SkyfallConfig, error) {
	cfg := DefaultSkyfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyfallConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SkyfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", "configs", filename)
}

// ApplySkyfallPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values untouched.
func ApplySkyfallPreset(cfg *SkyfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		cfg.Spawn.PeriodMS = 900
		cfg.Spawn.StarRollMax = 3
		cfg.Batches.DriftDivisor = 3
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		cfg.Spawn.PeriodMS = 550
		cfg.Batches.DriftDivisor = 1.5
	}
}
