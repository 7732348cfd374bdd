package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const configFile = "waverider.yaml"

// LoadWaverider loads and validates the Waverider configuration.
// Search order: customPath -> ~/.waverider/configs/waverider.yaml -> ./configs/waverider.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func LoadWaverider(customPath string) (WaveriderConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (WaveriderConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultWaveriderConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		log.Debug("config loaded", "source", customPath)
		return cfg, nil
	}

	candidates := []string{}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", configFile))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultWaveriderConfig()
		if err := decode(data, &cfg); err != nil {
			log.Warn("ignoring unreadable config", "path", path, "error", err)
			continue
		}
		log.Debug("config loaded", "source", path)
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultWaveriderConfig()
	if err := decode(defaultWaveriderYAML, &cfg); err != nil {
		log.Warn("embedded config unreadable, using built-in defaults", "error", err)
		return DefaultWaveriderConfig(), nil
	}
	log.Debug("config loaded", "source", "embedded")
	return cfg, nil
}

// decode overlays YAML onto cfg. Lists such as waves are replaced, not merged.
func decode(data []byte, cfg *WaveriderConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".waverider", "configs", filename)
}

// Marshal renders the config as YAML, e.g. for `waves --dump`.
func Marshal(cfg WaveriderConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
