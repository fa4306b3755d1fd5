package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	defaultTheme       = "Catppuccin Mocha"
	defaultChartHeight = 200
	// minChartHeight keeps at least one plot row above the footer.
	minChartHeight = 40

	configDirEnvVar = "OPSBOARD_CONFIG_DIR"
)

type UIConfig struct {
	ChartHeight int `json:"chart_height"`
}

type DataConfig struct {
	Path  string `json:"path"`
	Watch bool   `json:"watch"`
}

type Config struct {
	Theme string     `json:"theme"`
	UI    UIConfig   `json:"ui"`
	Data  DataConfig `json:"data"`
}

func DefaultConfig() Config {
	return Config{
		Theme: defaultTheme,
		UI: UIConfig{
			ChartHeight: defaultChartHeight,
		},
		Data: DataConfig{Watch: true},
	}
}

func ConfigDir() string {
	if dir := os.Getenv(configDirEnvVar); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "opsboard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "opsboard")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.UI.ChartHeight = NormalizeChartHeight(cfg.UI.ChartHeight)
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}
	return cfg, nil
}

// NormalizeChartHeight maps unset heights to the default and raises tiny ones
// to the minimum drawable height.
func NormalizeChartHeight(h int) int {
	switch {
	case h <= 0:
		return defaultChartHeight
	case h < minChartHeight:
		return minChartHeight
	default:
		return h
	}
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveTheme persists a theme name into the config file (read-modify-write).
func SaveTheme(theme string) error {
	return SaveThemeTo(ConfigPath(), theme)
}

func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
