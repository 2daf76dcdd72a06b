package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/pipeline"
)

// Config is the on-disk editor configuration, read from
// ~/.config/boardkit/config.toml. Every field has a working default, so a
// missing or partial file is fine.
//
// Example:
//
//	[canvas]
//	width = 120
//	height = 40
//
//	[snap]
//	enabled = true
//	snap_tolerance = 3
//	snap_to_grid = true
//	grid_size = 8
type Config struct {
	Canvas CanvasConfig  `toml:"canvas"`
	Snap   guides.Config `toml:"snap"`
}

// CanvasConfig sets the default canvas size for boards that do not carry
// their own.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  pipeline.DefaultCanvasWidth,
			Height: pipeline.DefaultCanvasHeight,
		},
		Snap: guides.DefaultConfig(),
	}
}

// configPath returns the path of the TOML config file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file, falling back to defaults when the file
// is missing or the path cannot be resolved. A malformed file also falls
// back rather than blocking every command.
func LoadConfig() Config {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to the config file, creating the directory if
// needed.
func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
