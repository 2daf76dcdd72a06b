package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boardkit/boardkit/pkg/pipeline"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if cfg.Canvas.Width != pipeline.DefaultCanvasWidth {
		t.Errorf("Canvas.Width = %d, want %d", cfg.Canvas.Width, pipeline.DefaultCanvasWidth)
	}
	if !cfg.Snap.Enabled {
		t.Error("Snap.Enabled should default to true")
	}
	if cfg.Snap.SnapTolerance != 3 {
		t.Errorf("Snap.SnapTolerance = %d, want 3", cfg.Snap.SnapTolerance)
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Canvas.Width = 80
	cfg.Canvas.Height = 24
	cfg.Snap.SnapToGrid = true
	cfg.Snap.GridSize = 4

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got := LoadConfig()
	if got.Canvas.Width != 80 || got.Canvas.Height != 24 {
		t.Errorf("canvas = %dx%d, want 80x24", got.Canvas.Width, got.Canvas.Height)
	}
	if !got.Snap.SnapToGrid || got.Snap.GridSize != 4 {
		t.Errorf("snap grid = %v/%d, want true/4", got.Snap.SnapToGrid, got.Snap.GridSize)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[canvas\nwidth="), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Canvas.Width != pipeline.DefaultCanvasWidth {
		t.Errorf("malformed config should fall back to defaults, got width %d", cfg.Canvas.Width)
	}
}
