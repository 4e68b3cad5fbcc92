package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_ParsesAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `display_width: 2560
display_height: 1440
panel_height: 40
eve_width: 1200
eve_height: 900
primary_character: Bob
primary_monitor: DP-1
fullscreen_stack: true
minimize_inactive: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if cfg.DisplayWidth != 2560 || cfg.DisplayHeight != 1440 {
		t.Errorf("display = %dx%d, want 2560x1440", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.PanelHeight != 40 {
		t.Errorf("panel_height = %d, want 40", cfg.PanelHeight)
	}
	if cfg.EveWidth != 1200 || cfg.EveHeight != 900 {
		t.Errorf("eve size = %dx%d, want 1200x900", cfg.EveWidth, cfg.EveHeight)
	}
	if cfg.PrimaryCharacter != "Bob" || cfg.PrimaryMonitor != "DP-1" {
		t.Errorf("primary = %q on %q, want Bob on DP-1", cfg.PrimaryCharacter, cfg.PrimaryMonitor)
	}
	if !cfg.FullscreenStack || !cfg.MinimizeInactive {
		t.Error("expected fullscreen_stack and minimize_inactive to be true")
	}
}

func TestLoadFromPath_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evemux", "config.yaml")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if cfg.DisplayWidth <= 0 || cfg.DisplayHeight <= 0 {
		t.Fatalf("default config has invalid display size %dx%d", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}

func TestLoadFromPath_FillsMissingDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("primary_character: Alice\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if cfg.DisplayWidth != 1920 || cfg.DisplayHeight != 1080 {
		t.Errorf("fallback display = %dx%d, want 1920x1080", cfg.DisplayWidth, cfg.DisplayHeight)
	}
	if cfg.EveWidth != 1920 || cfg.EveHeight != 1080 {
		t.Errorf("fallback eve size = %dx%d, want 1920x1080", cfg.EveWidth, cfg.EveHeight)
	}
	if cfg.PrimaryCharacter != "Alice" {
		t.Errorf("primary_character = %q, want Alice", cfg.PrimaryCharacter)
	}
}

func TestSaveTo_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{
		DisplayWidth:    3840,
		DisplayHeight:   2160,
		PanelHeight:     32,
		EveWidth:        1920,
		EveHeight:       1200,
		PrimaryMonitor:  "HDMI-A-1",
		FullscreenStack: true,
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath error: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}
