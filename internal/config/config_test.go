package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1000 {
		t.Errorf("expected width 1000, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.View.DragSensitivity != 0.01 {
		t.Errorf("expected drag sensitivity 0.01, got %f", cfg.View.DragSensitivity)
	}
	if cfg.View.MinZoom != 0.1 || cfg.View.MaxZoom != 10.0 {
		t.Errorf("expected zoom range [0.1, 10], got [%f, %f]", cfg.View.MinZoom, cfg.View.MaxZoom)
	}
	if cfg.View.MinZoom <= 0 {
		t.Error("min zoom must be positive, a zero zoom degenerates the projection")
	}
	if !cfg.View.AutoRotate {
		t.Error("expected auto-rotate on by default")
	}
	if cfg.View.CameraDistance != 8.0 {
		t.Errorf("expected camera distance 8, got %f", cfg.View.CameraDistance)
	}
	if cfg.View.Scale != 600.0 {
		t.Errorf("expected scale 600, got %f", cfg.View.Scale)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  vsync: false
  fps_limit: 144

view:
  drag_sensitivity: 0.02
  zoom_step: 0.25
  auto_rotate: false

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.View.DragSensitivity != 0.02 {
		t.Errorf("expected drag sensitivity 0.02, got %f", cfg.View.DragSensitivity)
	}
	if cfg.View.AutoRotate {
		t.Error("expected auto-rotate overridden to false")
	}
	// Values absent from the file keep their defaults.
	if cfg.View.CameraDistance != 8.0 {
		t.Errorf("expected camera distance default 8, got %f", cfg.View.CameraDistance)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 640
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if loaded.Graphics.Width != 640 {
		t.Errorf("round-tripped width = %d, want 640", loaded.Graphics.Width)
	}
}
