package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/unreal3d/pkg/formats"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Dir != "." {
		t.Errorf("expected output dir '.', got %s", cfg.Output.Dir)
	}
	if cfg.Output.Package != "MyPackage" {
		t.Errorf("expected package 'MyPackage', got %s", cfg.Output.Package)
	}
	if cfg.Output.Mesh != "MyMesh" {
		t.Errorf("expected mesh 'MyMesh', got %s", cfg.Output.Mesh)
	}

	if cfg.Export.Scale != 1 {
		t.Errorf("expected scale 1, got %f", cfg.Export.Scale)
	}
	if cfg.Export.FlipX || cfg.Export.FlipY || cfg.Export.FlipZ {
		t.Error("expected axis flips to be off by default")
	}
	if cfg.Export.FlipU {
		t.Error("expected flip_u to be off by default")
	}
	if !cfg.Export.FlipV {
		t.Error("expected flip_v to be on by default")
	}
	if cfg.Export.Format != "unreal1" {
		t.Errorf("expected format 'unreal1', got %s", cfg.Export.Format)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  package: Weapons
  mesh: Rocket
export:
  scale: 0.5
  flip_x: true
  flip_v: false
  format: deusex
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Output.Package != "Weapons" {
		t.Errorf("expected package 'Weapons', got %s", cfg.Output.Package)
	}
	if cfg.Output.Mesh != "Rocket" {
		t.Errorf("expected mesh 'Rocket', got %s", cfg.Output.Mesh)
	}
	if cfg.Export.Scale != 0.5 {
		t.Errorf("expected scale 0.5, got %f", cfg.Export.Scale)
	}
	if !cfg.Export.FlipX {
		t.Error("expected flip_x true")
	}
	if cfg.Export.FlipV {
		t.Error("expected flip_v false after file override")
	}
	if cfg.Export.Format != "deusex" {
		t.Errorf("expected format 'deusex', got %s", cfg.Export.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// unset file keys keep their defaults
	if cfg.Output.Dir != "." {
		t.Errorf("expected default output dir, got %s", cfg.Output.Dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"zero scale", func(c *Config) { c.Export.Scale = 0 }, ErrScaleOutOfRange},
		{"negative scale", func(c *Config) { c.Export.Scale = -2 }, ErrScaleOutOfRange},
		{"scale too large", func(c *Config) { c.Export.Scale = 100001 }, ErrScaleOutOfRange},
		{"max scale ok", func(c *Config) { c.Export.Scale = 100000 }, nil},
		{"bad format", func(c *Config) { c.Export.Format = "md3" }, formats.ErrUnknownVertexFormat},
		{"empty package", func(c *Config) { c.Output.Package = "" }, ErrMissingName},
		{"empty mesh", func(c *Config) { c.Output.Mesh = "" }, ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncoder(t *testing.T) {
	cfg := Default()
	cfg.Export.Scale = 2
	cfg.Export.FlipZ = true
	cfg.Export.Format = "deusex"

	enc, err := cfg.Export.Encoder()
	if err != nil {
		t.Fatalf("Encoder() error: %v", err)
	}

	if enc.Scale != 2 {
		t.Errorf("encoder scale = %v, want 2", enc.Scale)
	}
	if !enc.FlipZ || enc.FlipX {
		t.Error("encoder flips do not match config")
	}
	if !enc.FlipV {
		t.Error("encoder flip_v should carry the default")
	}
	if enc.Format != formats.FormatDeusEx {
		t.Errorf("encoder format = %v, want deusex", enc.Format)
	}

	cfg.Export.Format = "nope"
	if _, err := cfg.Export.Encoder(); !errors.Is(err, formats.ErrUnknownVertexFormat) {
		t.Errorf("Encoder() with bad format = %v, want unknown format error", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Output.Package = "Decorations"
	cfg.Export.Scale = 4

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}
	if loaded.Output.Package != "Decorations" {
		t.Errorf("reloaded package = %s, want Decorations", loaded.Output.Package)
	}
	if loaded.Export.Scale != 4 {
		t.Errorf("reloaded scale = %f, want 4", loaded.Export.Scale)
	}
}
