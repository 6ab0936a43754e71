// Package config handles exporter configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/unreal3d/pkg/formats"
)

// MaxScale is the largest accepted export scale.
const MaxScale = 100000

// Configuration errors.
var (
	ErrScaleOutOfRange = errors.New("export scale out of range")
	ErrMissingName     = errors.New("package and mesh names must not be empty")
)

// Config holds all exporter settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds the package directory layout settings.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // root the package directory is created under
	Package string `yaml:"package"` // Unreal package name
	Mesh    string `yaml:"mesh"`    // mesh and class name
}

// ExportConfig holds the encoding settings.
type ExportConfig struct {
	Scale  float32 `yaml:"scale"`
	FlipX  bool    `yaml:"flip_x"`
	FlipY  bool    `yaml:"flip_y"`
	FlipZ  bool    `yaml:"flip_z"`
	FlipU  bool    `yaml:"flip_u"`
	FlipV  bool    `yaml:"flip_v"`
	Format string  `yaml:"format"` // "unreal1" or "deusex"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the exporter's default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:     ".",
			Package: "MyPackage",
			Mesh:    "MyMesh",
		},
		Export: ExportConfig{
			Scale:  1,
			FlipV:  true,
			Format: formats.FormatUnreal1.String(),
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings a whole export depends on.
func (c *Config) Validate() error {
	if c.Export.Scale <= 0 || c.Export.Scale > MaxScale {
		return fmt.Errorf("%w: %v (must be in (0, %d])", ErrScaleOutOfRange, c.Export.Scale, MaxScale)
	}
	if _, err := formats.ParseVertexFormat(c.Export.Format); err != nil {
		return err
	}
	if c.Output.Package == "" || c.Output.Mesh == "" {
		return ErrMissingName
	}
	return nil
}

// Encoder converts the serializable export settings to the encoder's
// config. Call Validate first; an unknown format name fails here too.
func (e ExportConfig) Encoder() (formats.ExportConfig, error) {
	format, err := formats.ParseVertexFormat(e.Format)
	if err != nil {
		return formats.ExportConfig{}, err
	}
	return formats.ExportConfig{
		Scale:  e.Scale,
		FlipX:  e.FlipX,
		FlipY:  e.FlipY,
		FlipZ:  e.FlipZ,
		FlipU:  e.FlipU,
		FlipV:  e.FlipV,
		Format: format,
	}, nil
}
