package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVertexFormat reports a VertexFormat outside the supported set.
var ErrUnknownVertexFormat = errors.New("unknown vertex format")

// VertexFormat selects the bit layout used to pack a vertex position.
type VertexFormat int

const (
	// FormatUnreal1 packs x/y at 1/8-unit and z at 1/4-unit precision
	// into a 4-byte field. Used by Unreal 1 and Unreal Tournament.
	FormatUnreal1 VertexFormat = iota
	// FormatDeusEx packs all axes at 1/256-unit precision into an
	// 8-byte field.
	FormatDeusEx
)

// FieldSize returns the packed vertex field width in bytes, or 0 for an
// unknown format.
func (f VertexFormat) FieldSize() int {
	switch f {
	case FormatUnreal1:
		return 4
	case FormatDeusEx:
		return 8
	default:
		return 0
	}
}

// String returns the format name as used in config files.
func (f VertexFormat) String() string {
	switch f {
	case FormatUnreal1:
		return "unreal1"
	case FormatDeusEx:
		return "deusex"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// ParseVertexFormat converts a config-file format name to a VertexFormat.
func ParseVertexFormat(name string) (VertexFormat, error) {
	switch strings.ToLower(name) {
	case "unreal1", "ut":
		return FormatUnreal1, nil
	case "deusex":
		return FormatDeusEx, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertexFormat, name)
	}
}

// ExportConfig holds the settings of one export. It is read-only for the
// duration of the export.
type ExportConfig struct {
	Scale  float32 // uniform scale applied before packing, must be > 0
	FlipX  bool    // mirror the model on the YZ plane
	FlipY  bool    // mirror the model on the XZ plane
	FlipZ  bool    // mirror the model on the XY plane
	FlipU  bool    // flip texture coordinates horizontally
	FlipV  bool    // flip texture coordinates vertically
	Format VertexFormat
}

// DefaultExportConfig returns the exporter defaults: unit scale, V flipped,
// Unreal 1 packing.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Scale:  1,
		FlipV:  true,
		Format: FormatUnreal1,
	}
}
