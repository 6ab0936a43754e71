package formats

import (
	vmath "github.com/Faultbox/unreal3d/pkg/math"
)

// TransformPoint applies the export-space transform to a raw vertex
// position: scale first, then per-axis mirroring.
//
// Mirroring an axis inverts face winding; the snapshot provider must
// reverse the vertex order of every face when an odd number of axis flips
// is enabled, or facing and culling come out inverted in the engine.
func TransformPoint(v vmath.Vec3, cfg ExportConfig) vmath.Vec3 {
	p := v.Scale(cfg.Scale)
	if cfg.FlipX {
		p.X = -p.X
	}
	if cfg.FlipY {
		p.Y = -p.Y
	}
	if cfg.FlipZ {
		p.Z = -p.Z
	}
	return p
}

// PackVertex quantizes a transformed position into a single packed field.
// Components are truncated toward zero, never rounded; the engine decodes
// exactly this quantization, so rounding would shift vertices by one step
// relative to reference exports.
//
// Coordinates are assumed to be within ±128 units (see Validate); the
// masks silently wrap anything larger.
func PackVertex(p vmath.Vec3, format VertexFormat) uint64 {
	if format == FormatDeusEx {
		x := uint64(int64(p.X*256)) & 0xFFFF
		y := uint64(int64(p.Y*256)) & 0xFFFF
		z := uint64(int64(p.Z*256)) & 0xFFFF
		return x | y<<16 | z<<32
	}
	x := uint32(int32(p.X*8)) & 0x7FF
	y := uint32(int32(p.Y*8)) & 0x7FF
	z := uint32(int32(p.Z*4)) & 0x3FF
	return uint64(x | y<<11 | z<<22)
}
