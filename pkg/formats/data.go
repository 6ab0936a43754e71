package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	vmath "github.com/Faultbox/unreal3d/pkg/math"
	"github.com/Faultbox/unreal3d/pkg/mesh"
)

// Data file errors.
var (
	ErrNonTriangleFace    = errors.New("face is not a triangle")
	ErrInvalidVertexIndex = errors.New("face vertex index out of range")
	ErrMeshTooLarge       = errors.New("mesh exceeds 16-bit header fields")
)

// Data file layout constants.
const (
	// DataHeaderSize is the byte length of the data file header:
	// face count and vertex count as 16-bit fields, then reserved
	// fields (rotation, frame, normals, fix-scale, unused) emitted
	// as zero for engine compatibility.
	DataHeaderSize = 48
	// FaceRecordSize is the byte length of one per-face record.
	FaceRecordSize = 16
)

// Mesh type values understood by the engine, selected per face by a
// marker substring in the face's material name.
const (
	MeshTypeNormal       uint8 = 0
	MeshTypeTwoSidedNorm uint8 = 1
	MeshTypeTranslucent  uint8 = 2
	MeshTypeTwoSided     uint8 = 3
	MeshTypeWeapon       uint8 = 8
	MeshTypeUnlit        uint8 = 16
	MeshTypeFlat         uint8 = 32
	MeshTypeEnvMapped    uint8 = 64
)

// meshTypeMarkers maps material-name markers to mesh types. The scan is
// ordered and the first match wins.
var meshTypeMarkers = []struct {
	marker string
	value  uint8
}{
	{"(skin)", MeshTypeNormal},
	{"(twosidednorm)", MeshTypeTwoSidedNorm},
	{"(translucent)", MeshTypeTranslucent},
	{"(twosided)", MeshTypeTwoSided},
	{"(weapon)", MeshTypeWeapon},
	{"(unlit)", MeshTypeUnlit},
	{"(flat)", MeshTypeFlat},
	{"(envmapped)", MeshTypeEnvMapped},
}

// MeshTypeForMaterial derives a mesh type from a material name by
// case-insensitive marker search. ok is false when no marker matches; the
// mesh type is then the default.
func MeshTypeForMaterial(name string) (meshType uint8, ok bool) {
	lower := strings.ToLower(name)
	for _, m := range meshTypeMarkers {
		if strings.Contains(lower, m.marker) {
			return m.value, true
		}
	}
	return MeshTypeNormal, false
}

// UnknownMaterial reports a face whose material slot is assigned but whose
// material name carries no mesh-type marker. The face still encodes with
// the default mesh type; this is diagnostic only.
type UnknownMaterial struct {
	Face int    // face index
	Slot int    // material slot index
	Name string // material name
}

// WrapUnit wraps a texture coordinate into [0, 1). Negative inputs wrap
// from the top, so -0.25 becomes 0.75. Wrapping an already wrapped value
// is a no-op.
func WrapUnit(f float32) float32 {
	m := math.Mod(float64(f), 1)
	if m < 0 {
		m++
	}
	return float32(m)
}

// uvByte converts one wrapped/flipped texture component to its byte form:
// scaled to 0..255 and truncated.
func uvByte(f float32, flip bool) uint8 {
	w := WrapUnit(f)
	if flip {
		w = 1 - w
	}
	return uint8(w * 255)
}

// EncodeData builds the complete data file (_d.3d) from one representative
// snapshot: the 48-byte header, then a fixed 16-byte record per face in
// input order. Topology is assumed invariant across frames, so any frame
// of the export may serve as the snapshot.
//
// Faces whose assigned material name carries no mesh-type marker are
// returned in unknown; they encode with the default mesh type and never
// fail the export.
func EncodeData(snap *mesh.Snapshot, cfg ExportConfig) (data []byte, unknown []UnknownMaterial, err error) {
	if len(snap.Faces) > 0xFFFF || len(snap.Vertices) > 0xFFFF {
		return nil, nil, fmt.Errorf("%w: %d faces, %d vertices",
			ErrMeshTooLarge, len(snap.Faces), len(snap.Vertices))
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(len(snap.Faces)))
	binary.Write(&buf, binary.LittleEndian, uint16(len(snap.Vertices)))
	buf.Write(make([]byte, DataHeaderSize-4)) // reserved, engine ignores it

	for i, face := range snap.Faces {
		if len(face.Indices) != 3 {
			return nil, nil, fmt.Errorf("face %d has %d vertices: %w",
				i, len(face.Indices), ErrNonTriangleFace)
		}
		if face.UVs != nil && len(face.UVs) != 3 {
			return nil, nil, fmt.Errorf("face %d has %d texture corners: %w",
				i, len(face.UVs), ErrNonTriangleFace)
		}

		for _, idx := range face.Indices {
			if idx < 0 || idx >= len(snap.Vertices) {
				return nil, nil, fmt.Errorf("face %d references vertex %d of %d: %w",
					i, idx, len(snap.Vertices), ErrInvalidVertexIndex)
			}
			binary.Write(&buf, binary.LittleEndian, uint16(idx))
		}

		meshType := MeshTypeNormal
		if face.Material >= 0 && face.Material < len(snap.Materials) {
			var ok bool
			meshType, ok = MeshTypeForMaterial(snap.Materials[face.Material])
			if !ok {
				unknown = append(unknown, UnknownMaterial{
					Face: i,
					Slot: face.Material,
					Name: snap.Materials[face.Material],
				})
			}
		}
		buf.WriteByte(meshType)
		buf.WriteByte(0) // color, unused

		for c := 0; c < 3; c++ {
			var uv vmath.Vec2
			if face.UVs != nil {
				uv = face.UVs[c]
			}
			if !uv.IsFinite() {
				return nil, nil, fmt.Errorf("face %d corner %d uv (%v, %v): %w",
					i, c, uv.X, uv.Y, ErrNonFiniteCoordinate)
			}
			buf.WriteByte(uvByte(uv.X, cfg.FlipU))
			buf.WriteByte(uvByte(uv.Y, cfg.FlipV))
		}

		buf.WriteByte(byte(face.Material + 1)) // texture slot, -1 maps to 0
		buf.WriteByte(0)                       // flags, reserved
	}

	return buf.Bytes(), unknown, nil
}
