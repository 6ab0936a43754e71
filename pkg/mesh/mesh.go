// Package mesh defines the triangulated mesh snapshot consumed by the
// Unreal 3d encoders.
package mesh

import (
	vmath "github.com/Faultbox/unreal3d/pkg/math"
)

// NoMaterial is the material slot of a face with no material assigned.
const NoMaterial = -1

// Face is one polygon of a snapshot. A valid face references exactly
// three vertices; the encoders reject anything else.
type Face struct {
	Indices  []int        // indices into Snapshot.Vertices
	Material int          // material slot, NoMaterial if unassigned
	UVs      []vmath.Vec2 // per-corner texture coordinates, nil if the mesh has no UV layer
}

// Snapshot is one frame's fully resolved, triangulated mesh. Vertex order
// is the canonical vertex ID space referenced by faces, and must be stable
// across all frames of an export.
type Snapshot struct {
	Vertices  []vmath.Vec3
	Faces     []Face
	Materials []string // material slot index -> material name
}

// MaterialName returns the name of the given material slot, or "" if the
// slot is out of range.
func (s *Snapshot) MaterialName(slot int) string {
	if slot < 0 || slot >= len(s.Materials) {
		return ""
	}
	return s.Materials[slot]
}

// Source supplies the frames of one export in order. Implementations may
// build each snapshot lazily; callers fetch each frame at most twice
// (validation and encoding) and never retain it across frames.
type Source interface {
	// FrameCount returns the number of frames in the export.
	FrameCount() int
	// Frame returns the snapshot for frame i, 0 <= i < FrameCount().
	Frame(i int) (*Snapshot, error)
}

// SliceSource adapts an eagerly built snapshot slice to a Source.
type SliceSource []*Snapshot

// FrameCount returns the number of snapshots in the slice.
func (s SliceSource) FrameCount() int { return len(s) }

// Frame returns the i-th snapshot.
func (s SliceSource) Frame(i int) (*Snapshot, error) { return s[i], nil }
