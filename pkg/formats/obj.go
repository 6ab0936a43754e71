package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	vmath "github.com/Faultbox/unreal3d/pkg/math"
	"github.com/Faultbox/unreal3d/pkg/mesh"
)

// ErrMalformedOBJ reports unparseable Wavefront OBJ input.
var ErrMalformedOBJ = errors.New("malformed OBJ data")

// ParseOBJ reads a Wavefront OBJ mesh into a snapshot. It understands the
// subset an animation frame dump needs: v, vt, f and usemtl. Normals,
// groups and mtllib references are skipped; material slots are assigned in
// order of first usemtl appearance.
//
// Faces are kept exactly as written, including non-triangles; the encoders
// are the ones that reject bad topology, so a quad in the input surfaces
// as a topology error at export time rather than here.
func ParseOBJ(data []byte) (*mesh.Snapshot, error) {
	snap := &mesh.Snapshot{}
	var texCoords []vmath.Vec2
	materialSlots := map[string]int{}
	currentMaterial := mesh.NoMaterial

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			snap.Vertices = append(snap.Vertices, v)

		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: texcoord: %w", lineNo, err)
			}
			texCoords = append(texCoords, uv)

		case "usemtl":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: usemtl without a name: %w", lineNo, ErrMalformedOBJ)
			}
			name := fields[1]
			slot, seen := materialSlots[name]
			if !seen {
				slot = len(snap.Materials)
				materialSlots[name] = slot
				snap.Materials = append(snap.Materials, name)
			}
			currentMaterial = slot

		case "f":
			face, err := parseFace(fields[1:], len(snap.Vertices), texCoords)
			if err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}
			face.Material = currentMaterial
			snap.Faces = append(snap.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	return snap, nil
}

// ParseOBJFile reads an OBJ snapshot from disk.
func ParseOBJFile(path string) (*mesh.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	snap, err := ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// OBJSequence is a frame source backed by one OBJ file per frame, in path
// order. Frames load lazily, one file per fetch.
type OBJSequence []string

// FrameCount returns the number of frame files.
func (s OBJSequence) FrameCount() int { return len(s) }

// Frame parses the i-th frame file.
func (s OBJSequence) Frame(i int) (*mesh.Snapshot, error) { return ParseOBJFile(s[i]) }

func parseVec3(fields []string) (vmath.Vec3, error) {
	if len(fields) < 3 {
		return vmath.Vec3{}, fmt.Errorf("expected 3 components, got %d: %w", len(fields), ErrMalformedOBJ)
	}
	var out [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return vmath.Vec3{}, fmt.Errorf("component %q: %w", fields[i], ErrMalformedOBJ)
		}
		out[i] = float32(f)
	}
	return vmath.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func parseVec2(fields []string) (vmath.Vec2, error) {
	if len(fields) < 2 {
		return vmath.Vec2{}, fmt.Errorf("expected 2 components, got %d: %w", len(fields), ErrMalformedOBJ)
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return vmath.Vec2{}, fmt.Errorf("component %q: %w", fields[0], ErrMalformedOBJ)
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return vmath.Vec2{}, fmt.Errorf("component %q: %w", fields[1], ErrMalformedOBJ)
	}
	return vmath.Vec2{X: float32(u), Y: float32(v)}, nil
}

// parseFace reads the corner list of an f statement. Corners may be "v",
// "v/vt", "v//vn" or "v/vt/vn"; indices are 1-based, negative values count
// back from the end of the respective table.
func parseFace(corners []string, vertexCount int, texCoords []vmath.Vec2) (mesh.Face, error) {
	face := mesh.Face{Material: mesh.NoMaterial}
	hasUV := false
	uvs := make([]vmath.Vec2, 0, len(corners))

	for _, corner := range corners {
		parts := strings.Split(corner, "/")

		vi, err := resolveIndex(parts[0], vertexCount)
		if err != nil {
			return mesh.Face{}, fmt.Errorf("corner %q: %w", corner, err)
		}
		face.Indices = append(face.Indices, vi)

		uv := vmath.Vec2{}
		if len(parts) > 1 && parts[1] != "" {
			ti, err := resolveIndex(parts[1], len(texCoords))
			if err != nil {
				return mesh.Face{}, fmt.Errorf("corner %q: %w", corner, err)
			}
			uv = texCoords[ti]
			hasUV = true
		}
		uvs = append(uvs, uv)
	}

	if hasUV {
		face.UVs = uvs
	}
	return face, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil || idx == 0 {
		return 0, fmt.Errorf("index %q: %w", s, ErrMalformedOBJ)
	}
	if idx < 0 {
		idx += count
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %q out of range (%d entries): %w", s, count, ErrMalformedOBJ)
	}
	return idx, nil
}
