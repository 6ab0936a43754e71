package formats

import (
	"errors"
	"testing"

	vmath "github.com/Faultbox/unreal3d/pkg/math"
	"github.com/Faultbox/unreal3d/pkg/mesh"
)

const sampleOBJ = `# frame dump
mtllib ignored.mtl
o cube_part
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
usemtl Body(Skin)
f 1/1/1 2/2/1 3/3/1
usemtl Glass(Translucent)
f 1/1 2/2 4/3
usemtl Body(Skin)
f -4 -3 -1
`

func TestParseOBJ(t *testing.T) {
	snap, err := ParseOBJ([]byte(sampleOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}

	if len(snap.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(snap.Vertices))
	}
	if snap.Vertices[1] != (vmath.Vec3{X: 1}) {
		t.Errorf("vertex 1 = %v, want (1, 0, 0)", snap.Vertices[1])
	}

	if len(snap.Faces) != 3 {
		t.Fatalf("faces = %d, want 3", len(snap.Faces))
	}

	// material slots in order of first usemtl appearance, reused on repeat
	wantMaterials := []string{"Body(Skin)", "Glass(Translucent)"}
	if len(snap.Materials) != len(wantMaterials) {
		t.Fatalf("materials = %v, want %v", snap.Materials, wantMaterials)
	}
	for i, want := range wantMaterials {
		if snap.Materials[i] != want {
			t.Errorf("material %d = %q, want %q", i, snap.Materials[i], want)
		}
	}
	if snap.Faces[0].Material != 0 || snap.Faces[1].Material != 1 || snap.Faces[2].Material != 0 {
		t.Errorf("face materials = (%d, %d, %d), want (0, 1, 0)",
			snap.Faces[0].Material, snap.Faces[1].Material, snap.Faces[2].Material)
	}

	// indices are converted to 0-based; negative indices resolve from the end
	wantIndices := [][]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 3}}
	for i, want := range wantIndices {
		got := snap.Faces[i].Indices
		if len(got) != len(want) {
			t.Fatalf("face %d indices = %v, want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("face %d index %d = %d, want %d", i, j, got[j], want[j])
			}
		}
	}

	if snap.Faces[0].UVs == nil {
		t.Fatal("face 0 has no UVs")
	}
	if snap.Faces[0].UVs[1] != (vmath.Vec2{X: 1}) {
		t.Errorf("face 0 corner 1 uv = %v, want (1, 0)", snap.Faces[0].UVs[1])
	}
	// face written without vt references carries no UV layer
	if snap.Faces[2].UVs != nil {
		t.Errorf("face 2 UVs = %v, want nil", snap.Faces[2].UVs)
	}
}

func TestParseOBJKeepsNonTriangles(t *testing.T) {
	data := []byte("v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")

	snap, err := ParseOBJ(data)
	if err != nil {
		t.Fatalf("ParseOBJ() error: %v", err)
	}
	if len(snap.Faces[0].Indices) != 4 {
		t.Fatalf("quad face indices = %d, want 4", len(snap.Faces[0].Indices))
	}

	// the topology error belongs to the encoder, not the reader
	_, _, err = EncodeData(snap, ExportConfig{Scale: 1})
	if !errors.Is(err, ErrNonTriangleFace) {
		t.Errorf("EncodeData() = %v, want non-triangle error", err)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad vertex float", "v 0 x 0\n"},
		{"short vertex", "v 0 1\n"},
		{"bad texcoord", "vt a 0\n"},
		{"face index zero", "v 0 0 0\nf 0 1 1\n"},
		{"face index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"texcoord index out of range", "v 0 0 0\nvt 0 0\nf 1/1 1/2 1/1\n"},
		{"usemtl without name", "usemtl\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ([]byte(tt.data))
			if !errors.Is(err, ErrMalformedOBJ) {
				t.Errorf("ParseOBJ() = %v, want malformed OBJ error", err)
			}
		})
	}
}

func TestOBJSequenceIsSource(t *testing.T) {
	var _ mesh.Source = OBJSequence(nil)

	seq := OBJSequence{"a.obj", "b.obj", "c.obj"}
	if got := seq.FrameCount(); got != 3 {
		t.Errorf("FrameCount() = %d, want 3", got)
	}
}
