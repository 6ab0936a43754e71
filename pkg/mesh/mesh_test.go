package mesh

import (
	"testing"

	vmath "github.com/Faultbox/unreal3d/pkg/math"
)

func TestMaterialName(t *testing.T) {
	snap := &Snapshot{
		Materials: []string{"Body(Skin)", "Glass(Translucent)"},
	}

	tests := []struct {
		name string
		slot int
		want string
	}{
		{"first slot", 0, "Body(Skin)"},
		{"second slot", 1, "Glass(Translucent)"},
		{"no material", NoMaterial, ""},
		{"out of range", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snap.MaterialName(tt.slot); got != tt.want {
				t.Errorf("MaterialName(%d) = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}

func TestSliceSource(t *testing.T) {
	frames := SliceSource{
		{Vertices: []vmath.Vec3{{X: 1}}},
		{Vertices: []vmath.Vec3{{X: 2}}},
	}

	if got := frames.FrameCount(); got != 2 {
		t.Fatalf("FrameCount() = %d, want 2", got)
	}

	snap, err := frames.Frame(1)
	if err != nil {
		t.Fatalf("Frame(1) returned error: %v", err)
	}
	if snap.Vertices[0].X != 2 {
		t.Errorf("Frame(1) vertex X = %v, want 2", snap.Vertices[0].X)
	}
}
