package formats

import (
	"errors"
	"fmt"

	"github.com/Faultbox/unreal3d/pkg/mesh"
)

// Validation errors.
var (
	ErrInvalidScale         = errors.New("export scale must be positive")
	ErrCoordinateOutOfRange = errors.New("vertex coordinate out of range")
	ErrNonFiniteCoordinate  = errors.New("non-finite coordinate")
)

// Validate checks that every vertex of the snapshot is finite and fits the
// packer's representable range at the given scale: |c| < 128/scale per
// axis, strict. It fails fast on the first offending vertex, naming the
// vertex, axis and value.
//
// Run this before committing any output; PackVertex masks out-of-range
// values silently.
func Validate(snap *mesh.Snapshot, scale float32) error {
	if scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	limit := 128 / scale

	for i, v := range snap.Vertices {
		if !v.IsFinite() {
			return fmt.Errorf("vertex %d position (%v, %v, %v): %w",
				i, v.X, v.Y, v.Z, ErrNonFiniteCoordinate)
		}
		axes := [3]struct {
			name  string
			value float32
		}{
			{"x", v.X},
			{"y", v.Y},
			{"z", v.Z},
		}
		for _, a := range axes {
			if a.value >= limit || a.value <= -limit {
				return fmt.Errorf("vertex %d: %s = %v exceeds ±%v (128 units at scale %v): %w",
					i, a.name, a.value, limit, scale, ErrCoordinateOutOfRange)
			}
		}
	}
	return nil
}
