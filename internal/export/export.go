// Package export orchestrates a full mesh export: encoding of the
// animation and data files, the Unreal package directory layout, and the
// companion UnrealScript class.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/unreal3d/internal/config"
	"github.com/Faultbox/unreal3d/internal/logger"
	"github.com/Faultbox/unreal3d/pkg/formats"
	"github.com/Faultbox/unreal3d/pkg/mesh"
)

// Result summarizes a finished export.
type Result struct {
	AnimFile  string
	DataFile  string
	ClassFile string
	Frames    int
	Vertices  int
	Faces     int
}

// Run exports the frame source under the configured package layout. Both
// output files are encoded completely in memory first and written
// atomically afterwards, so a failing export never leaves partial or
// corrupt files behind.
func Run(src mesh.Source, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enc, err := cfg.Export.Encoder()
	if err != nil {
		return nil, err
	}

	logger.Info("starting export",
		zap.String("package", cfg.Output.Package),
		zap.String("mesh", cfg.Output.Mesh),
		zap.String("format", enc.Format.String()),
		zap.Int("frames", src.FrameCount()),
	)

	anim, err := formats.EncodeAnim(src, enc)
	if err != nil {
		return nil, fmt.Errorf("encoding animation file: %w", err)
	}

	// Topology does not vary across frames, so the first frame serves as
	// the reference snapshot for the data file.
	ref, err := src.Frame(0)
	if err != nil {
		return nil, fmt.Errorf("loading reference frame: %w", err)
	}
	data, unknown, err := formats.EncodeData(ref, enc)
	if err != nil {
		return nil, fmt.Errorf("encoding data file: %w", err)
	}
	for _, u := range unknown {
		logger.Warn("material name has no mesh-type marker, face uses the default type",
			zap.Int("face", u.Face),
			zap.Int("slot", u.Slot),
			zap.String("material", u.Name),
		)
	}

	// Everything encoded; only now touch the filesystem.
	pkgDir := filepath.Join(cfg.Output.Dir, cfg.Output.Package)
	for _, sub := range []string{"Models", "Classes", "Skins", "Help"} {
		if err := os.MkdirAll(filepath.Join(pkgDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating package directory: %w", err)
		}
	}

	res := &Result{
		AnimFile:  filepath.Join(pkgDir, "Models", cfg.Output.Mesh+"_a.3d"),
		DataFile:  filepath.Join(pkgDir, "Models", cfg.Output.Mesh+"_d.3d"),
		ClassFile: filepath.Join(pkgDir, "Classes", cfg.Output.Mesh+".uc"),
		Frames:    src.FrameCount(),
		Vertices:  len(ref.Vertices),
		Faces:     len(ref.Faces),
	}

	if err := writeFileAtomic(res.AnimFile, anim); err != nil {
		return nil, fmt.Errorf("writing animation file: %w", err)
	}
	if err := writeFileAtomic(res.DataFile, data); err != nil {
		return nil, fmt.Errorf("writing data file: %w", err)
	}
	script := Script(cfg.Output.Mesh, src.FrameCount())
	if err := writeFileAtomic(res.ClassFile, []byte(script)); err != nil {
		return nil, fmt.Errorf("writing class file: %w", err)
	}

	logger.Info("export finished",
		zap.String("aniv", res.AnimFile),
		zap.Int("aniv_bytes", len(anim)),
		zap.String("data", res.DataFile),
		zap.Int("data_bytes", len(data)),
		zap.Int("vertices", res.Vertices),
		zap.Int("faces", res.Faces),
	)

	return res, nil
}

// Check runs the pre-flight validation of every frame without writing
// anything: scale range, coordinate range, finiteness, topology and frame
// consistency.
func Check(src mesh.Source, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	enc, err := cfg.Export.Encoder()
	if err != nil {
		return err
	}

	vertexCount := 0
	for i := 0; i < src.FrameCount(); i++ {
		snap, err := src.Frame(i)
		if err != nil {
			return fmt.Errorf("loading frame %d: %w", i, err)
		}
		if err := formats.Validate(snap, enc.Scale); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if i == 0 {
			vertexCount = len(snap.Vertices)
			if _, _, err := formats.EncodeData(snap, enc); err != nil {
				return err
			}
		} else if len(snap.Vertices) != vertexCount {
			return fmt.Errorf("frame %d has %d vertices, frame 0 has %d: %w",
				i, len(snap.Vertices), vertexCount, formats.ErrFrameMismatch)
		}
	}
	return nil
}

// writeFileAtomic writes data to a sibling temp file and renames it into
// place, so readers never observe a half-written file.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
