package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Faultbox/unreal3d/pkg/mesh"
)

// Animation file errors.
var (
	ErrNoFrames      = errors.New("animation has no frames")
	ErrTooManyFrames = errors.New("frame count exceeds 16-bit header field")
	ErrFrameTooLarge = errors.New("frame byte size exceeds 16-bit header field")
	ErrFrameMismatch = errors.New("frame vertex count mismatch")
)

// AnimHeaderSize is the byte length of the animation file header: a 16-bit
// frame count followed by a 16-bit per-frame byte size.
const AnimHeaderSize = 4

// EncodeAnim builds the complete animation file (_a.3d): header, then one
// packed field per vertex per frame, frames and vertices in input order,
// little-endian throughout. Frames are pulled from src one at a time and
// validated before any of their bytes are emitted.
//
// Every frame must have the vertex count of the first frame; the format
// has no per-frame length field, so a mismatch is fatal.
func EncodeAnim(src mesh.Source, cfg ExportConfig) ([]byte, error) {
	frameCount := src.FrameCount()
	if frameCount <= 0 {
		return nil, ErrNoFrames
	}
	if frameCount > 0xFFFF {
		return nil, fmt.Errorf("%w: %d frames", ErrTooManyFrames, frameCount)
	}
	width := cfg.Format.FieldSize()
	if width == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertexFormat, int(cfg.Format))
	}

	var buf bytes.Buffer
	vertexCount := 0

	for i := 0; i < frameCount; i++ {
		snap, err := src.Frame(i)
		if err != nil {
			return nil, fmt.Errorf("loading frame %d: %w", i, err)
		}
		if err := Validate(snap, cfg.Scale); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		if i == 0 {
			vertexCount = len(snap.Vertices)
			frameSize := vertexCount * width
			if frameSize > 0xFFFF {
				return nil, fmt.Errorf("%w: %d vertices * %d bytes", ErrFrameTooLarge, vertexCount, width)
			}
			binary.Write(&buf, binary.LittleEndian, uint16(frameCount))
			binary.Write(&buf, binary.LittleEndian, uint16(frameSize))
		} else if len(snap.Vertices) != vertexCount {
			return nil, fmt.Errorf("frame %d has %d vertices, frame 0 has %d: %w",
				i, len(snap.Vertices), vertexCount, ErrFrameMismatch)
		}

		for _, v := range snap.Vertices {
			packed := PackVertex(TransformPoint(v, cfg), cfg.Format)
			if width == 8 {
				binary.Write(&buf, binary.LittleEndian, packed)
			} else {
				binary.Write(&buf, binary.LittleEndian, uint32(packed))
			}
		}
	}

	return buf.Bytes(), nil
}
