package ambientcg

import (
	"fmt"

	"github.com/spaghettifunk/ambientcg/resources"
)

const (
	// MetallicFill is written to the blue channel when no metalness source
	// exists: the surface is treated as non-metallic.
	MetallicFill uint8 = 0x00
	// RoughnessFill is written to the green channel when no roughness source
	// exists: the surface is treated as fully rough.
	RoughnessFill uint8 = 0xFF
)

// PackRoughnessMetallic merges two grayscale sources into the combined
// metallic/roughness image a PBR shader samples: R unused (zero),
// G = roughness, B = metalness. Either source may be nil, in which case its
// channel is filled with a constant default; at least one must be present.
// When both are present their dimensions must match exactly, sources are
// never resized. The output is written in one pass, one allocation, so
// packing a 16K pair stays a single walk over the pixels.
func PackRoughnessMetallic(rough, metal *resources.ChannelBuffer) (*resources.ImageData, error) {
	if rough == nil && metal == nil {
		return nil, fmt.Errorf("%w: neither roughness nor metalness present", ErrMissingSlot)
	}
	if rough != nil && metal != nil &&
		(rough.Width != metal.Width || rough.Height != metal.Height) {
		return nil, fmt.Errorf("%w: roughness %dx%d vs metalness %dx%d",
			ErrDimensionMismatch, rough.Width, rough.Height, metal.Width, metal.Height)
	}

	ref := rough
	if ref == nil {
		ref = metal
	}

	out := &resources.ImageData{
		ChannelCount: 3,
		Width:        ref.Width,
		Height:       ref.Height,
		Pixels:       make([]uint8, int(ref.Width)*int(ref.Height)*3),
	}

	n := int(ref.Width) * int(ref.Height)
	for i := 0; i < n; i++ {
		g := RoughnessFill
		if rough != nil {
			g = rough.Pixels[i]
		}
		b := MetallicFill
		if metal != nil {
			b = metal.Pixels[i]
		}
		out.Pixels[i*3+1] = g
		out.Pixels[i*3+2] = b
	}
	return out, nil
}
