package ambientcg

import (
	"errors"
)

var (
	// ErrNotFound is returned by a ByteSource when no file exists at the
	// requested path.
	ErrNotFound = errors.New("file not found")
	// ErrResolutionUnavailable is returned when no resolution at or below
	// the requested one is present on disk.
	ErrResolutionUnavailable = errors.New("no suitable resolution found")
	// ErrMissingSlot is returned when a texture slot required by the caller
	// is absent at the selected resolution.
	ErrMissingSlot = errors.New("missing texture slot")
	// ErrDimensionMismatch is returned when the roughness and metalness
	// sources disagree on dimensions. Sources are never resized.
	ErrDimensionMismatch = errors.New("channel dimension mismatch")
	// ErrDecodeFailure is returned when the codec rejects a slot's bytes.
	ErrDecodeFailure = errors.New("image decode failed")
	// ErrRegistrationFailure is returned when the texture or material
	// registry rejects a buffer.
	ErrRegistrationFailure = errors.New("registration failed")
)
