package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

/**
 * @brief A 2D affine transform, used to carry the UV transform of a
 * material. Column-major basis vectors plus a translation.
 */
type Affine2 struct {
	/** @brief The x basis vector. */
	XAxis Vec2
	/** @brief The y basis vector. */
	YAxis Vec2
	/** @brief The translation. */
	Translation Vec2
}

// Affine2Identity returns the identity transform.
func Affine2Identity() Affine2 {
	return Affine2{
		XAxis: Vec2{X: 1, Y: 0},
		YAxis: Vec2{X: 0, Y: 1},
	}
}

// Affine2FromScale returns a transform scaling by s, no rotation or
// translation.
func Affine2FromScale(s Vec2) Affine2 {
	return Affine2{
		XAxis: Vec2{X: s.X, Y: 0},
		YAxis: Vec2{X: 0, Y: s.Y},
	}
}

// IsIdentity reports whether the transform is exactly the identity.
func (a Affine2) IsIdentity() bool {
	return a == Affine2Identity()
}
