package levfile

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vector3 is a 3-component single-precision vector.
type Vector3 = mgl32.Vec3

// Matrix is a 4x4 single-precision transform, stored in the order the
// components appear on the wire.
type Matrix = mgl32.Mat4

// Color is an RGBA color with floating-point channels. Colors decoded from
// packed bytes are normalized to the 0..1 range.
type Color struct {
	R, G, B, A float32
}

// BoundingBox is an axis-aligned volume described by its two extrema.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}
