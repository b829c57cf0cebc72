package scene

import "github.com/go-gl/mathgl/mgl32"

// Shadow camera defaults for directional lights.
const (
	ShadowNear          = 0.5
	ShadowFar           = 500
	DefaultShadowRadius = 5
)

// upFor returns a world up vector that is not parallel to forward.
func upFor(forward mgl32.Vec3) mgl32.Vec3 {
	if abs32(forward.Dot(mgl32.Vec3{0, 1, 0})) > 0.999 {
		return mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{0, 1, 0}
}

// ShadowViewProj returns the orthographic view-projection a directional
// light renders its shadow map with: looking from Position to Target, with
// a square cross-section of half-size ShadowRadius (DefaultShadowRadius when
// unset).
func (l *Light) ShadowViewProj() mgl32.Mat4 {
	r := l.ShadowRadius
	if r <= 0 {
		r = DefaultShadowRadius
	}
	view := mgl32.LookAtV(l.Position, l.Target, upFor(l.Direction()))
	proj := mgl32.Ortho(-r, r, -r, r, ShadowNear, ShadowFar)
	return proj.Mul4(view)
}
