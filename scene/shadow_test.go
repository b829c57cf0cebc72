package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func inClip(p mgl32.Vec3) bool {
	return p.X() >= -1 && p.X() <= 1 && p.Y() >= -1 && p.Y() <= 1 && p.Z() >= -1 && p.Z() <= 1
}

func TestShadowViewProjCentresTarget(t *testing.T) {
	positions := []mgl32.Vec3{
		{0, 10, 0}, // straight above: up vector falls back to +Z
		{20, 10, 10},
		{-7, 10, 3},
	}
	for _, pos := range positions {
		l := &Light{Type: LightTypeDirectional, Position: pos, ShadowRadius: 10}
		p := mgl32.TransformCoordinate(mgl32.Vec3{}, l.ShadowViewProj())
		if abs32(p.X()) > 1e-4 || abs32(p.Y()) > 1e-4 {
			t.Errorf("light at %v: target should map to the shadow map centre, got %v", pos, p)
		}
		if !inClip(p) {
			t.Errorf("light at %v: target outside the depth range: %v", pos, p)
		}
	}
}

func TestShadowViewProjRadius(t *testing.T) {
	l := &Light{Type: LightTypeDirectional, Position: mgl32.Vec3{0, 10, 0}}
	vp := l.ShadowViewProj()
	if !inClip(mgl32.TransformCoordinate(mgl32.Vec3{4, 0, 0}, vp)) {
		t.Error("point inside the default radius should be covered")
	}
	if inClip(mgl32.TransformCoordinate(mgl32.Vec3{6, 0, 0}, vp)) {
		t.Error("point beyond the default radius should fall outside")
	}

	l.ShadowRadius = 10
	if !inClip(mgl32.TransformCoordinate(mgl32.Vec3{6, 0, 6}, l.ShadowViewProj())) {
		t.Error("larger radius should cover the point")
	}
}

func TestComputeNormals(t *testing.T) {
	for i, v := range chunk3(ComputeNormals(CreatePlane(2, 2, 3, 3))) {
		if v != (mgl32.Vec3{0, 0, 1}) {
			t.Fatalf("plane vertex %d: expected +Z normal, got %v", i, v)
		}
	}

	for i, v := range chunk3(ComputeNormals(CreateBox(1, 1, 1, 2, 2, 2))) {
		if l := v.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("box vertex %d: normal not unit length: %v", i, v)
		}
	}

	cyl := CreateCylinder(1, 1, 2, 32)
	n := chunk3(ComputeNormals(cyl))[1] // bottom of the seam at +Z
	if n.Z() < 0.9 || abs32(n.Y()) > 1e-4 {
		t.Errorf("cylinder side normal should point outward along +Z, got %v", n)
	}
}

func chunk3(v []float32) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(v)/3)
	for i := 0; i+2 < len(v); i += 3 {
		out = append(out, mgl32.Vec3{v[i], v[i+1], v[i+2]})
	}
	return out
}
