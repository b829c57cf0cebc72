package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitCameraSyncKeepsPosition(t *testing.T) {
	cam := NewCamera(mgl32.DegToRad(75), 16.0/9.0, 0.1, 100)
	cam.SetPosition(mgl32.Vec3{0, 2, 5})

	orbit := NewOrbitCamera(cam)
	orbit.UpdatePosition()

	if !cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 2, 5}, 1e-4) {
		t.Errorf("expected camera to stay at (0,2,5) after sync, got %v", cam.Position)
	}
	want := float32(math.Sqrt(29))
	if math.Abs(float64(orbit.Distance-want)) > 1e-4 {
		t.Errorf("distance: expected %v, got %v", want, orbit.Distance)
	}
}

func TestOrbitCameraZoomClamps(t *testing.T) {
	cam := NewCamera(1, 1, 0.1, 100)
	cam.SetPosition(mgl32.Vec3{0, 0, 5})
	orbit := NewOrbitCamera(cam)

	orbit.Zoom(-100)
	if orbit.Distance != orbit.MinDistance {
		t.Errorf("expected distance clamped to %v, got %v", orbit.MinDistance, orbit.Distance)
	}
	orbit.Zoom(1000)
	if orbit.Distance != orbit.MaxDistance {
		t.Errorf("expected distance clamped to %v, got %v", orbit.MaxDistance, orbit.Distance)
	}
}

func TestCameraAspectIgnoresZeroHeight(t *testing.T) {
	cam := NewCamera(1, 2, 0.1, 100)
	cam.UpdateAspectRatio(800, 0)
	if cam.AspectRatio != 2 {
		t.Errorf("expected aspect unchanged, got %v", cam.AspectRatio)
	}
	cam.UpdateAspectRatio(800, 400)
	if cam.AspectRatio != 2 {
		t.Errorf("expected aspect 2, got %v", cam.AspectRatio)
	}
}
