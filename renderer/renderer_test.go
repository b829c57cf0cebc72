package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"diorama/scene"
)

func TestHelperSquareSize(t *testing.T) {
	sun := &scene.Light{Type: scene.LightTypeDirectional, Position: mgl32.Vec3{20, 10, 10}}
	lines := sun.HelperLines(HelperSize)
	corner := mgl32.Vec3{lines[0], lines[1], lines[2]}
	got := corner.Sub(sun.Position).Len()
	want := float32(HelperSize * math.Sqrt2)
	if math.Abs(float64(got-want)) > 1e-3 {
		t.Errorf("helper corner %v from the light, want %v", got, want)
	}
}
