package scene

import (
	"math"
	"testing"
)

func TestCreateBoxCounts(t *testing.T) {
	box := CreateBox(1, 1, 1, 10, 1, 10)

	// ±X and ±Z faces are 11x2 grids, ±Y faces are 11x11.
	if got, want := box.VertexCount(), 2*22+2*121+2*22; got != want {
		t.Errorf("VertexCount: expected %d, got %d", want, got)
	}
	if got, want := len(box.Indices), 2*(60+600+60); got != want {
		t.Errorf("indices: expected %d, got %d", want, got)
	}
	for _, idx := range box.Indices {
		if int(idx) >= box.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestCreateBoxPerimeterIsExact(t *testing.T) {
	box := CreateBox(1, 1, 1, 10, 1, 10)
	min, max := box.Bounds()
	for k := 0; k < 3; k++ {
		if min[k] != -0.5 || max[k] != 0.5 {
			t.Errorf("axis %d: expected bounds [-0.5, 0.5], got [%v, %v]", k, min[k], max[k])
		}
	}

	// Every vertex on the ±X and ±Z faces must sit exactly on the footprint edge.
	var onEdge, topInterior int
	for i := 0; i < len(box.Positions); i += 3 {
		x, y, z := box.Positions[i], box.Positions[i+1], box.Positions[i+2]
		if x == 0.5 || x == -0.5 || z == 0.5 || z == -0.5 {
			onEdge++
		} else if y == 0.5 {
			topInterior++
		}
	}
	if topInterior != 81 {
		t.Errorf("expected 81 interior top vertices, got %d", topInterior)
	}
	// 330 total minus 81 interior on each of the two Y faces.
	if onEdge != 330-2*81 {
		t.Errorf("expected %d perimeter vertices, got %d", 330-2*81, onEdge)
	}
}

func TestCreatePlaneFacesZ(t *testing.T) {
	plane := CreatePlane(2, 4, 1, 1)
	if plane.VertexCount() != 4 {
		t.Fatalf("expected 4 vertices, got %d", plane.VertexCount())
	}
	min, max := plane.Bounds()
	if min != [3]float32{-1, -2, 0} || max != [3]float32{1, 2, 0} {
		t.Errorf("unexpected bounds %v %v", min, max)
	}
}

func TestCreateConeApex(t *testing.T) {
	cone := CreateCone(1, 1, 6)
	_, max := cone.Bounds()
	if max[1] != 0.5 {
		t.Errorf("apex: expected y=0.5, got %v", max[1])
	}
	for i := 0; i < len(cone.Positions); i += 3 {
		x, y, z := cone.Positions[i], cone.Positions[i+1], cone.Positions[i+2]
		if y == 0.5 && (x != 0 || z != 0) {
			t.Errorf("vertex at apex height is off axis: (%v, %v, %v)", x, y, z)
		}
		r := math.Hypot(float64(x), float64(z))
		if r > 1.0001 {
			t.Errorf("vertex outside base radius: %v", r)
		}
	}
}

func TestNewGeometryRejectsPartialVertex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a position buffer that is not a multiple of 3")
		}
	}()
	NewGeometry("Broken", []float32{0, 1}, nil)
}
