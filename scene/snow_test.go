package scene

import (
	"testing"

	"diorama/core"
)

func TestSnowFieldSeedBounds(t *testing.T) {
	s := NewSnowField(500, 5, core.NewRNG(1))
	if s.Count() != 500 {
		t.Fatalf("expected 500 particles, got %d", s.Count())
	}
	for i := 0; i < len(s.Positions); i += 3 {
		x, y, z := s.Positions[i], s.Positions[i+1], s.Positions[i+2]
		if x < -5 || x >= 5 || z < -5 || z >= 5 {
			t.Fatalf("particle %d outside footprint: (%v, %v)", i/3, x, z)
		}
		if y < 0 || y >= SnowCeiling {
			t.Fatalf("particle %d height out of range: %v", i/3, y)
		}
		vx, vy, vz := s.Velocities[i], s.Velocities[i+1], s.Velocities[i+2]
		if vx < 0 || vx >= 0.02 || vz < 0 || vz >= 0.02 {
			t.Fatalf("particle %d horizontal drift out of range: (%v, %v)", i/3, vx, vz)
		}
		if vy > -0.01 || vy <= -0.05 {
			t.Fatalf("particle %d fall speed out of range: %v", i/3, vy)
		}
	}
}

func TestSnowFieldWrapsExactly(t *testing.T) {
	s := NewSnowField(0, 5, core.NewRNG(1))
	s.SetBuffers(
		[]float32{5, 3, 5},
		[]float32{0.01, -0.01, 0.015},
	)
	s.Step(1)

	if s.Positions[0] != -5 {
		t.Errorf("x: expected exact wrap to -5, got %v", s.Positions[0])
	}
	if s.Positions[2] != -5 {
		t.Errorf("z: expected exact wrap to -5, got %v", s.Positions[2])
	}
	y, vy := float32(3), float32(-0.01)
	if want := y + vy; s.Positions[1] != want {
		t.Errorf("y: expected %v, got %v", want, s.Positions[1])
	}
}

func TestSnowFieldRespawnsBelowGround(t *testing.T) {
	s := NewSnowField(0, 5, core.NewRNG(7))
	s.SetBuffers([]float32{0, 0.001, 0}, []float32{0, -0.05, 0})
	s.Step(1)

	if y := s.Positions[1]; y < 0 || y >= SnowCeiling {
		t.Errorf("expected respawn height in [0, %d), got %v", SnowCeiling, y)
	}
}

func TestSnowFieldSpeedScalesStep(t *testing.T) {
	s := NewSnowField(0, 5, core.NewRNG(1))
	start := []float32{0, 5, 0}
	vel := []float32{0.01, -0.02, 0.01}
	want := make([]float32, 3)
	for k := range want {
		want[k] = start[k] + vel[k]*2
	}
	s.SetBuffers(append([]float32(nil), start...), vel)
	s.Step(2)

	for k, w := range want {
		if s.Positions[k] != w {
			t.Errorf("component %d: expected %v, got %v", k, w, s.Positions[k])
		}
	}
	s.Step(0)
	for k, w := range want {
		if s.Positions[k] != w {
			t.Errorf("speed 0 moved component %d: expected %v, got %v", k, w, s.Positions[k])
		}
	}
}

func TestSnowFieldReseedReplacesBuffers(t *testing.T) {
	s := NewSnowField(200, 5, core.NewRNG(3))
	old := s.Positions

	s.Reseed(50)
	if len(s.Positions) != 50*3 {
		t.Errorf("positions: expected length %d, got %d", 50*3, len(s.Positions))
	}
	if len(s.Velocities) != 50*3 {
		t.Errorf("velocities: expected length %d, got %d", 50*3, len(s.Velocities))
	}
	if cap(s.Positions) != 50*3 {
		t.Errorf("positions kept capacity %d from the previous buffer", cap(s.Positions))
	}
	if &old[0] == &s.Positions[0] {
		t.Error("Reseed reused the previous position buffer")
	}
	if s.Geometry.VertexCount() != 50 {
		t.Errorf("geometry: expected 50 vertices, got %d", s.Geometry.VertexCount())
	}
}

func TestSnowFieldMismatchedBuffersPanic(t *testing.T) {
	s := NewSnowField(0, 5, core.NewRNG(1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched buffers")
		}
	}()
	s.SetBuffers(make([]float32, 6), make([]float32, 3))
}

func TestSnowFieldStepBumpsGeometryVersion(t *testing.T) {
	s := NewSnowField(10, 5, core.NewRNG(1))
	before := s.Geometry.Version
	s.Step(1)
	if s.Geometry.Version == before {
		t.Error("Step should mark the geometry dirty")
	}
}
