package scene

import (
	"fmt"

	"diorama/core"
)

// SnowCeiling is the exclusive upper bound of a particle's spawn height.
const SnowCeiling = 10

// SnowField integrates a fixed-size cloud of falling particles over a square
// footprint. Positions and Velocities hold 3 floats per particle; the
// renderer reads Positions through Geometry.
type SnowField struct {
	Positions  []float32
	Velocities []float32
	Geometry   *Geometry
	Visible    bool

	halfExtent float32
	rng        *core.RNG
}

// NewSnowField allocates and seeds count particles over [-halfExtent, halfExtent]
// on X and Z.
func NewSnowField(count int, halfExtent float32, rng *core.RNG) *SnowField {
	s := &SnowField{
		Visible:    true,
		halfExtent: halfExtent,
		rng:        rng,
	}
	s.Geometry = NewGeometry("Snow", nil, nil)
	s.Geometry.Dynamic = true
	s.Reseed(count)
	return s
}

// Count returns the number of particles.
func (s *SnowField) Count() int { return len(s.Positions) / 3 }

// HalfExtent returns the current horizontal wrap bound.
func (s *SnowField) HalfExtent() float32 { return s.halfExtent }

// SetHalfExtent changes the wrap bound. Particles outside it wrap on the next Step.
func (s *SnowField) SetHalfExtent(h float32) { s.halfExtent = h }

// Reseed discards both buffers and draws count fresh particles.
func (s *SnowField) Reseed(count int) {
	count = max(count, 0)
	positions := make([]float32, count*3)
	velocities := make([]float32, count*3)
	h := s.halfExtent
	for i := 0; i < len(positions); i += 3 {
		positions[i] = s.rng.Range(-h, h)
		positions[i+1] = s.rng.Range(0, SnowCeiling)
		positions[i+2] = s.rng.Range(-h, h)

		velocities[i] = s.rng.Range(0, 0.02)
		velocities[i+1] = -s.rng.Range(0.01, 0.05)
		velocities[i+2] = s.rng.Range(0, 0.02)
	}
	s.attach(positions, velocities)
}

// SetBuffers installs caller-supplied buffers. It panics when they are not
// the same whole number of particles.
func (s *SnowField) SetBuffers(positions, velocities []float32) {
	s.attach(positions, velocities)
}

func (s *SnowField) attach(positions, velocities []float32) {
	if len(positions)%3 != 0 || len(positions) != len(velocities) {
		panic(fmt.Sprintf("scene: snow buffers mismatched: %d positions, %d velocities",
			len(positions), len(velocities)))
	}
	s.Positions = positions
	s.Velocities = velocities
	s.Geometry.SetPositions(positions)
}

// Step advances every particle by velocity*speed and recycles the ones that
// left the volume: horizontal overruns wrap to the opposite edge and
// particles below the ground respawn at a random height.
func (s *SnowField) Step(speed float32) {
	h := s.halfExtent
	p, v := s.Positions, s.Velocities
	for i := 0; i < len(p); i += 3 {
		p[i] += v[i] * speed
		p[i+1] += v[i+1] * speed
		p[i+2] += v[i+2] * speed

		p[i] = wrap(p[i], h)
		p[i+2] = wrap(p[i+2], h)
		if p[i+1] < 0 {
			p[i+1] = s.rng.Range(0, SnowCeiling)
		}
	}
	s.Geometry.Touch()
}

func wrap(x, h float32) float32 {
	switch {
	case x > h:
		return -h
	case x < -h:
		return h
	}
	return x
}
