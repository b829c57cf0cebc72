package procgen

import (
	"fmt"

	"diorama/core"
	"diorama/scene"
)

// Terrain tessellation and displacement used by NewTerrainGeometry.
const (
	TerrainSegments     = 10
	TerrainDisplaceProb = 0.34
	TerrainDisplaceLo   = -0.5
	TerrainDisplaceHi   = 0.5
)

// Perturb adds U[lo, hi) to the Y of each non-perimeter vertex with
// probability p and returns how many vertices moved. A vertex is on the
// perimeter when its X equals ±halfX or its Z equals ±halfZ; the comparison
// is exact, so call Perturb once on freshly built geometry. Repeated calls
// keep roughening the surface.
func Perturb(positions []float32, halfX, halfZ float32, p float64, lo, hi float32, rng *core.RNG) int {
	if len(positions)%3 != 0 {
		panic(fmt.Sprintf("procgen: %d position floats is not a whole number of vertices", len(positions)))
	}
	moved := 0
	for i := 0; i < len(positions); i += 3 {
		x, z := positions[i], positions[i+2]
		if x == halfX || x == -halfX || z == halfZ || z == -halfZ {
			continue
		}
		if !rng.Chance(p) {
			continue
		}
		positions[i+1] += rng.Range(lo, hi)
		moved++
	}
	return moved
}

// NewTerrainGeometry builds the unit ground block and roughens its interior.
// The footprint is resized later through the node's scale.
func NewTerrainGeometry(rng *core.RNG) (*scene.Geometry, int) {
	g := scene.CreateBox(1, 1, 1, TerrainSegments, 1, TerrainSegments)
	g.Name = "Terrain"
	moved := Perturb(g.Positions, 0.5, 0.5, TerrainDisplaceProb, TerrainDisplaceLo, TerrainDisplaceHi, rng)
	g.Touch()
	return g, moved
}
