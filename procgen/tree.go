package procgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
	"diorama/scene"
)

// Tree shape constants.
const (
	TrunkRadius   = 0.1
	TrunkHeight   = 1.0
	TreeSegments  = 6
	MinLeafLayers = 2
	MaxLeafLayers = 5
	TreeMargin    = 1.0
	TreeTilt      = 0.05
)

// TreeFactory builds composite trees: a tree root holding one trunk and
// 2 to 5 stacked leaf cones. Geometry is shared by every tree; each trunk and
// leaves node gets its own copy of the template material current at spawn
// time, so templates must be kept in step with broadcast bindings.
type TreeFactory struct {
	TrunkGeometry  *scene.Geometry
	LeavesGeometry *scene.Geometry
	TrunkMaterial  *scene.Material
	LeavesMaterial *scene.Material

	rng *core.RNG
}

func NewTreeFactory(rng *core.RNG, trunk, leaves *scene.Material) *TreeFactory {
	return &TreeFactory{
		TrunkGeometry:  scene.CreateCylinder(TrunkRadius, TrunkRadius, TrunkHeight, TreeSegments),
		LeavesGeometry: scene.CreateCone(1, 1, TreeSegments),
		TrunkMaterial:  trunk,
		LeavesMaterial: leaves,
		rng:            rng,
	}
}

// Build returns a detached tree placed somewhere on a ground of the given
// size. Use Spawn to add it to a scene.
func (f *TreeFactory) Build(groundSize float32) *scene.Node {
	tree := scene.NewNode("Tree", scene.TagTree)

	trunk := scene.NewNode("Trunk", scene.TagTrunk)
	trunk.Mesh = scene.NewMesh(f.TrunkGeometry, f.TrunkMaterial.Clone())
	trunk.Mesh.CastShadow, trunk.Mesh.ReceiveShadow = true, true
	trunk.Transform.Position[1] = -TrunkHeight / 2
	tree.AddChild(trunk)

	layers := f.rng.IntRange(MinLeafLayers, MaxLeafLayers)
	for i := 1; i <= layers; i++ {
		leaves := scene.NewNode("Leaves", scene.TagLeaves)
		leaves.Mesh = scene.NewMesh(f.LeavesGeometry, f.LeavesMaterial.Clone())
		leaves.Mesh.CastShadow, leaves.Mesh.ReceiveShadow = true, true
		leaves.Transform.Position[1] = LeafHeight(i)
		leaves.Transform.SetUniformScale(LeafScale(i))
		leaves.Transform.Rotation = f.tilt()
		tree.AddChild(leaves)
	}

	lo, hi := PlacementRange(groundSize)
	tree.Transform.Position = mgl32.Vec3{
		f.rng.Range(lo, hi),
		f.rng.Range(1.5, 2),
		f.rng.Range(lo, hi),
	}
	tree.Transform.SetUniformScale(f.rng.Range(1.5, 2))
	tree.Transform.Rotation = f.tilt()
	return tree
}

// Spawn builds a tree and adds it, with its trunk and leaves, to s.
func (f *TreeFactory) Spawn(s *scene.Scene, groundSize float32) *scene.Node {
	tree := f.Build(groundSize)
	s.AddNode(tree)
	return tree
}

func (f *TreeFactory) tilt() mgl32.Vec3 {
	return mgl32.Vec3{f.rng.Jitter(TreeTilt), f.rng.Jitter(TreeTilt), f.rng.Jitter(TreeTilt)}
}

// LeafHeight is the vertical offset of leaf layer i (1-based).
func LeafHeight(i int) float32 {
	return float32(math.Pow(float64(i), 0.25)) - 1
}

// LeafScale is the uniform scale of leaf layer i (1-based).
func LeafScale(i int) float32 {
	return 1 / float32(i+1)
}

// PlacementRange returns the horizontal interval trees are placed in on a
// ground of the given size. The margin shrinks to zero on grounds too small
// to afford it.
func PlacementRange(groundSize float32) (lo, hi float32) {
	half := groundSize / 2
	margin := float32(TreeMargin)
	if half < margin {
		margin = 0
	}
	return -half + margin, half - margin
}
