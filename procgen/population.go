package procgen

import "diorama/scene"

// Population keeps the number of live trees in a scene equal to a target.
type Population struct {
	Scene   *scene.Scene
	Factory *TreeFactory

	// GroundSize is read at spawn time so new trees land on the current footprint.
	GroundSize func() float32
}

// Count returns the number of live tree roots.
func (p *Population) Count() int {
	return p.Scene.Registry.Count(scene.TagTree)
}

// Reconcile spawns or removes trees until exactly target remain. Negative
// targets are treated as zero. Removal takes the most recently slotted tree
// first; which trees go is otherwise unspecified.
func (p *Population) Reconcile(target int) (added, removed int) {
	target = max(target, 0)
	for p.Count() < target {
		p.Factory.Spawn(p.Scene, p.GroundSize())
		added++
	}
	for p.Count() > target {
		tree := p.Scene.Registry.Last(scene.TagTree)
		if tree == nil {
			break
		}
		p.Scene.RemoveNode(tree)
		removed++
	}
	return added, removed
}
