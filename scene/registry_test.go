package scene

import "testing"

func newTree() *Node {
	tree := NewNode("Tree", TagTree)
	tree.AddChild(NewNode("Trunk", TagTrunk))
	tree.AddChild(NewNode("Leaves", TagLeaves))
	tree.AddChild(NewNode("Leaves", TagLeaves))
	return tree
}

func TestRegistryTracksSubtrees(t *testing.T) {
	s := NewScene()
	a, b, c := newTree(), newTree(), newTree()
	s.AddNode(a)
	s.AddNode(b)
	s.AddNode(c)

	if got := s.Registry.Count(TagTree); got != 3 {
		t.Errorf("Count(tree): expected 3, got %d", got)
	}
	if got := s.Registry.Count(TagLeaves); got != 6 {
		t.Errorf("Count(leaves): expected 6, got %d", got)
	}

	s.RemoveNode(b)
	if got := s.Registry.Count(TagTree); got != 2 {
		t.Errorf("Count(tree) after remove: expected 2, got %d", got)
	}
	if got := s.Registry.Count(TagTrunk); got != 2 {
		t.Errorf("Count(trunk) after remove: expected 2, got %d", got)
	}
	for _, child := range b.Children {
		if child.Live() {
			t.Errorf("child %q of removed tree still live", child.Name)
		}
	}
	if b.Live() {
		t.Error("removed tree still live")
	}
}

func TestRegistryReusesFreedSlots(t *testing.T) {
	s := NewScene()
	a, b, c := newTree(), newTree(), newTree()
	s.AddNode(a)
	s.AddNode(b)
	s.AddNode(c)

	freed := b.Slot()
	s.RemoveNode(b)

	d := newTree()
	s.AddNode(d)
	if d.Slot() != freed {
		t.Errorf("expected freed slot %d to be reused, got %d", freed, d.Slot())
	}
	if s.Registry.Lookup(TagTree, freed) != d {
		t.Error("Lookup did not return the node in the reused slot")
	}
}

func TestRegistryLast(t *testing.T) {
	s := NewScene()
	if s.Registry.Last(TagTree) != nil {
		t.Error("Last on an empty arena should be nil")
	}

	a, b := newTree(), newTree()
	s.AddNode(a)
	s.AddNode(b)
	if s.Registry.Last(TagTree) != b {
		t.Error("Last should return the highest live slot")
	}

	s.RemoveNode(b)
	if s.Registry.Last(TagTree) != a {
		t.Error("Last should skip trailing freed slots")
	}
	s.RemoveNode(a)
	if s.Registry.Last(TagTree) != nil {
		t.Error("Last should be nil once every node is removed")
	}
}

func TestRegistryMatchesGraphWalk(t *testing.T) {
	s := NewScene()
	var trees []*Node
	for i := 0; i < 10; i++ {
		tree := newTree()
		trees = append(trees, tree)
		s.AddNode(tree)
	}
	for i := 0; i < len(trees); i += 3 {
		s.RemoveNode(trees[i])
	}

	for _, tag := range []Tag{TagTree, TagTrunk, TagLeaves} {
		walked := s.Find(tag)
		if len(walked) != s.Registry.Count(tag) {
			t.Errorf("%s: registry has %d, graph walk found %d", tag, s.Registry.Count(tag), len(walked))
		}
		seen := make(map[*Node]bool)
		s.Registry.Each(tag, func(n *Node) { seen[n] = true })
		for _, n := range walked {
			if !seen[n] {
				t.Errorf("%s: node %d found by walk but missing from registry", tag, n.Id)
			}
		}
	}
}

func TestNewNodeRejectsUnknownTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown tag")
		}
	}()
	NewNode("Bogus", Tag("rock"))
}

func TestHiddenSubtreeSkipped(t *testing.T) {
	s := NewScene()
	tree := newTree()
	for _, c := range tree.Children {
		c.Mesh = NewMesh(CreateCone(1, 1, 6), nil)
	}
	s.AddNode(tree)

	if got := len(s.GetVisibleNodes()); got != 3 {
		t.Errorf("expected 3 visible meshes, got %d", got)
	}
	tree.Visible = false
	if got := len(s.GetVisibleNodes()); got != 0 {
		t.Errorf("expected hidden tree to contribute no meshes, got %d", got)
	}
}
