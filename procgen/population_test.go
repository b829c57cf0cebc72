package procgen

import (
	"testing"

	"diorama/scene"
)

func newPopulation(seed int64) *Population {
	return &Population{
		Scene:      scene.NewScene(),
		Factory:    newFactory(seed),
		GroundSize: func() float32 { return 10 },
	}
}

func TestPopulationConverges(t *testing.T) {
	p := newPopulation(5)
	targets := []int{20, 0, 100, 37, 37, 1, 99, 0, 64, 3}
	for _, target := range targets {
		p.Reconcile(target)
		if got := p.Count(); got != target {
			t.Fatalf("target %d: registry counts %d trees", target, got)
		}
		if got := len(p.Scene.Find(scene.TagTree)); got != target {
			t.Fatalf("target %d: graph holds %d trees", target, got)
		}
		if trunks := p.Scene.Registry.Count(scene.TagTrunk); trunks != target {
			t.Fatalf("target %d: %d trunks live", target, trunks)
		}
	}
}

func TestPopulationEveryTarget(t *testing.T) {
	p := newPopulation(6)
	for target := 0; target <= 100; target++ {
		p.Reconcile(target)
		if p.Count() != target {
			t.Fatalf("ascending to %d: got %d", target, p.Count())
		}
	}
	for target := 100; target >= 0; target-- {
		p.Reconcile(target)
		if p.Count() != target {
			t.Fatalf("descending to %d: got %d", target, p.Count())
		}
	}
}

func TestPopulationAddedRemoved(t *testing.T) {
	p := newPopulation(7)
	if added, removed := p.Reconcile(10); added != 10 || removed != 0 {
		t.Errorf("grow: expected 10/0, got %d/%d", added, removed)
	}
	if added, removed := p.Reconcile(4); added != 0 || removed != 6 {
		t.Errorf("shrink: expected 0/6, got %d/%d", added, removed)
	}
	if added, removed := p.Reconcile(-3); added != 0 || removed != 4 || p.Count() != 0 {
		t.Errorf("negative: expected 0/4 and empty, got %d/%d count %d", added, removed, p.Count())
	}
	if p.Scene.Registry.Count(scene.TagLeaves) != 0 {
		t.Error("leaves left behind after removing every tree")
	}
}
