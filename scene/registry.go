package scene

// Registry keeps, per tag, an arena of the live nodes carrying that tag.
// Slots are stable for a node's lifetime; freed slots are reused. Broadcast
// updates iterate the arena instead of walking the whole graph, and because
// the arena is edited on every add/remove it always reflects the current
// scene.
type Registry struct {
	arenas map[Tag]*arena
}

type arena struct {
	slots []*Node
	free  []int
	live  int
}

func NewRegistry() *Registry {
	r := &Registry{arenas: make(map[Tag]*arena, len(Tags))}
	for _, t := range Tags {
		r.arenas[t] = &arena{}
	}
	return r
}

func (r *Registry) register(n *Node) {
	if n.tag == TagNone || n.slot >= 0 {
		return
	}
	a := r.arenas[n.tag]
	if k := len(a.free); k > 0 {
		n.slot = a.free[k-1]
		a.free = a.free[:k-1]
		a.slots[n.slot] = n
	} else {
		n.slot = len(a.slots)
		a.slots = append(a.slots, n)
	}
	a.live++
}

func (r *Registry) unregister(n *Node) {
	if n.tag == TagNone || n.slot < 0 {
		return
	}
	a := r.arenas[n.tag]
	if n.slot >= len(a.slots) || a.slots[n.slot] != n {
		n.slot = -1
		return
	}
	a.slots[n.slot] = nil
	a.free = append(a.free, n.slot)
	a.live--
	n.slot = -1
	a.trim()
}

// trim drops trailing empty slots so Last stays cheap.
func (a *arena) trim() {
	end := len(a.slots)
	for end > 0 && a.slots[end-1] == nil {
		end--
	}
	if end == len(a.slots) {
		return
	}
	a.slots = a.slots[:end]
	kept := a.free[:0]
	for _, idx := range a.free {
		if idx < end {
			kept = append(kept, idx)
		}
	}
	a.free = kept
}

// Count returns the number of live nodes with the tag.
func (r *Registry) Count(tag Tag) int {
	if a, ok := r.arenas[tag]; ok {
		return a.live
	}
	return 0
}

// Each calls fn for every live node with the tag, in slot order. fn must not
// add or remove nodes of the same tag.
func (r *Registry) Each(tag Tag, fn func(*Node)) {
	a, ok := r.arenas[tag]
	if !ok {
		return
	}
	for _, n := range a.slots {
		if n != nil {
			fn(n)
		}
	}
}

// Nodes returns a snapshot of the live nodes with the tag.
func (r *Registry) Nodes(tag Tag) []*Node {
	out := make([]*Node, 0, r.Count(tag))
	r.Each(tag, func(n *Node) { out = append(out, n) })
	return out
}

// Lookup returns the node at slot, or nil.
func (r *Registry) Lookup(tag Tag, slot int) *Node {
	a, ok := r.arenas[tag]
	if !ok || slot < 0 || slot >= len(a.slots) {
		return nil
	}
	return a.slots[slot]
}

// Last returns the live node with the highest slot, or nil when none are live.
func (r *Registry) Last(tag Tag) *Node {
	a, ok := r.arenas[tag]
	if !ok || len(a.slots) == 0 {
		return nil
	}
	return a.slots[len(a.slots)-1]
}
