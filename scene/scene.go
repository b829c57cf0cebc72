package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
)

// Scene manages a collection of nodes, the active camera and lighting.
type Scene struct {
	Root       *Node
	Camera     *Camera
	Lights     []*Light
	Ambient    *Light
	Background core.Color
	Fog        Fog
	Registry   *Registry
}

// Fog is linear distance fog between Near and Far.
type Fog struct {
	Enabled bool
	Color   core.Color
	Near    float32
	Far     float32
}

// Light types
const (
	LightTypeDirectional = iota
	LightTypeAmbient
)

// Light represents a light source. Directional lights shine from Position
// towards Target.
type Light struct {
	Type       int
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	Color      core.Color
	Intensity  float32
	ShowHelper bool

	CastShadow   bool
	ShadowRadius float32 // half-size of the shadow camera, world units
}

// LookAt re-aims the light at target.
func (l *Light) LookAt(target mgl32.Vec3) {
	l.Target = target
}

// Direction is the unit vector the light travels along.
func (l *Light) Direction() mgl32.Vec3 {
	d := l.Target.Sub(l.Position)
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

func NewScene() *Scene {
	return &Scene{
		Root:       NewNode("Root", TagNone),
		Lights:     make([]*Light, 0),
		Background: core.ColorBlack,
		Registry:   NewRegistry(),
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// AddNode attaches node under the root and registers its whole subtree.
func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
	node.Traverse(s.Registry.register)
}

// RemoveNode detaches node and unregisters its whole subtree.
func (s *Scene) RemoveNode(node *Node) {
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
	node.Traverse(s.Registry.unregister)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// DirectionalLight returns the first directional light, or nil.
func (s *Scene) DirectionalLight() *Light {
	for _, l := range s.Lights {
		if l.Type == LightTypeDirectional {
			return l
		}
	}
	return nil
}

// GetVisibleNodes returns all nodes with meshes whose whole ancestry is visible.
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node
	s.Root.TraverseVisible(func(node *Node) {
		if node.Mesh != nil {
			visible = append(visible, node)
		}
	})
	return visible
}

// Find returns every node under the root with the tag by walking the graph.
// Registry.Each is the fast path; this exists to cross-check it.
func (s *Scene) Find(tag Tag) []*Node {
	var out []*Node
	s.Root.Traverse(func(n *Node) {
		if n.tag == tag && tag != TagNone {
			out = append(out, n)
		}
	})
	return out
}
