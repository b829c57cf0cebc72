package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
)

// Node represents an object in the scene graph
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Visible   bool
	Id        uint32

	tag  Tag
	slot int // index in the registry arena for tag, -1 while detached
}

var nodeIdCounter uint32 = 0

// NewNode creates a detached node. It panics on a tag outside the closed set.
func NewNode(name string, tag Tag) *Node {
	if !tag.Valid() {
		panic(fmt.Sprintf("scene: unknown tag %q", string(tag)))
	}
	nodeIdCounter++
	return &Node{
		Name:      name,
		Transform: core.NewTransform(),
		Children:  make([]*Node, 0),
		Visible:   true,
		Id:        nodeIdCounter,
		tag:       tag,
		slot:      -1,
	}
}

// Tag returns the node's structural tag, fixed at construction.
func (n *Node) Tag() Tag { return n.tag }

// Slot returns the node's stable registry index, or -1 when it is not live in a scene.
func (n *Node) Slot() int { return n.slot }

// Live reports whether the node is currently registered with a scene.
func (n *Node) Live() bool { return n.slot >= 0 }

// AddChild attaches child to n. Build a subtree before adding it to a Scene;
// children attached to a node that is already live are not registered.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// GetWorldMatrix composes local transforms up to the root. Transforms are
// edited in place by parameter bindings, so nothing is cached.
func (n *Node) GetWorldMatrix() mgl32.Mat4 {
	local := n.Transform.GetMatrix()
	if n.Parent != nil {
		return n.Parent.GetWorldMatrix().Mul4(local)
	}
	return local
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.GetWorldMatrix().Col(3).Vec3()
}

func (n *Node) SetPosition(pos mgl32.Vec3) {
	n.Transform.Position = pos
}

func (n *Node) SetScale(scale mgl32.Vec3) {
	n.Transform.Scale = scale
}

// Traverse visits all nodes in the graph
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// TraverseVisible visits n and its descendants, skipping hidden subtrees.
func (n *Node) TraverseVisible(callback func(*Node)) {
	if !n.Visible {
		return
	}
	callback(n)
	for _, child := range n.Children {
		child.TraverseVisible(callback)
	}
}
