package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawMode controls the OpenGL primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // gl.TRIANGLES (default)
	DrawPoints                    // gl.POINTS
)

// Geometry holds CPU-side vertex data as a flat position buffer
// (x, y, z per vertex) plus optional triangle indices. Geometries are shared
// between meshes; GPU upload is keyed on the *Geometry.
type Geometry struct {
	Name      string
	Positions []float32
	Indices   []uint32

	// Dynamic geometries are re-uploaded whenever Version changes.
	Dynamic bool
	Version uint64

	// GPUData is set by the renderer backend.
	GPUData interface{}

	aabb        AABB
	aabbVersion uint64
	aabbValid   bool
}

// NewGeometry wraps a position buffer. It panics when the buffer is not a
// whole number of vertices.
func NewGeometry(name string, positions []float32, indices []uint32) *Geometry {
	if len(positions)%3 != 0 {
		panic(fmt.Sprintf("scene: geometry %q has %d position floats, not a multiple of 3", name, len(positions)))
	}
	return &Geometry{
		Name:      name,
		Positions: positions,
		Indices:   indices,
	}
}

// VertexCount returns the number of vertices in the position buffer.
func (g *Geometry) VertexCount() int { return len(g.Positions) / 3 }

// SetPositions swaps in a new position buffer and bumps the version.
func (g *Geometry) SetPositions(positions []float32) {
	if len(positions)%3 != 0 {
		panic(fmt.Sprintf("scene: geometry %q given %d position floats", g.Name, len(positions)))
	}
	g.Positions = positions
	g.Version++
}

// Touch marks in-place edits to the position buffer.
func (g *Geometry) Touch() { g.Version++ }

// Bounds returns the axis-aligned extent of the position buffer.
func (g *Geometry) Bounds() (min, max [3]float32) {
	if len(g.Positions) < 3 {
		return
	}
	copy(min[:], g.Positions[:3])
	copy(max[:], g.Positions[:3])
	for i := 3; i+2 < len(g.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := g.Positions[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return
}

// Mesh pairs a geometry with the material it is drawn with.
// CastShadow and ReceiveShadow only apply to triangle meshes.
type Mesh struct {
	Geometry *Geometry
	Material *Material
	DrawMode DrawMode

	CastShadow    bool
	ReceiveShadow bool
}

func NewMesh(geometry *Geometry, material *Material) *Mesh {
	if material == nil {
		material = NewStandardMaterial("Default", defaultColor, 0.5, 0)
	}
	return &Mesh{Geometry: geometry, Material: material}
}

// NewPoints builds a point-cloud mesh.
func NewPoints(geometry *Geometry, material *Material) *Mesh {
	m := NewMesh(geometry, material)
	m.DrawMode = DrawPoints
	return m
}

// ComputeNormals returns per-vertex normals (x, y, z per vertex) averaged
// from the faces that share each vertex, weighted by face area. Geometry
// without indices is read as consecutive triangles. Vertices that belong to
// no face get a zero normal.
func ComputeNormals(g *Geometry) []float32 {
	normals := make([]float32, len(g.Positions))
	at := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{g.Positions[3*i], g.Positions[3*i+1], g.Positions[3*i+2]}
	}
	face := func(a, b, c uint32) {
		pa := at(a)
		n := at(b).Sub(pa).Cross(at(c).Sub(pa))
		for _, i := range [3]uint32{a, b, c} {
			normals[3*i] += n[0]
			normals[3*i+1] += n[1]
			normals[3*i+2] += n[2]
		}
	}
	if len(g.Indices) > 0 {
		for i := 0; i+2 < len(g.Indices); i += 3 {
			face(g.Indices[i], g.Indices[i+1], g.Indices[i+2])
		}
	} else {
		for i := uint32(0); int(i)+2 < g.VertexCount(); i += 3 {
			face(i, i+1, i+2)
		}
	}
	for i := 0; i+2 < len(normals); i += 3 {
		n := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}
		if l := n.Len(); l > 0 {
			normals[i], normals[i+1], normals[i+2] = n[0]/l, n[1]/l, n[2]/l
		}
	}
	return normals
}
