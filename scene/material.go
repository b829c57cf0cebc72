package scene

import "diorama/core"

// Material describes surface appearance. Roughness/Metalness follow the
// metallic-roughness convention; PointSize only applies to DrawPoints meshes.
type Material struct {
	Name        string
	Color       core.Color
	Roughness   float32 // 0 = mirror, 1 = fully diffuse
	Metalness   float32 // 0 = dielectric, 1 = metal
	FlatShading bool
	PointSize   float32
}

// NewStandardMaterial creates a metallic-roughness material.
func NewStandardMaterial(name string, color core.Color, roughness, metalness float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		Roughness: roughness,
		Metalness: metalness,
	}
}

// NewPointsMaterial creates an unlit material for point clouds.
func NewPointsMaterial(name string, color core.Color, size float32) *Material {
	return &Material{
		Name:      name,
		Color:     color,
		PointSize: size,
	}
}

// Clone returns an independent copy.
func (m *Material) Clone() *Material {
	c := *m
	return &c
}
