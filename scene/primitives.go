package scene

import (
	stdmath "math"

	"diorama/core"
)

var defaultColor = core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1.0}

// CreateBox generates a box centred on the origin. Every face is its own
// (segX+1)*(segY+1) vertex grid, so face vertices are not shared across
// edges. Grid coordinates are computed as i*extent/segments - extent/2, which
// puts the outermost rows exactly on ±extent/2.
func CreateBox(width, height, depth float32, widthSegs, heightSegs, depthSegs int) *Geometry {
	widthSegs = max(widthSegs, 1)
	heightSegs = max(heightSegs, 1)
	depthSegs = max(depthSegs, 1)

	b := &boxBuilder{}
	// +X, -X
	b.face(2, 1, 0, -1, -1, depth, height, width, depthSegs, heightSegs)
	b.face(2, 1, 0, 1, -1, depth, height, -width, depthSegs, heightSegs)
	// +Y, -Y
	b.face(0, 2, 1, 1, 1, width, depth, height, widthSegs, depthSegs)
	b.face(0, 2, 1, 1, -1, width, depth, -height, widthSegs, depthSegs)
	// +Z, -Z
	b.face(0, 1, 2, 1, -1, width, height, depth, widthSegs, heightSegs)
	b.face(0, 1, 2, -1, -1, width, height, -depth, widthSegs, heightSegs)

	return NewGeometry("Box", b.positions, b.indices)
}

type boxBuilder struct {
	positions []float32
	indices   []uint32
}

// face appends one side of the box. u, v, w are axis indices (0=X, 1=Y, 2=Z);
// the face lies at w = depth/2 and spans width along u and height along v.
func (b *boxBuilder) face(u, v, w int, udir, vdir float32, width, height, depth float32, gridX, gridY int) {
	base := uint32(len(b.positions) / 3)
	halfW := width / 2
	halfH := height / 2
	halfD := depth / 2

	for iy := 0; iy <= gridY; iy++ {
		y := float32(iy)*height/float32(gridY) - halfH
		for ix := 0; ix <= gridX; ix++ {
			x := float32(ix)*width/float32(gridX) - halfW
			var p [3]float32
			p[u] = x * udir
			p[v] = y * vdir
			p[w] = halfD
			b.positions = append(b.positions, p[0], p[1], p[2])
		}
	}

	row := uint32(gridX + 1)
	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := base + uint32(ix) + row*uint32(iy)
			bb := base + uint32(ix) + row*uint32(iy+1)
			c := base + uint32(ix+1) + row*uint32(iy+1)
			d := base + uint32(ix+1) + row*uint32(iy)
			b.indices = append(b.indices, a, bb, d, bb, c, d)
		}
	}
}

// CreatePlane generates a plane in the XY plane facing +Z, centred on the origin.
func CreatePlane(width, height float32, widthSegs, heightSegs int) *Geometry {
	widthSegs = max(widthSegs, 1)
	heightSegs = max(heightSegs, 1)

	var positions []float32
	var indices []uint32

	halfW := width / 2.0
	halfH := height / 2.0

	for iy := 0; iy <= heightSegs; iy++ {
		y := float32(iy)*height/float32(heightSegs) - halfH
		for ix := 0; ix <= widthSegs; ix++ {
			x := float32(ix)*width/float32(widthSegs) - halfW
			positions = append(positions, x, -y, 0)
		}
	}

	row := uint32(widthSegs + 1)
	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := uint32(ix) + row*uint32(iy)
			b := uint32(ix) + row*uint32(iy+1)
			c := uint32(ix+1) + row*uint32(iy+1)
			d := uint32(ix+1) + row*uint32(iy)
			indices = append(indices, a, b, d, b, c, d)
		}
	}

	return NewGeometry("Plane", positions, indices)
}

// CreateCylinder generates a capped cylinder along Y, centred on the origin.
// A zero top radius produces a cone without a top cap.
func CreateCylinder(radiusTop, radiusBottom, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}

	var positions []float32
	var indices []uint32
	halfHeight := height / 2.0

	ring := func(i int, r, y float32) (float32, float32, float32) {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		return float32(stdmath.Sin(theta)) * r, y, float32(stdmath.Cos(theta)) * r
	}

	// Side: rings of (segments+1) vertices so the seam closes.
	for i := 0; i <= segments; i++ {
		x, y, z := ring(i, radiusTop, halfHeight)
		positions = append(positions, x, y, z)
		x, y, z = ring(i, radiusBottom, -halfHeight)
		positions = append(positions, x, y, z)
	}
	for i := 0; i < segments; i++ {
		top := uint32(i * 2)
		bottom := top + 1
		indices = append(indices, top, bottom, top+2)
		indices = append(indices, bottom, bottom+2, top+2)
	}

	addCap := func(r, y float32, up bool) {
		if r <= 0 {
			return
		}
		center := uint32(len(positions) / 3)
		positions = append(positions, 0, y, 0)
		for i := 0; i <= segments; i++ {
			x, yy, z := ring(i, r, y)
			positions = append(positions, x, yy, z)
		}
		for i := 0; i < segments; i++ {
			a := center + 1 + uint32(i)
			if up {
				indices = append(indices, center, a, a+1)
			} else {
				indices = append(indices, center, a+1, a)
			}
		}
	}
	addCap(radiusTop, halfHeight, true)
	addCap(radiusBottom, -halfHeight, false)

	return NewGeometry("Cylinder", positions, indices)
}

// CreateCone generates a cone along Y with its base centred at -height/2.
func CreateCone(radius, height float32, segments int) *Geometry {
	g := CreateCylinder(0, radius, height, segments)
	g.Name = "Cone"
	return g
}
