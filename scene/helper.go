package scene

import "github.com/go-gl/mathgl/mgl32"

// HelperLines returns line-segment endpoints (x, y, z pairs) outlining a
// directional light: a square of half-size size facing the target, and a
// line from its centre to the target.
func (l *Light) HelperLines(size float32) []float32 {
	forward := l.Direction()
	right := forward.Cross(upFor(forward)).Normalize().Mul(size)
	up := right.Cross(forward).Normalize().Mul(size)

	p := l.Position
	corners := [4]mgl32.Vec3{
		p.Add(right).Add(up),
		p.Sub(right).Add(up),
		p.Sub(right).Sub(up),
		p.Add(right).Sub(up),
	}
	lines := make([]float32, 0, 5*2*3)
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		lines = append(lines, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	lines = append(lines, p[0], p[1], p[2], l.Target[0], l.Target[1], l.Target[2])
	return lines
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
