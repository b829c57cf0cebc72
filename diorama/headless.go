package diorama

import (
	"io"
	"log"
	"time"

	"diorama/scene"
)

// HeadlessRenderer walks the visible scene like a real backend would and
// records what it would have drawn. Useful without a display and in tests.
type HeadlessRenderer struct {
	Logger      *log.Logger
	LogInterval time.Duration // zero disables periodic stats

	Frames    int
	Objects   int
	Triangles int
	Points    int

	lastLog time.Time
	now     func() time.Time
}

func NewHeadlessRenderer(logger *log.Logger, interval time.Duration) *HeadlessRenderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &HeadlessRenderer{Logger: logger, LogInterval: interval, now: time.Now}
}

func (h *HeadlessRenderer) Render(s *scene.Scene) error {
	objects, triangles, points := 0, 0, 0
	for _, node := range s.GetVisibleNodes() {
		g := node.Mesh.Geometry
		if g == nil {
			continue
		}
		objects++
		switch node.Mesh.DrawMode {
		case scene.DrawPoints:
			points += g.VertexCount()
		default:
			if len(g.Indices) > 0 {
				triangles += len(g.Indices) / 3
			} else {
				triangles += g.VertexCount() / 3
			}
		}
	}
	h.Frames++
	h.Objects, h.Triangles, h.Points = objects, triangles, points

	if h.LogInterval > 0 && h.now != nil {
		if now := h.now(); now.Sub(h.lastLog) >= h.LogInterval {
			h.lastLog = now
			h.Logger.Printf("frame %d: %d objects, %d triangles, %d points",
				h.Frames, objects, triangles, points)
		}
	}
	return nil
}
