package main

import (
	"diorama/core"
	"diorama/scene"
)

// orbitController turns a left-drag into orbit and the wheel into zoom.
type orbitController struct {
	orbit *scene.OrbitCamera

	lookSpeed  float32
	zoomSpeed  float32
	lastMouseX float64
	lastMouseY float64
	dragging   bool
}

func newOrbitController(orbit *scene.OrbitCamera) *orbitController {
	return &orbitController{
		orbit:     orbit,
		lookSpeed: 0.005,
		zoomSpeed: 0.5,
	}
}

func (oc *orbitController) Update(window *core.Window) {
	if !window.IsMouseButtonPressed(core.MouseLeft) {
		oc.dragging = false
		return
	}
	mouseX, mouseY := window.GetCursorPos()
	if !oc.dragging {
		oc.lastMouseX, oc.lastMouseY = mouseX, mouseY
		oc.dragging = true
		return
	}
	dx := float32(mouseX - oc.lastMouseX)
	dy := float32(mouseY - oc.lastMouseY)
	oc.lastMouseX, oc.lastMouseY = mouseX, mouseY
	if dx != 0 || dy != 0 {
		oc.orbit.Orbit(-dx*oc.lookSpeed, dy*oc.lookSpeed)
	}
}

// Scroll is installed as the window scroll callback.
func (oc *orbitController) Scroll(_, yoff float64) {
	oc.orbit.Zoom(-float32(yoff) * oc.zoomSpeed)
}
