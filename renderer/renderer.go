package renderer

import (
	"fmt"

	"diorama/core"
	"diorama/internal/opengl"
	"diorama/scene"
)

// HelperSize is the half-size of the square drawn by the light helper.
const HelperSize = 10

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastPoints    int
	lastCulled    int
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(window.Width, window.Height)

	if err := glRenderer.EnableShadows(opengl.ShadowMapSize); err != nil {
		fmt.Printf("Shadow map init failed (continuing without shadows): %v\n", err)
	} else {
		fmt.Printf("Shadow mapping enabled (%dx%d, PCF 3x3)\n", opengl.ShadowMapSize, opengl.ShadowMapSize)
	}

	fmt.Println("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
	}, nil
}

// Render fills the sun's shadow map, draws every visible mesh of s from its
// camera, then the light helper when enabled.
func (re *RenderEngine) Render(s *scene.Scene) error {
	if s == nil || s.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	frame := opengl.Frame{
		Background: s.Background,
		CameraPos:  s.Camera.Position,
		FogEnabled: s.Fog.Enabled,
		FogColor:   s.Fog.Color,
		FogNear:    s.Fog.Near,
		FogFar:     s.Fog.Far,
	}
	sun := s.DirectionalLight()
	if sun != nil {
		frame.LightDir = sun.Direction()
		frame.LightColor = sun.Color.Scale(sun.Intensity)
	}
	nodes := s.GetVisibleNodes()

	// Shadow pass, before the default framebuffer is cleared.
	if sun != nil && sun.CastShadow && re.gl.HasShadowMap() {
		lightVP := sun.ShadowViewProj()
		re.gl.BeginShadowPass()
		for _, node := range nodes {
			if node.Mesh.Geometry == nil || !node.Mesh.CastShadow || node.Mesh.DrawMode != scene.DrawTriangles {
				continue
			}
			re.gl.DrawMeshShadow(node.Mesh, lightVP.Mul4(node.GetWorldMatrix()))
		}
		re.gl.EndShadowPass()
		frame.Shadows = true
		frame.LightViewProj = lightVP
	}
	if s.Ambient != nil {
		frame.Ambient = s.Ambient.Color.Scale(s.Ambient.Intensity)
	}
	re.gl.BeginFrame(frame)

	view := s.Camera.GetViewMatrix()
	proj := s.Camera.GetProjectionMatrix()
	vp := proj.Mul4(view)

	frustum := scene.FrustumFromVP(vp)

	objects, vertices, triangles, points, culled := 0, 0, 0, 0, 0
	for _, node := range nodes {
		g := node.Mesh.Geometry
		if g == nil {
			continue
		}
		model := node.GetWorldMatrix()
		// Dynamic geometry moves every frame; it is never culled.
		if !g.Dynamic && !scene.WorldAABB(g, model).IntersectsFrustum(&frustum) {
			culled++
			continue
		}
		mvp := vp.Mul4(model)

		switch node.Mesh.DrawMode {
		case scene.DrawPoints:
			re.gl.DrawPoints(node.Mesh, mvp)
			points += g.VertexCount()
		default:
			re.gl.DrawMesh(node.Mesh, mvp, model)
			triangles += len(g.Indices) / 3
		}
		objects++
		vertices += g.VertexCount()
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	re.lastPoints = points
	re.lastCulled = culled

	if sun != nil && sun.ShowHelper {
		re.gl.DrawLines(sun.HelperLines(HelperSize), vp, sun.Color)
	}
	return nil
}

// Present swaps buffers. Call after Render.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// Resize follows a framebuffer resize.
func (re *RenderEngine) Resize(width, height int) {
	re.gl.SetViewport(width, height)
}

// SetWireframe toggles wireframe rendering mode on/off.
func (re *RenderEngine) SetWireframe(enabled bool) {
	re.gl.SetWireframe(enabled)
}

// IsWireframe returns whether wireframe mode is currently active.
func (re *RenderEngine) IsWireframe() bool {
	return re.gl.IsWireframe()
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles, points int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles, re.lastPoints
}

// Culled returns how many nodes the last Render skipped as off-screen.
func (re *RenderEngine) Culled() int { return re.lastCulled }
