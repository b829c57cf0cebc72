package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
	"diorama/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded geometry.
type GPUMesh struct {
	VAO         uint32
	VBO         uint32
	NBO         uint32 // normals; zero for dynamic geometry
	EBO         uint32
	IndexCount  int32
	VertexCount int32
	HasIndices  bool
	Version     uint64
}

// Frame carries the per-frame lighting and fog state.
type Frame struct {
	Background core.Color
	CameraPos  mgl32.Vec3

	LightDir   mgl32.Vec3 // direction the light travels
	LightColor core.Color // already scaled by intensity
	Ambient    core.Color // already scaled by intensity

	FogEnabled bool
	FogColor   core.Color
	FogNear    float32
	FogFar     float32

	// Shadows is set when the shadow pass filled the depth map this frame.
	Shadows       bool
	LightViewProj mgl32.Mat4
}

// Renderer is the OpenGL rendering backend.
type Renderer struct {
	program uint32

	mvpLoc       int32
	modelLoc     int32
	cameraPosLoc int32

	lightDirLoc   int32
	lightColorLoc int32
	ambientLoc    int32

	albedoLoc    int32
	roughnessLoc int32
	metalnessLoc int32
	flatLoc      int32

	fogEnabledLoc int32
	fogColorLoc   int32
	fogNearLoc    int32
	fogFarLoc     int32

	lightViewProjLoc int32
	shadowMapLoc     int32
	shadowTexelLoc   int32
	hasShadowsLoc    int32
	receiveLoc       int32

	shadowProg  uint32
	lightMVPLoc int32
	shadowMap   *ShadowMap

	unlit *unlitProgram

	gpuMeshes map[*scene.Geometry]*GPUMesh

	viewportW int32
	viewportH int32
	wireframe bool
}

const meshVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;

uniform mat4 mvp;
uniform mat4 model;
uniform mat4 lightViewProj;

out vec3 worldPos;
out vec3 worldNormal;
out vec4 lightSpacePos;

void main() {
    vec4 wp       = model * vec4(inPosition, 1.0);
    worldPos      = wp.xyz;
    worldNormal   = mat3(transpose(inverse(model))) * inNormal;
    lightSpacePos = lightViewProj * wp;
    gl_Position   = mvp * vec4(inPosition, 1.0);
}
` + "\x00"

// Flat-shaded materials take the normal from screen-space derivatives of the
// world position, so every triangle is lit as one face. The shadow term is a
// 3x3 PCF over the directional light's depth map.
const meshFragSrc = `
#version 410 core
in vec3 worldPos;
in vec3 worldNormal;
in vec4 lightSpacePos;

uniform vec3  cameraPos;
uniform vec3  lightDir;
uniform vec3  lightColor;
uniform vec3  ambientColor;

uniform vec3  albedo;
uniform float roughness;
uniform float metalness;
uniform bool  flatShading;

uniform sampler2DShadow shadowMap;
uniform float shadowTexel;
uniform bool  hasShadows;
uniform bool  receiveShadow;

uniform bool  fogEnabled;
uniform vec3  fogColor;
uniform float fogNear;
uniform float fogFar;

out vec4 outColor;

float calcShadow() {
    vec3 p = lightSpacePos.xyz / lightSpacePos.w;
    p = p * 0.5 + 0.5;
    if (p.z > 1.0) return 1.0;
    float lit = 0.0;
    for (int x = -1; x <= 1; x++) {
        for (int y = -1; y <= 1; y++) {
            lit += texture(shadowMap, vec3(p.xy + vec2(float(x), float(y)) * shadowTexel, p.z - 0.002));
        }
    }
    return lit / 9.0;
}

void main() {
    vec3 N = flatShading
        ? normalize(cross(dFdx(worldPos), dFdy(worldPos)))
        : normalize(worldNormal);
    vec3 V = normalize(cameraPos - worldPos);
    if (dot(N, V) < 0.0) N = -N;
    vec3 L = normalize(-lightDir);
    vec3 H = normalize(L + V);

    float NdotL = max(dot(N, L), 0.0);
    vec3  F0    = mix(vec3(0.04), albedo, metalness);
    float shine = mix(256.0, 2.0, roughness);
    float spec  = pow(max(dot(N, H), 0.0), shine) * (1.0 - roughness);

    float shadow = (hasShadows && receiveShadow) ? calcShadow() : 1.0;

    vec3 diffuse = albedo * (1.0 - metalness) * NdotL;
    vec3 color   = shadow * (diffuse + F0 * spec) * lightColor + albedo * ambientColor;

    if (fogEnabled) {
        float d = length(cameraPos - worldPos);
        color = mix(color, fogColor, smoothstep(fogNear, fogFar, d));
    }
    outColor = vec4(color, 1.0);
}
` + "\x00"

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	unlit, err := newUnlitProgram()
	if err != nil {
		return nil, fmt.Errorf("unlit shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r := &Renderer{
		program:   prog,
		unlit:     unlit,
		gpuMeshes: make(map[*scene.Geometry]*GPUMesh),
	}
	r.mvpLoc = uniform(prog, "mvp")
	r.modelLoc = uniform(prog, "model")
	r.cameraPosLoc = uniform(prog, "cameraPos")
	r.lightDirLoc = uniform(prog, "lightDir")
	r.lightColorLoc = uniform(prog, "lightColor")
	r.ambientLoc = uniform(prog, "ambientColor")
	r.albedoLoc = uniform(prog, "albedo")
	r.roughnessLoc = uniform(prog, "roughness")
	r.metalnessLoc = uniform(prog, "metalness")
	r.flatLoc = uniform(prog, "flatShading")
	r.fogEnabledLoc = uniform(prog, "fogEnabled")
	r.fogColorLoc = uniform(prog, "fogColor")
	r.fogNearLoc = uniform(prog, "fogNear")
	r.fogFarLoc = uniform(prog, "fogFar")
	r.lightViewProjLoc = uniform(prog, "lightViewProj")
	r.shadowMapLoc = uniform(prog, "shadowMap")
	r.shadowTexelLoc = uniform(prog, "shadowTexel")
	r.hasShadowsLoc = uniform(prog, "hasShadows")
	r.receiveLoc = uniform(prog, "receiveShadow")

	gl.UseProgram(prog)
	gl.Uniform1i(r.shadowMapLoc, 0)
	ident := mgl32.Ident4()
	gl.UniformMatrix4fv(r.lightViewProjLoc, 1, false, &ident[0])
	return r, nil
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW, r.viewportH = int32(width), int32(height)
	gl.Viewport(0, 0, r.viewportW, r.viewportH)
}

// SetWireframe toggles polygon line mode.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) IsWireframe() bool { return r.wireframe }

// BeginFrame clears the framebuffer and uploads the per-frame uniforms.
func (r *Renderer) BeginFrame(f Frame) {
	bg := f.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform3f(r.cameraPosLoc, f.CameraPos[0], f.CameraPos[1], f.CameraPos[2])
	gl.Uniform3f(r.lightDirLoc, f.LightDir[0], f.LightDir[1], f.LightDir[2])
	gl.Uniform3f(r.lightColorLoc, f.LightColor.R, f.LightColor.G, f.LightColor.B)
	gl.Uniform3f(r.ambientLoc, f.Ambient.R, f.Ambient.G, f.Ambient.B)

	gl.Uniform1i(r.fogEnabledLoc, boolInt(f.FogEnabled))
	gl.Uniform3f(r.fogColorLoc, f.FogColor.R, f.FogColor.G, f.FogColor.B)
	gl.Uniform1f(r.fogNearLoc, f.FogNear)
	gl.Uniform1f(r.fogFarLoc, f.FogFar)

	shadows := f.Shadows && r.shadowMap != nil
	gl.Uniform1i(r.hasShadowsLoc, boolInt(shadows))
	if shadows {
		gl.UniformMatrix4fv(r.lightViewProjLoc, 1, false, &f.LightViewProj[0])
		gl.Uniform1f(r.shadowTexelLoc, 1/float32(r.shadowMap.Size))
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.shadowMap.DepthTex)
	}
}

// DrawMesh uploads the mesh geometry on first use (and again when a dynamic
// geometry changes), then draws it lit with the mesh material.
func (r *Renderer) DrawMesh(mesh *scene.Mesh, mvp, model mgl32.Mat4) {
	gpu := r.ensureUploaded(mesh.Geometry)
	if gpu == nil {
		return
	}

	m := mesh.Material
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
	gl.Uniform3f(r.albedoLoc, m.Color.R, m.Color.G, m.Color.B)
	gl.Uniform1f(r.roughnessLoc, m.Roughness)
	gl.Uniform1f(r.metalnessLoc, m.Metalness)
	gl.Uniform1i(r.flatLoc, boolInt(m.FlatShading))
	gl.Uniform1i(r.receiveLoc, boolInt(mesh.ReceiveShadow))
	gpu.draw()
}

func (gpu *GPUMesh) draw() {
	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(gl.TRIANGLES, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, gpu.VertexCount)
	}
	gl.BindVertexArray(0)
}

// DrawPoints draws a DrawPoints mesh as round sprites whose size shrinks
// with distance.
func (r *Renderer) DrawPoints(mesh *scene.Mesh, mvp mgl32.Mat4) {
	gpu := r.ensureUploaded(mesh.Geometry)
	if gpu == nil {
		return
	}
	r.unlit.use(mvp, mesh.Material.Color, mesh.Material.PointSize*float32(r.viewportH)/2, true)
	gl.BindVertexArray(gpu.VAO)
	gl.DrawArrays(gl.POINTS, 0, gpu.VertexCount)
	gl.BindVertexArray(0)
}

// DrawLines draws world-space line segments in a flat colour.
func (r *Renderer) DrawLines(positions []float32, vp mgl32.Mat4, color core.Color) {
	r.unlit.drawLines(positions, vp, color)
}

// ReleaseGeometry frees GPU buffers for the given geometry.
func (r *Renderer) ReleaseGeometry(g *scene.Geometry) {
	if gpu, ok := r.gpuMeshes[g]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.NBO != 0 {
			gl.DeleteBuffers(1, &gpu.NBO)
		}
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(r.gpuMeshes, g)
		g.GPUData = nil
	}
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	for g := range r.gpuMeshes {
		r.ReleaseGeometry(g)
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
	}
	if r.shadowProg != 0 {
		gl.DeleteProgram(r.shadowProg)
	}
	r.unlit.destroy()
	gl.DeleteProgram(r.program)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// ensureUploaded uploads position/normal/index data if not already done,
// and re-uploads dynamic geometry whose version moved on. Static geometry is
// assumed not to change after its first draw.
func (r *Renderer) ensureUploaded(g *scene.Geometry) *GPUMesh {
	if gpu, ok := r.gpuMeshes[g]; ok {
		if g.Dynamic && gpu.Version != g.Version {
			gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
			if len(g.Positions) > 0 {
				gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, gl.Ptr(g.Positions), gl.DYNAMIC_DRAW)
			}
			gl.BindBuffer(gl.ARRAY_BUFFER, 0)
			gpu.VertexCount = int32(g.VertexCount())
			gpu.Version = g.Version
		}
		if gpu.VertexCount == 0 {
			return nil
		}
		return gpu
	}
	if len(g.Positions) == 0 && !g.Dynamic {
		return nil
	}

	usage := uint32(gl.STATIC_DRAW)
	if g.Dynamic {
		usage = gl.DYNAMIC_DRAW
	}

	gpu := &GPUMesh{
		IndexCount:  int32(len(g.Indices)),
		VertexCount: int32(g.VertexCount()),
		HasIndices:  len(g.Indices) > 0,
		Version:     g.Version,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	if len(g.Positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, gl.Ptr(g.Positions), usage)
	}

	// location 0: Position (vec3), tightly packed
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	// location 1: Normal (vec3); static geometry only
	if !g.Dynamic && len(g.Positions) > 0 {
		normals := scene.ComputeNormals(g)
		gl.GenBuffers(1, &gpu.NBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, gpu.NBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(normals)*4, gl.Ptr(normals), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	}

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	r.gpuMeshes[g] = gpu
	g.GPUData = gpu
	if gpu.VertexCount == 0 {
		return nil
	}
	return gpu
}
