package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"diorama/core"
)

// Flat-colour shader shared by point sprites and debug lines.
const unlitVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;

uniform mat4  mvp;
uniform float pointScale;

void main() {
    gl_Position  = mvp * vec4(inPosition, 1.0);
    gl_PointSize = pointScale / max(gl_Position.w, 0.0001);
}
` + "\x00"

// Points are cut to a disc; lines draw solid.
const unlitFragSrc = `
#version 410 core
uniform vec3 color;
uniform bool roundPoints;

out vec4 outColor;

void main() {
    if (roundPoints) {
        vec2 c = gl_PointCoord * 2.0 - 1.0;
        if (dot(c, c) > 1.0) discard;
    }
    outColor = vec4(color, 1.0);
}
` + "\x00"

type unlitProgram struct {
	program       uint32
	mvpLoc        int32
	pointScaleLoc int32
	colorLoc      int32
	roundLoc      int32

	// scratch buffer for DrawLines
	lineVAO uint32
	lineVBO uint32
}

func newUnlitProgram() (*unlitProgram, error) {
	prog, err := newProgram(unlitVertSrc, unlitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("unlit: %w", err)
	}
	u := &unlitProgram{
		program:       prog,
		mvpLoc:        uniform(prog, "mvp"),
		pointScaleLoc: uniform(prog, "pointScale"),
		colorLoc:      uniform(prog, "color"),
		roundLoc:      uniform(prog, "roundPoints"),
	}

	gl.GenVertexArrays(1, &u.lineVAO)
	gl.GenBuffers(1, &u.lineVBO)
	gl.BindVertexArray(u.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.lineVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return u, nil
}

func (u *unlitProgram) use(mvp mgl32.Mat4, color core.Color, pointScale float32, round bool) {
	gl.UseProgram(u.program)
	gl.UniformMatrix4fv(u.mvpLoc, 1, false, &mvp[0])
	gl.Uniform3f(u.colorLoc, color.R, color.G, color.B)
	gl.Uniform1f(u.pointScaleLoc, pointScale)
	r := int32(0)
	if round {
		r = 1
	}
	gl.Uniform1i(u.roundLoc, r)
}

func (u *unlitProgram) drawLines(positions []float32, vp mgl32.Mat4, color core.Color) {
	if len(positions) < 6 {
		return
	}
	u.use(vp, color, 1, false)
	gl.BindVertexArray(u.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(positions)/3))
	gl.BindVertexArray(0)
}

func (u *unlitProgram) destroy() {
	gl.DeleteVertexArrays(1, &u.lineVAO)
	gl.DeleteBuffers(1, &u.lineVBO)
	gl.DeleteProgram(u.program)
}
