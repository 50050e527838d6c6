package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shape ids carried in the fourth sprite attribute.
const (
	shapeSquare  = 0
	shapeCircle  = 1
	shapeRounded = 2
	shapeDiamond = 3
	shapeRing    = 4
)

// Cell sprite vertex shader: one point per grid cell, positions in cells.
const cellVertSrc = `#version 410 core

layout(location = 0) in vec2 aCell;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aShape;

uniform float uCellPx;
uniform vec2 uOrigin;
uniform vec2 uResolution;

out vec4 vColor;
flat out int vShape;

void main() {
    vec2 screenPos = uOrigin + (aCell + 0.5) * uCellPx;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize * uCellPx + 0.5));
    vColor = aColor;
    vShape = int(aShape + 0.5);
}
` + "\x00"

const cellFragSrc = `#version 410 core

in vec4 vColor;
flat in int vShape;
out vec4 FragColor;

void main() {
    vec2 uv = gl_PointCoord - vec2(0.5);
    float r = length(uv);
    if (vShape == 1 && r > 0.5) discard;
    if (vShape == 2) {
        vec2 q = abs(uv) - vec2(0.32);
        if (length(max(q, 0.0)) > 0.18) discard;
    }
    if (vShape == 3 && abs(uv.x) + abs(uv.y) > 0.5) discard;
    if (vShape == 4 && (r > 0.5 || r < 0.32)) discard;
    FragColor = vColor;
}
` + "\x00"

const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Glyph atlas is single-channel coverage in the red component.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uFontTex, vUV).r * vColor.a;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &buf[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(string(buf), "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &buf[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(string(buf), "\x00"))
	}
	return program, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
