package shader

import "github.com/richinsley/hellotriangle/graphics"

// VertexPosition is the vertex shader's single input attribute.
const VertexPosition = "vertexPosition"

// Stage is a fixed pipeline stage a shader is compiled for.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// GLType returns the OpenGL shader type enum for the stage.
func (s Stage) GLType() uint32 {
	if s == Fragment {
		return graphics.FragmentShader
	}
	return graphics.VertexShader
}

// Translated is a shader translated to the desktop dialect, with the names the
// translator assigned to the user-declared variables.
type Translated struct {
	Code  string
	Names map[string]string
}

// MappedName returns the name name was given in the translated code, or name itself if
// the translator did not rename it.
func (t *Translated) MappedName(name string) string {
	if t == nil {
		return name
	}
	if mapped, ok := t.Names[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// Translator turns WebGL2 (GLSL ES 3.00) source into source the desktop context accepts.
type Translator interface {
	Translate(source string, stage Stage) (*Translated, error)
}

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 330 core
precision mediump float;

in vec2 vertexPosition;

void main() {
    gl_Position = vec4(vertexPosition, 0.0, 1.0);
}
`

const fragmentShaderSourceGL = `#version 330 core
precision mediump float;

out vec4 helloTriangleColor;

void main() {
    helloTriangleColor = vec4(0.294, 0.0, 0.51, 1.0);
}
`

// ─────────────────────────────────── WebGL2 ─────────────────────────────────────

const vertexShaderSourceWebGL2 = `#version 300 es
precision mediump float;

in vec2 vertexPosition;

void main() {
    gl_Position = vec4(vertexPosition, 0.0, 1.0);
}
`

const fragmentShaderSourceWebGL2 = `#version 300 es
precision mediump float;

out vec4 helloTriangleColor;

void main() {
    helloTriangleColor = vec4(0.294, 0.0, 0.51, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// VertexSource returns the vertex shader, in the WebGL2 dialect when webgl2 is set.
func VertexSource(webgl2 bool) string {
	if webgl2 {
		return vertexShaderSourceWebGL2
	}
	return vertexShaderSourceGL
}

// FragmentSource returns the fragment shader, in the WebGL2 dialect when webgl2 is set.
func FragmentSource(webgl2 bool) string {
	if webgl2 {
		return fragmentShaderSourceWebGL2
	}
	return fragmentShaderSourceGL
}

// Source returns the embedded source for stage.
func Source(stage Stage, webgl2 bool) string {
	if stage == Fragment {
		return FragmentSource(webgl2)
	}
	return VertexSource(webgl2)
}
