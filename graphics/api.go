package graphics

// OpenGL enums passed through API. Values match the GL headers.
const (
	NoError = 0

	Triangles = 0x0004
	Float     = 0x1406

	DepthBufferBit = 0x00000100
	ColorBufferBit = 0x00004000

	ArrayBuffer = 0x8892
	StaticDraw  = 0x88E4

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
)

// InfoLogSize bounds shader and program diagnostic logs. Longer logs are truncated.
const InfoLogSize = 512

// API is the subset of OpenGL the renderer issues. Object names are the raw GL uint32s;
// zero means creation failed.
type API interface {
	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)

	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32, bufSize int32) string
	GetAttribLocation(program uint32, name string) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	DrawArrays(mode uint32, first, count int32)
	GetError() uint32
}
