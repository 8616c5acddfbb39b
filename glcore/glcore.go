// Package glcore binds graphics.API to the OpenGL 4.1 core profile through go-gl.
package glcore

import (
	"fmt"
	"log"
	"sync"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/hellotriangle/graphics"
)

var glInitOnce sync.Once
var glInitErr error

// Load resolves the OpenGL entry points with resolve, normally the current context's
// ProcAddress. It must run after the context is made current and before any GL call.
func Load(resolve func(name string) unsafe.Pointer) (*GL, error) {
	glInitOnce.Do(func() {
		glInitErr = gl.InitWithProcAddrFunc(resolve)
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	log.Printf("OpenGL %s, GLSL %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return &GL{}, nil
}

// GL issues calls on the current context.
type GL struct{}

var _ graphics.API = (*GL)(nil)

func (*GL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (*GL) DeleteBuffer(buffer uint32)       { gl.DeleteBuffers(1, &buffer) }
func (*GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (*GL) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (*GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (*GL) DeleteVertexArray(vao uint32)         { gl.DeleteVertexArrays(1, &vao) }
func (*GL) BindVertexArray(vao uint32)           { gl.BindVertexArray(vao) }
func (*GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (*GL) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*GL) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*GL) GetShaderInfoLog(shader uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetShaderInfoLog(shader, bufSize, &n, &buf[0])
	return string(buf[:logLen(n, bufSize)])
}

func (*GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*GL) CreateProgram() uint32               { return gl.CreateProgram() }
func (*GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*GL) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (*GL) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*GL) GetProgramInfoLog(program uint32, bufSize int32) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var n int32
	gl.GetProgramInfoLog(program, bufSize, &n, &buf[0])
	return string(buf[:logLen(n, bufSize)])
}

func (*GL) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (*GL) UseProgram(program uint32)    { gl.UseProgram(program) }
func (*GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*GL) ClearColor(r, g, b, a float32)              { gl.ClearColor(r, g, b, a) }
func (*GL) Clear(mask uint32)                          { gl.Clear(mask) }
func (*GL) Viewport(x, y, width, height int32)         { gl.Viewport(x, y, width, height) }
func (*GL) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }
func (*GL) GetError() uint32                           { return gl.GetError() }

// logLen clamps the length GL reports to what fits before the terminating NUL.
func logLen(n, bufSize int32) int32 {
	if n < 0 {
		return 0
	}
	if n > bufSize-1 {
		return bufSize - 1
	}
	return n
}
