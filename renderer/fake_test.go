package renderer

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

// recorder is a call log shared by the fake API and the fake context so tests can
// check ordering across both.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) index(prefix string) int {
	for i, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

func (r *recorder) lastIndex(prefix string) int {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(r.calls[i], prefix) {
			return i
		}
	}
	return -1
}

type fakeAPI struct {
	rec  *recorder
	next uint32

	failGenBuffer bool
	compileFail   map[uint32]string // shader type -> info log
	linkFail      string
	attribLoc     map[string]int32
	errors        []uint32 // returned by GetError in order, then NoError

	shaderTypes map[uint32]uint32
	bufferData  []float32
}

func newFakeAPI(rec *recorder) *fakeAPI {
	return &fakeAPI{
		rec:         rec,
		compileFail: map[uint32]string{},
		attribLoc:   map[string]int32{shader.VertexPosition: 0},
		shaderTypes: map[uint32]uint32{},
	}
}

func (f *fakeAPI) name() uint32 {
	f.next++
	return f.next
}

func (f *fakeAPI) GenBuffer() uint32 {
	if f.failGenBuffer {
		f.rec.add("GenBuffer() = 0")
		return 0
	}
	b := f.name()
	f.rec.add("GenBuffer() = %d", b)
	return b
}

func (f *fakeAPI) DeleteBuffer(buffer uint32)       { f.rec.add("DeleteBuffer(%d)", buffer) }
func (f *fakeAPI) BindBuffer(target, buffer uint32) { f.rec.add("BindBuffer(%#x, %d)", target, buffer) }

func (f *fakeAPI) BufferData(target uint32, data []float32, usage uint32) {
	f.bufferData = append([]float32(nil), data...)
	f.rec.add("BufferData(%#x, %d bytes, %#x)", target, len(data)*4, usage)
}

func (f *fakeAPI) GenVertexArray() uint32 {
	v := f.name()
	f.rec.add("GenVertexArray() = %d", v)
	return v
}

func (f *fakeAPI) DeleteVertexArray(vao uint32) { f.rec.add("DeleteVertexArray(%d)", vao) }
func (f *fakeAPI) BindVertexArray(vao uint32)   { f.rec.add("BindVertexArray(%d)", vao) }
func (f *fakeAPI) EnableVertexAttribArray(index uint32) {
	f.rec.add("EnableVertexAttribArray(%d)", index)
}

func (f *fakeAPI) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	f.rec.add("VertexAttribPointer(%d, %d, %#x, %v, %d, %d)", index, size, xtype, normalized, stride, offset)
}

func (f *fakeAPI) CreateShader(xtype uint32) uint32 {
	s := f.name()
	f.shaderTypes[s] = xtype
	f.rec.add("CreateShader(%#x) = %d", xtype, s)
	return s
}

func (f *fakeAPI) ShaderSource(sh uint32, source string) { f.rec.add("ShaderSource(%d)", sh) }
func (f *fakeAPI) CompileShader(sh uint32)               { f.rec.add("CompileShader(%d)", sh) }

func (f *fakeAPI) GetShaderiv(sh, pname uint32) int32 {
	if pname != graphics.CompileStatus {
		return 0
	}
	if _, fail := f.compileFail[f.shaderTypes[sh]]; fail {
		return 0
	}
	return 1
}

func (f *fakeAPI) GetShaderInfoLog(sh uint32, bufSize int32) string {
	return truncateLog(f.compileFail[f.shaderTypes[sh]], int(bufSize))
}

func (f *fakeAPI) DeleteShader(sh uint32) { f.rec.add("DeleteShader(%d)", sh) }

func (f *fakeAPI) CreateProgram() uint32 {
	p := f.name()
	f.rec.add("CreateProgram() = %d", p)
	return p
}

func (f *fakeAPI) AttachShader(program, sh uint32) { f.rec.add("AttachShader(%d, %d)", program, sh) }
func (f *fakeAPI) LinkProgram(program uint32)      { f.rec.add("LinkProgram(%d)", program) }

func (f *fakeAPI) GetProgramiv(program, pname uint32) int32 {
	if pname == graphics.LinkStatus && f.linkFail != "" {
		return 0
	}
	return 1
}

func (f *fakeAPI) GetProgramInfoLog(program uint32, bufSize int32) string {
	return truncateLog(f.linkFail, int(bufSize))
}

func (f *fakeAPI) GetAttribLocation(program uint32, name string) int32 {
	f.rec.add("GetAttribLocation(%d, %s)", program, name)
	if loc, ok := f.attribLoc[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeAPI) UseProgram(program uint32)    { f.rec.add("UseProgram(%d)", program) }
func (f *fakeAPI) DeleteProgram(program uint32) { f.rec.add("DeleteProgram(%d)", program) }

func (f *fakeAPI) ClearColor(r, g, b, a float32) { f.rec.add("ClearColor(%v, %v, %v, %v)", r, g, b, a) }
func (f *fakeAPI) Clear(mask uint32)             { f.rec.add("Clear(%#x)", mask) }
func (f *fakeAPI) Viewport(x, y, width, height int32) {
	f.rec.add("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (f *fakeAPI) DrawArrays(mode uint32, first, count int32) {
	f.rec.add("DrawArrays(%#x, %d, %d)", mode, first, count)
}

func (f *fakeAPI) GetError() uint32 {
	if len(f.errors) == 0 {
		return graphics.NoError
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

// fakeContext closes itself after closeAfter frames and reports sizes[i] as the
// framebuffer size during frame i (the last entry repeats).
type fakeContext struct {
	rec        *recorder
	closeAfter int
	sizes      [][2]int
	frames     int
}

func (c *fakeContext) MakeCurrent()      { c.rec.add("MakeCurrent()") }
func (c *fakeContext) Shutdown()         { c.rec.add("Shutdown()") }
func (c *fakeContext) ShouldClose() bool { return c.frames >= c.closeAfter }

func (c *fakeContext) EndFrame() {
	c.rec.add("EndFrame()")
	c.frames++
}

func (c *fakeContext) GetFramebufferSize() (int, int) {
	if len(c.sizes) == 0 {
		return 800, 800
	}
	i := c.frames
	if i >= len(c.sizes) {
		i = len(c.sizes) - 1
	}
	return c.sizes[i][0], c.sizes[i][1]
}

func (c *fakeContext) ProcAddress(name string) unsafe.Pointer { return nil }

// fakeTranslator prefixes every user name with "_u", like ANGLE does.
type fakeTranslator struct {
	fail  map[shader.Stage]string
	calls []shader.Stage
}

func (t *fakeTranslator) Translate(source string, stage shader.Stage) (*shader.Translated, error) {
	t.calls = append(t.calls, stage)
	if msg, ok := t.fail[stage]; ok {
		return nil, errors.New(msg)
	}
	names := map[string]string{}
	if stage == shader.Vertex {
		names[shader.VertexPosition] = "_u" + shader.VertexPosition
	}
	return &shader.Translated{Code: "#version 410\n" + source, Names: names}, nil
}

var (
	_ graphics.API      = (*fakeAPI)(nil)
	_ graphics.Context  = (*fakeContext)(nil)
	_ shader.Translator = (*fakeTranslator)(nil)
)
