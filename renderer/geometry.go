package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/hellotriangle/graphics"
	"golang.org/x/image/math/f32"
)

// Vertices is the triangle in normalized device coordinates: top, bottom-left, bottom-right.
var Vertices = []f32.Vec2{
	{0.0, 0.5},
	{-0.5, -0.5},
	{0.5, -0.5},
}

const sizeofFloat32 = 4

// Layout describes how the vertex buffer bytes map to the shader's position attribute.
type Layout struct {
	Components int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

// Vec2Layout is a tightly packed run of two-component float positions.
var Vec2Layout = Layout{
	Components: 2,
	Type:       graphics.Float,
	Normalized: false,
	Stride:     2 * sizeofFloat32,
	Offset:     0,
}

// Geometry owns a vertex buffer and the vertex array object that describes it.
type Geometry struct {
	api    graphics.API
	vbo    uint32
	vao    uint32
	layout Layout
	count  int32
}

// Upload copies vertices into a new static buffer sized exactly to them.
func Upload(api graphics.API, vertices []f32.Vec2) (*Geometry, error) {
	g := &Geometry{api: api, layout: Vec2Layout, count: int32(len(vertices))}

	g.vao = api.GenVertexArray()
	if g.vao == 0 {
		return nil, fmt.Errorf("%w: glGenVertexArrays returned 0", ErrResourceAllocation)
	}
	g.vbo = api.GenBuffer()
	if g.vbo == 0 {
		api.DeleteVertexArray(g.vao)
		return nil, fmt.Errorf("%w: glGenBuffers returned 0", ErrResourceAllocation)
	}

	data := make([]float32, 0, 2*len(vertices))
	for _, v := range vertices {
		data = append(data, v[0], v[1])
	}

	api.BindVertexArray(g.vao)
	api.BindBuffer(graphics.ArrayBuffer, g.vbo)
	api.BufferData(graphics.ArrayBuffer, data, graphics.StaticDraw)
	api.BindVertexArray(0)

	log.Printf("Uploaded %d vertices (%d bytes) to buffer %d, vertex array %d", len(vertices), len(data)*sizeofFloat32, g.vbo, g.vao)
	return g, nil
}

func (g *Geometry) Layout() Layout { return g.layout }
func (g *Geometry) Count() int32   { return g.count }

// Bind makes the vertex array and buffer current and points attribute location at the
// buffer using the geometry's layout.
func (g *Geometry) Bind(location uint32) {
	g.api.BindVertexArray(g.vao)
	g.api.BindBuffer(graphics.ArrayBuffer, g.vbo)
	g.api.EnableVertexAttribArray(location)
	l := g.layout
	g.api.VertexAttribPointer(location, l.Components, l.Type, l.Normalized, l.Stride, l.Offset)
}

// Destroy releases the vertex array and buffer. Calling it again is a no-op.
func (g *Geometry) Destroy() {
	if g == nil || g.api == nil {
		return
	}
	g.api.DeleteVertexArray(g.vao)
	g.api.DeleteBuffer(g.vbo)
	g.api = nil
}
