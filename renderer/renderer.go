package renderer

import (
	"github.com/richinsley/hellotriangle/graphics"
)

// Renderer draws the triangle into the current context's surface.
type Renderer struct {
	api        graphics.API
	context    graphics.Context
	program    *Program
	geometry   *Geometry
	position   uint32
	clearColor [4]float32
}

func NewRenderer(api graphics.API, ctx graphics.Context, program *Program, geometry *Geometry, position uint32, clearColor [4]float32) *Renderer {
	return &Renderer{
		api:        api,
		context:    ctx,
		program:    program,
		geometry:   geometry,
		position:   position,
		clearColor: clearColor,
	}
}

// RenderFrame clears the surface, draws the geometry with the program and checks the GL
// error state. It does not present; the caller ends the frame.
func (r *Renderer) RenderFrame() error {
	// Match the window's framebuffer size to allow resizing.
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	c := r.clearColor
	r.api.ClearColor(c[0], c[1], c[2], c[3])
	r.api.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.api.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit)

	r.program.Use()
	r.geometry.Bind(r.position)
	r.api.DrawArrays(graphics.Triangles, 0, r.geometry.Count())

	return checkError(r.api, "glDrawArrays")
}

func checkError(api graphics.API, op string) error {
	if code := api.GetError(); code != graphics.NoError {
		return &APIError{Code: code, Op: op}
	}
	return nil
}
