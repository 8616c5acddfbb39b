package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/options"
	"github.com/richinsley/hellotriangle/shader"
)

// State is a step of the program lifecycle.
type State int

const (
	Uninitialized State = iota
	ContextReady
	ResourcesReady
	Rendering
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case ContextReady:
		return "ContextReady"
	case ResourcesReady:
		return "ResourcesReady"
	case Rendering:
		return "Rendering"
	case Terminated:
		return "Terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Driver creates the context and GPU resources, runs the frame loop until the window is
// closed and releases everything in reverse acquisition order. Any error on the way is
// terminal.
type Driver struct {
	Options *options.TriangleOptions
	// NewContext creates the window; GLFW must already be initialized.
	NewContext func(*options.TriangleOptions) (graphics.Context, error)
	// Load binds the GL entry points for a current context.
	Load func(graphics.Context) (graphics.API, error)
	// Translator is consulted only when Options.Translate is set.
	Translator func() (shader.Translator, error)

	state  State
	err    error
	frames int
}

func (d *Driver) State() State { return d.state }
func (d *Driver) Err() error   { return d.err }
func (d *Driver) Frames() int  { return d.frames }

func (d *Driver) transition(s State) {
	log.Printf("Lifecycle: %v -> %v", d.state, s)
	d.state = s
}

// Run drives the lifecycle to Terminated and returns the error it terminated with, or
// nil after a normal close. A Driver runs once.
func (d *Driver) Run() (err error) {
	if d.state != Uninitialized {
		return fmt.Errorf("lifecycle already ran (state %v)", d.state)
	}
	defer func() {
		d.err = err
		d.transition(Terminated)
	}()

	opts := d.Options
	if opts == nil {
		opts = options.Default()
	}

	ctx, err := d.NewContext(opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	defer ctx.Shutdown()
	ctx.MakeCurrent()
	d.transition(ContextReady)

	api, err := d.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFunctionLoad, err)
	}

	geometry, err := Upload(api, Vertices)
	if err != nil {
		return err
	}
	defer geometry.Destroy()

	var tr shader.Translator
	if opts.Translate && d.Translator != nil {
		if tr, err = d.Translator(); err != nil {
			return fmt.Errorf("%w: %w", ErrTranslation, err)
		}
	}
	webgl2 := tr != nil

	program, err := NewProgram(api, tr, shader.VertexSource(webgl2), shader.FragmentSource(webgl2))
	if err != nil {
		return err
	}
	defer program.Destroy()

	position, err := program.AttributeLocation(shader.VertexPosition)
	if err != nil {
		return err
	}
	if err := checkError(api, "setup"); err != nil {
		return err
	}
	d.transition(ResourcesReady)

	r := NewRenderer(api, ctx, program, geometry, position, opts.ClearColor)
	d.transition(Rendering)
	for !ctx.ShouldClose() {
		if err := r.RenderFrame(); err != nil {
			return err
		}
		ctx.EndFrame()
		d.frames++
		if opts.MaxFrames > 0 && d.frames >= opts.MaxFrames {
			log.Printf("Rendered %d frames, stopping", d.frames)
			break
		}
	}
	return nil
}
