package glfwcontext

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	options "github.com/richinsley/hellotriangle/options"
)

// errorReporter receives every error GLFW hands back. It must not abort the process.
var errorReporter = func(err error) {
	log.Printf("GLFW error - %v", err)
}

// SetErrorReporter replaces the diagnostic hook used for GLFW errors. A nil f restores
// the default, which logs to stderr.
func SetErrorReporter(f func(error)) {
	if f == nil {
		f = func(err error) { log.Printf("GLFW error - %v", err) }
	}
	errorReporter = f
}

func report(err error) error {
	if err != nil {
		errorReporter(err)
	}
	return err
}

// Context owns a GLFW window and the OpenGL context bound to it.
type Context struct {
	window *glfw.Window
}

// New configures the requested core profile and creates a window. The returned context
// is not current yet; call MakeCurrent before issuing GL calls.
func New(options *options.TriangleOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, options.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, options.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(options.Width, options.Height, options.Title, nil, nil)
	if err = report(err); err != nil {
		return nil, err
	}
	if win == nil {
		return nil, fmt.Errorf("glfw returned no window for %dx%d %q", options.Width, options.Height, options.Title)
	}

	return &Context{window: win}, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; GLFW itself is torn down by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := report(glfw.Init()); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
