package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/richinsley/hellotriangle/glcore"
	"github.com/richinsley/hellotriangle/glfwcontext"
	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/options"
	"github.com/richinsley/hellotriangle/renderer"
	"github.com/richinsley/hellotriangle/shader"
	"github.com/richinsley/hellotriangle/translator"
)

func init() {
	runtime.LockOSThread()
}

func newContext(opts *options.TriangleOptions) (graphics.Context, error) {
	c, err := glfwcontext.New(opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func loadGL(ctx graphics.Context) (graphics.API, error) {
	api, err := glcore.Load(ctx.ProcAddress)
	if err != nil {
		return nil, err
	}
	return api, nil
}

func newTranslator() (shader.Translator, error) {
	t, err := translator.GetTranslator()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// run owns GLFW for the life of the process so every exit path terminates it.
func run(opts *options.TriangleOptions) int {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return 1
	}
	defer glfwcontext.TerminateGraphics()

	d := &renderer.Driver{
		Options:    opts,
		NewContext: newContext,
		Load:       loadGL,
		Translator: newTranslator,
	}
	if err := d.Run(); err != nil {
		log.Printf("Fatal: %v", err)
		return 1
	}
	log.Printf("Window closed after %d frames", d.Frames())
	return 0
}

func main() {
	var help = flag.Bool("help", false, "Show help message")
	var translate = flag.Bool("translate", true, "Translate the WebGL2 shader sources to desktop GLSL before compiling")
	var frames = flag.Int("frames", 0, "Stop after this many frames (0 renders until the window is closed)")

	flag.Parse()

	if *help {
		fmt.Println("Hello, Triangle!")
		flag.PrintDefaults()
		return
	}

	opts := options.Default()
	opts.Translate = *translate
	opts.MaxFrames = *frames

	os.Exit(run(opts))
}
