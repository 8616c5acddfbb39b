package options

const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Hello, Triangle!"
)

type TriangleOptions struct {
	Width  int
	Height int
	Title  string
	// Requested context version; the profile is always core + forward compatible.
	GLMajor int
	GLMinor int
	// ClearColor is the RGBA the surface is cleared to every frame.
	ClearColor [4]float32
	Translate  bool // Route WebGL2 shader sources through the shader translator.
	MaxFrames  int  // Stop after this many frames; 0 renders until the window is closed.
}

// Default returns the fixed window parameters and a dark gray clear color.
func Default() *TriangleOptions {
	return &TriangleOptions{
		Width:      WindowWidth,
		Height:     WindowHeight,
		Title:      WindowTitle,
		GLMajor:    4,
		GLMinor:    1,
		ClearColor: [4]float32{0.08, 0.08, 0.08, 1.0},
		Translate:  true,
	}
}
