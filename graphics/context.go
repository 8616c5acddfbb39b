package graphics

import "unsafe"

// Context defines the interface for an OpenGL window/context pair.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the back buffer and pumps window events.
	EndFrame()
	GetFramebufferSize() (int, int)
	// ProcAddress resolves a GL entry point for the current context.
	ProcAddress(name string) unsafe.Pointer
}
