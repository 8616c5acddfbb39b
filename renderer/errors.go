package renderer

import (
	"errors"
	"fmt"

	"github.com/richinsley/hellotriangle/shader"
)

// Every error the lifecycle can end with wraps exactly one of these kinds.
var (
	ErrWindowCreation     = errors.New("window creation failed")
	ErrFunctionLoad       = errors.New("OpenGL function loading failed")
	ErrResourceAllocation = errors.New("GPU resource allocation failed")
	ErrTranslation        = errors.New("shader translator unavailable")
	ErrShaderCompile      = errors.New("shader compilation failed")
	ErrShaderLink         = errors.New("shader program link failed")
	ErrAttributeNotFound  = errors.New("vertex attribute not found")
	ErrGraphicsAPI        = errors.New("OpenGL error")
)

// ShaderError carries the diagnostic log of a failed compile or link.
type ShaderError struct {
	Kind  error // ErrShaderCompile or ErrShaderLink
	Stage shader.Stage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Kind == ErrShaderLink {
		return fmt.Sprintf("%v:\n%s", e.Kind, e.Log)
	}
	return fmt.Sprintf("%s %v:\n%s", e.Stage, e.Kind, e.Log)
}

func (e *ShaderError) Unwrap() error { return e.Kind }

// APIError is a non-zero code read back from glGetError.
type APIError struct {
	Code uint32
	Op   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v 0x%04X after %s", ErrGraphicsAPI, e.Code, e.Op)
}

func (e *APIError) Unwrap() error { return ErrGraphicsAPI }

// truncateLog bounds a diagnostic message the same way a fixed GL log buffer would.
func truncateLog(msg string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(msg) > max-1 {
		return msg[:max-1]
	}
	return msg
}
