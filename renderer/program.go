package renderer

import (
	"fmt"
	"log"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/shader"
)

// Program is a linked vertex + fragment pipeline.
type Program struct {
	api   graphics.API
	id    uint32
	names *shader.Translated // vertex stage names, nil when sources were not translated
}

// CompileStage compiles source for stage and returns the shader name. When tr is non-nil
// the source is WebGL2 and is translated first. The compile status is checked right away;
// on failure the shader is deleted and the bounded info log is returned in a *ShaderError.
func CompileStage(api graphics.API, tr shader.Translator, stage shader.Stage, source string) (uint32, *shader.Translated, error) {
	var translated *shader.Translated
	if tr != nil {
		var err error
		translated, err = tr.Translate(source, stage)
		if err != nil {
			return 0, nil, &ShaderError{
				Kind:  ErrShaderCompile,
				Stage: stage,
				Log:   truncateLog(err.Error(), graphics.InfoLogSize),
			}
		}
		source = translated.Code
	}

	sh := api.CreateShader(stage.GLType())
	if sh == 0 {
		return 0, nil, fmt.Errorf("%w: glCreateShader(%s) returned 0", ErrResourceAllocation, stage)
	}
	api.ShaderSource(sh, source)
	api.CompileShader(sh)

	if api.GetShaderiv(sh, graphics.CompileStatus) == 0 {
		msg := api.GetShaderInfoLog(sh, graphics.InfoLogSize)
		api.DeleteShader(sh)
		return 0, nil, &ShaderError{Kind: ErrShaderCompile, Stage: stage, Log: msg}
	}
	return sh, translated, nil
}

// Link attaches both stages to a new program and links it. The stages are not deleted;
// the caller owns them.
func Link(api graphics.API, vertexShader, fragmentShader uint32) (*Program, error) {
	id := api.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("%w: glCreateProgram returned 0", ErrResourceAllocation)
	}
	api.AttachShader(id, vertexShader)
	api.AttachShader(id, fragmentShader)
	api.LinkProgram(id)

	if api.GetProgramiv(id, graphics.LinkStatus) == 0 {
		msg := api.GetProgramInfoLog(id, graphics.InfoLogSize)
		api.DeleteProgram(id)
		return nil, &ShaderError{Kind: ErrShaderLink, Log: msg}
	}
	return &Program{api: api, id: id}, nil
}

// NewProgram compiles the vertex and fragment sources and links them. Both stages are
// released before it returns, whether or not it succeeds. A failed vertex compile stops
// before the fragment stage is touched.
func NewProgram(api graphics.API, tr shader.Translator, vertexSource, fragmentSource string) (*Program, error) {
	vs, names, err := CompileStage(api, tr, shader.Vertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(vs)

	fs, _, err := CompileStage(api, tr, shader.Fragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer api.DeleteShader(fs)

	prg, err := Link(api, vs, fs)
	if err != nil {
		return nil, err
	}
	prg.names = names
	log.Printf("Linked shader program %d", prg.id)
	return prg, nil
}

func (p *Program) ID() uint32 { return p.id }

// Use installs the program as part of the current rendering state.
func (p *Program) Use() { p.api.UseProgram(p.id) }

// AttributeLocation resolves a vertex input by its source name, following any renaming
// done by the translator.
func (p *Program) AttributeLocation(name string) (uint32, error) {
	mapped := p.names.MappedName(name)
	loc := p.api.GetAttribLocation(p.id, mapped)
	if loc < 0 {
		return 0, fmt.Errorf("%w: %q (as %q) in program %d", ErrAttributeNotFound, name, mapped, p.id)
	}
	return uint32(loc), nil
}

// Destroy deletes the program. Calling it again is a no-op.
func (p *Program) Destroy() {
	if p == nil || p.api == nil {
		return
	}
	p.api.DeleteProgram(p.id)
	p.api = nil
}
