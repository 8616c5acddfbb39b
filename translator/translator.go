package translator

import (
	"context"
	"fmt"
	"log"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
	shader "github.com/richinsley/hellotriangle/shader"
)

var (
	translator *Translator
	initErr    error
	initOnce   sync.Once
)

// Translator translates WebGL2 shaders to GLSL 4.10 with ANGLE.
type Translator struct {
	st *gst.ShaderTranslator
}

var _ shader.Translator = (*Translator)(nil)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator() (*Translator, error) {
	initOnce.Do(func() {
		st, err := gst.NewShaderTranslator(context.Background())
		if err != nil {
			initErr = fmt.Errorf("failed to create shader translator: %w", err)
			return
		}
		log.Printf("Shader translator ready")
		translator = &Translator{st: st}
	})
	return translator, initErr
}

func (t *Translator) Translate(source string, stage shader.Stage) (*shader.Translated, error) {
	out, err := t.st.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return &shader.Translated{Code: out.Code, Names: names}, nil
}
