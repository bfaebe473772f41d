package report

import (
	"fmt"
	"io"
)

// RenderOptions tunes renderer output.
type RenderOptions struct {
	// Quiet suppresses warnings in human-readable output.
	Quiet bool
}

// Renderer writes a report in one output format.
type Renderer interface {
	Render(w io.Writer, r *Report, opts RenderOptions) error
}

var renderers = make(map[string]Renderer)

// RegisterRenderer registers a renderer under a format name.
func RegisterRenderer(name string, renderer Renderer) {
	renderers[name] = renderer
}

// GetRenderer returns the renderer for the given format name.
func GetRenderer(name string) (Renderer, error) {
	renderer, exists := renderers[name]
	if !exists {
		return nil, fmt.Errorf("output format %s not supported", name)
	}
	return renderer, nil
}

// ListRenderers returns the registered format names.
func ListRenderers() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	return names
}
