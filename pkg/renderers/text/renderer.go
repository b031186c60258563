package text

import (
	"context"
	"embed"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/render/template/pongo"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const Name = "text"

// Renderer writes a plain-text report: the form verdict followed by one line
// per field with its state and message.
type Renderer struct {
	engine *pongo.Engine
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer.
func New() (*Renderer, error) {
	engine, err := pongo.New(pongo.WithFS(embeddedTemplates))
	if err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	return &Renderer{engine: engine}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, doc *dom.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("text renderer: document is nil")
	}
	out, err := r.engine.RenderTemplate("templates/report", map[string]any{"form": render.Snapshot(doc)})
	if err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	return []byte(out), nil
}
