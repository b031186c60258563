package render

import (
	"context"

	"github.com/goliatone/go-formcheck/pkg/dom"
)

// Renderer turns the current state of a document into a byte representation
// (an HTML snapshot, a plain-text report).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc *dom.Document) ([]byte, error)
}
