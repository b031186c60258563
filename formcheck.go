package formcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/model"
	"github.com/goliatone/go-formcheck/pkg/orchestrator"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/text"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
	"github.com/goliatone/go-formcheck/pkg/schema"
)

// ErrTableMismatch is returned when a rule table does not fit the form it is
// bound to.
var ErrTableMismatch = errors.New("formcheck: rule table does not match form")

// SubmitResult aliases orchestrator.SubmitResult for callers that only import
// the root package.
type SubmitResult = orchestrator.SubmitResult

// Form is a bound document: the elements plus the orchestrator listening to
// them.
type Form struct {
	Document     *dom.Document
	Orchestrator *orchestrator.Orchestrator
}

// New builds a document from form and binds table to it. The table is
// verified against the form first.
func New(form model.FormModel, table rules.Table, options ...orchestrator.Option) (*Form, error) {
	if problems := table.Verify(form); len(problems) > 0 {
		errs := []error{ErrTableMismatch}
		for _, p := range problems {
			errs = append(errs, errors.New(p.String()))
		}
		return nil, errors.Join(errs...)
	}
	doc, err := dom.FromModel(form)
	if err != nil {
		return nil, err
	}
	orch, err := orchestrator.New(doc, table, options...)
	if err != nil {
		return nil, err
	}
	return &Form{Document: doc, Orchestrator: orch}, nil
}

// NewSignup binds the canonical rule table to the canonical signup form.
func NewSignup(options ...orchestrator.Option) (*Form, error) {
	return New(model.SignupForm(), rules.DefaultTable(), options...)
}

// Fill dispatches an input event for every value, in field order. Unknown
// fields are rejected before anything is dispatched.
func (f *Form) Fill(values map[string]string) error {
	for field := range values {
		if _, ok := f.Document.Input(field); !ok {
			return fmt.Errorf("formcheck: field %q: %w", field, dom.ErrElementNotFound)
		}
	}
	for _, field := range f.Orchestrator.Fields() {
		value, ok := values[field]
		if !ok {
			continue
		}
		if err := f.Orchestrator.Input(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Submit dispatches a submit event.
func (f *Form) Submit(ctx context.Context) (SubmitResult, error) {
	return f.Orchestrator.Submit(ctx)
}

// FormFromOpenAPIFile derives a form model from an OpenAPI document on disk.
func FormFromOpenAPIFile(ctx context.Context, path, operationID string) (model.FormModel, error) {
	raw, err := schema.Read(ctx, nil, schema.SourceFromFile(path))
	if err != nil {
		return model.FormModel{}, err
	}
	return schema.FormFromOpenAPI(ctx, raw, operationID)
}

// NewRenderers returns a registry holding the HTML and text renderers.
func NewRenderers(options ...vanilla.Option) (*render.Registry, error) {
	html, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	plain, err := text.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, plain)
}

// EmbeddedTemplates exposes the built-in HTML templates.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet the HTML snapshot references.
//
//	mux.Handle("/assets/formcheck/",
//	  http.StripPrefix("/assets/formcheck/",
//	    http.FileServerFS(formcheck.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
