package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formcheck/pkg/model"
)

// Extension keys read from request body properties.
const (
	ExtensionErrorSlot = "x-error-slot"
	ExtensionLabel     = "x-label"
	ExtensionInputType = "x-input-type"
)

var (
	// ErrOperationNotFound is returned when the requested operation id does
	// not exist in the document.
	ErrOperationNotFound = errors.New("schema: operation not found")
	// ErrNoRequestBody is returned when the operation has no usable object
	// request body.
	ErrNoRequestBody = errors.New("schema: operation has no object request body")
)

// Operation summarises an operation that can back a form.
type Operation struct {
	ID     string
	Method string
	Path   string
}

// Operations lists every operation in raw that declares a request body,
// sorted by id. Operations without an operationId get "<method>:<path>".
func Operations(ctx context.Context, raw []byte) ([]Operation, error) {
	doc, err := load(ctx, raw)
	if err != nil {
		return nil, err
	}
	var out []Operation
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil || op.RequestBody == nil {
				continue
			}
			out = append(out, Operation{ID: operationID(method, path, op), Method: method, Path: path})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FormFromOpenAPI derives a form model from the request body of the named
// operation. Required properties come first in their declared order, followed
// by the remaining properties sorted by name.
func FormFromOpenAPI(ctx context.Context, raw []byte, opID string) (model.FormModel, error) {
	doc, err := load(ctx, raw)
	if err != nil {
		return model.FormModel{}, err
	}

	op, err := findOperation(doc, opID)
	if err != nil {
		return model.FormModel{}, err
	}
	body := requestSchema(op)
	if body == nil || len(body.Properties) == 0 {
		return model.FormModel{}, fmt.Errorf("%w: %s", ErrNoRequestBody, opID)
	}

	form := model.FormModel{
		ID:         opID,
		Title:      op.Summary,
		GroupClass: model.SignupGroupClass,
		SlotClass:  model.SignupSlotClass,
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}
	for _, name := range propertyOrder(body) {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		form.Fields = append(form.Fields, fieldFromSchema(name, ref.Value, required[name]))
	}
	return form, nil
}

func load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("schema: document does not contain any paths")
	}
	return doc, nil
}

func findOperation(doc *openapi3.T, opID string) (*openapi3.Operation, error) {
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && operationID(method, path, op) == opID {
				return op, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOperationNotFound, opID)
}

func operationID(method, path string, op *openapi3.Operation) string {
	if op.OperationID != "" {
		return op.OperationID
	}
	return strings.ToLower(method) + ":" + path
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func propertyOrder(s *openapi3.Schema) []string {
	seen := make(map[string]bool, len(s.Properties))
	order := make([]string, 0, len(s.Properties))
	for _, name := range s.Required {
		if _, ok := s.Properties[name]; ok && !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	rest := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func fieldFromSchema(name string, s *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:        name,
		Type:        inputType(s),
		Required:    required,
		Label:       s.Title,
		Placeholder: s.Description,
		ErrorSlot:   slotID(name),
	}
	if v, ok := stringExtension(s, ExtensionLabel); ok {
		field.Label = v
	}
	if v, ok := stringExtension(s, ExtensionErrorSlot); ok {
		field.ErrorSlot = v
	}
	if field.Label == "" {
		field.Label = name
	}

	if s.MinLength > 0 {
		field.Validations = append(field.Validations, model.MinLength(strconv.FormatUint(s.MinLength, 10)))
	}
	if s.MaxLength != nil {
		field.Validations = append(field.Validations, model.MaxLength(strconv.FormatUint(*s.MaxLength, 10)))
	}
	if s.Pattern != "" {
		field.Validations = append(field.Validations, model.Pattern(s.Pattern))
	}
	return field
}

func inputType(s *openapi3.Schema) model.InputType {
	if v, ok := stringExtension(s, ExtensionInputType); ok {
		switch model.InputType(v) {
		case model.InputTypeEmail, model.InputTypePassword, model.InputTypeText:
			return model.InputType(v)
		}
	}
	switch s.Format {
	case "email":
		return model.InputTypeEmail
	case "password":
		return model.InputTypePassword
	default:
		return model.InputTypeText
	}
}

func stringExtension(s *openapi3.Schema, key string) (string, bool) {
	if s.Extensions == nil {
		return "", false
	}
	v, ok := s.Extensions[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// slotID turns a property name such as "confirm-password" into the slot id
// "confirmPasswordError".
func slotID(name string) string {
	var b strings.Builder
	upper := false
	for i, r := range name {
		if r == '-' || r == '_' || r == ' ' {
			upper = i > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String() + "Error"
}
