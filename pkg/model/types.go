package model

// InputType mirrors the input element types the validity layer understands.
type InputType string

const (
	InputTypeText     InputType = "text"
	InputTypeEmail    InputType = "email"
	InputTypePassword InputType = "password"
)

const (
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single built-in constraint declared on a field.
// Length limits encode their threshold in Params["value"] while pattern rules
// preserve the original expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Field describes one logical form entry: the input element and the error
// slot bound to it.
type Field struct {
	Name        string            `json:"name" yaml:"name"`
	Type        InputType         `json:"type" yaml:"type"`
	Required    bool              `json:"required" yaml:"required"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ErrorSlot   string            `json:"errorSlot" yaml:"errorSlot"`
	Validations []ValidationRule  `json:"validations,omitempty" yaml:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FormModel is the top-level description a document is built from.
type FormModel struct {
	ID         string  `json:"id" yaml:"id"`
	Title      string  `json:"title,omitempty" yaml:"title,omitempty"`
	GroupClass string  `json:"groupClass" yaml:"groupClass"`
	SlotClass  string  `json:"slotClass" yaml:"slotClass"`
	Fields     []Field `json:"fields" yaml:"fields"`
}

// Field returns the field with the given name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// MinLength returns a minLength rule.
func MinLength(n string) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMinLength, Params: map[string]string{"value": n}}
}

// MaxLength returns a maxLength rule.
func MaxLength(n string) ValidationRule {
	return ValidationRule{Kind: ValidationRuleMaxLength, Params: map[string]string{"value": n}}
}

// Pattern returns a pattern rule.
func Pattern(expr string) ValidationRule {
	return ValidationRule{Kind: ValidationRulePattern, Params: map[string]string{"pattern": expr}}
}
