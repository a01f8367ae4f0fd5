// Package form builds huh forms from declarative field descriptors, with
// validation expressed as validator/v10 tags.
package form

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/go-playground/validator/v10"
)

// FieldKind selects the input widget of a field.
type FieldKind string

const (
	KindInput   FieldKind = "input"
	KindText    FieldKind = "text"
	KindSelect  FieldKind = "select"
	KindConfirm FieldKind = "confirm"
)

// Option is one choice of a select field.
type Option struct {
	Label string
	Value string
}

// Field describes one form input. String kinds bind to Value; confirm binds
// to Bool.
type Field struct {
	Key         string
	Title       string
	Description string
	Kind        FieldKind
	Placeholder string
	Options     []Option
	// Rules is a validator/v10 tag expression, e.g. "required,email".
	Rules string
	Value *string
	Bool  *bool
}

// Definition is a declarative form: a title and its ordered fields.
type Definition struct {
	Title  string
	Fields []Field
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateValue checks a single value against a validator tag expression.
func ValidateValue(value, rules string) error {
	if rules == "" {
		return nil
	}
	if err := validate.Var(value, rules); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	return nil
}

// Build compiles the definition into a huh form with one group.
func (d Definition) Build() (*huh.Form, error) {
	fields := make([]huh.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		built, err := f.build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, built)
	}
	group := huh.NewGroup(fields...)
	if d.Title != "" {
		group = group.Title(d.Title)
	}
	return huh.NewForm(group), nil
}

func (f Field) build() (huh.Field, error) {
	switch f.Kind {
	case KindInput, "":
		if f.Value == nil {
			return nil, fmt.Errorf("field %q: input fields need a string binding", f.Key)
		}
		return huh.NewInput().
			Key(f.Key).
			Title(f.Title).
			Description(f.Description).
			Placeholder(f.Placeholder).
			Validate(f.validator()).
			Value(f.Value), nil
	case KindText:
		if f.Value == nil {
			return nil, fmt.Errorf("field %q: text fields need a string binding", f.Key)
		}
		return huh.NewText().
			Key(f.Key).
			Title(f.Title).
			Description(f.Description).
			Placeholder(f.Placeholder).
			Validate(f.validator()).
			Value(f.Value), nil
	case KindSelect:
		if f.Value == nil {
			return nil, fmt.Errorf("field %q: select fields need a string binding", f.Key)
		}
		options := make([]huh.Option[string], 0, len(f.Options))
		for _, opt := range f.Options {
			label := opt.Label
			if label == "" {
				label = opt.Value
			}
			options = append(options, huh.NewOption(label, opt.Value))
		}
		return huh.NewSelect[string]().
			Key(f.Key).
			Title(f.Title).
			Description(f.Description).
			Options(options...).
			Validate(f.validator()).
			Value(f.Value), nil
	case KindConfirm:
		if f.Bool == nil {
			return nil, fmt.Errorf("field %q: confirm fields need a bool binding", f.Key)
		}
		return huh.NewConfirm().
			Key(f.Key).
			Title(f.Title).
			Description(f.Description).
			Value(f.Bool), nil
	}
	return nil, fmt.Errorf("field %q: unknown kind %q", f.Key, f.Kind)
}

func (f Field) validator() func(string) error {
	rules := f.Rules
	return func(value string) error {
		return ValidateValue(value, rules)
	}
}
