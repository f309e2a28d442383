package model

import "strings"

// FieldError is a single failed write-time constraint.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every schema constraint an entity violates.
// Its text is what the API exposes in the `error` field, e.g.
// "Contact validation failed: email: Please enter a valid email".
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return e.Entity + " validation failed: " + strings.Join(msgs, ", ")
}

// constraint is one row of an entity's declarative constraint table.
// ok reports whether the current field value satisfies the constraint.
type constraint struct {
	field   string
	message string
	ok      bool
}

// validate evaluates a constraint table and returns nil or a
// *ValidationError collecting every violated row.
func validate(entity string, table []constraint) error {
	var fields []FieldError
	for _, c := range table {
		if !c.ok {
			fields = append(fields, FieldError{Field: c.field, Message: c.message})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Fields: fields}
}
