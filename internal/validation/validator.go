// Package validation wraps a shared go-playground/validator instance and turns
// its field errors into short, readable messages.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator. It caches struct metadata, so it is
// shared rather than rebuilt per call.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Error collects every failed field of one struct.
type Error struct {
	Fields []FieldError
}

// FieldError describes one failed rule.
type FieldError struct {
	Namespace string
	Tag       string
	Param     string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.message())
	}
	return strings.Join(msgs, "; ")
}

func (f FieldError) message() string {
	switch f.Tag {
	case "required":
		return f.Namespace + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Namespace, f.Param)
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", f.Namespace, f.Param)
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", f.Namespace, f.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f.Namespace, f.Param)
	case "len":
		return fmt.Sprintf("%s must have length %s", f.Namespace, f.Param)
	case "url":
		return f.Namespace + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed %s validation", f.Namespace, f.Tag)
	}
}

// Struct validates s and returns nil or an *Error.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Namespace: fe.Namespace(),
			Tag:       fe.Tag(),
			Param:     fe.Param(),
		})
	}
	return out
}
