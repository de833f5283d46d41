package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes bounds decoded request payloads.
const MaxBodyBytes = 1 << 20

// Violation describes one field that failed validation. Field is the JSON
// path of the offending value, e.g. "credentials[0].exchange".
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a payload.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName("binding")
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// Validate checks a record against its binding rules. Required fields whose
// zero value is legal (qty 0, an empty name) are pointers, so required means
// present rather than non-zero. It returns nil or a
// *ValidationError.
func Validate(record any) error {
	err := engine().Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Violations: []Violation{{Field: "body", Rule: "invalid", Message: err.Error()}}}
	}
	out := &ValidationError{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

// Decode reads one JSON document into dst, applying the type's defaults, and
// validates the result.
func Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	return Validate(dst)
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return &ValidationError{Violations: []Violation{{Field: "body", Rule: "required", Message: "request body is empty"}}}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Violations: []Violation{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value),
		}}}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ValidationError{Violations: []Violation{{
			Field:   "body",
			Rule:    "json",
			Message: fmt.Sprintf("malformed json at offset %d", syntaxErr.Offset),
		}}}
	}
	return &ValidationError{Violations: []Violation{{Field: "body", Rule: "json", Message: err.Error()}}}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
