package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError lists the invalid Draft fields, keyed by lower-cased field
// name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, " ")
}

func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("The %s field is required.", name)
		case "email":
			fields[name] = fmt.Sprintf("The %s must be a valid email address.", name)
		case "gt":
			fields[name] = fmt.Sprintf("The %s must be greater than %s.", name, fe.Param())
		case "min":
			fields[name] = fmt.Sprintf("The %s must be at least %s characters.", name, fe.Param())
		case "max", "lte":
			fields[name] = fmt.Sprintf("The %s may not be greater than %s.", name, fe.Param())
		default:
			fields[name] = fmt.Sprintf("The %s field is invalid.", name)
		}
	}
	return &ValidationError{Fields: fields}
}
