package req

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	"github.com/arborhq/arbor"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator, which applies default configuration.
func newValidator() validator {
	v := v10.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return fieldName(field.Tag.Get("json"), field.Tag.Get("schema"))
	})

	return validator{v}
}

// validate checks the fields on structPtr match the rules set by "validate"
// struct tags, translating failures into a single error wrapping
// [arbor.ErrNotValid].
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var fieldErrs v10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", arbor.ErrBadConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("field=%q rule=%q", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", arbor.ErrNotValid, strings.Join(msgs, "; "))
}
