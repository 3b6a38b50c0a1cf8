// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

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

// FieldError describes a single field that failed validation.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   interface{}
	Message string
}

// Error returns a human-readable error message.
func (e FieldError) Error() string {
	return e.Message
}

// StructError is the collection of field errors for one struct.
type StructError struct {
	fields []FieldError
}

// Fields returns the individual field errors.
func (se *StructError) Fields() []FieldError {
	return se.fields
}

// Error joins every field message.
func (se *StructError) Error() string {
	if len(se.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(se.fields))
	for i, fe := range se.fields {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// HasField reports whether the named field failed validation.
func (se *StructError) HasField(field string) bool {
	for _, fe := range se.fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// notblank rejects strings that are empty after trimming whitespace.
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// Validate validates a struct and returns nil or a *StructError.
func Validate(s interface{}) error {
	if verr := ValidateStruct(s); verr != nil {
		return verr
	}
	return nil
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes.
func ValidateStruct(s interface{}) *StructError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &StructError{
			fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}},
		}
	}

	fields := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translateError(fe),
		}
	}

	return &StructError{fields: fields}
}

// errorMessageTemplates maps validation tags to message templates.
var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s must not be blank",
}

// errorMessageWithParam maps validation tags to templates that include the param.
var errorMessageWithParam = map[string]string{
	"oneof":    "%s must be one of: %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"gt":       "%s must be greater than %s",
	"lt":       "%s must be less than %s",
	"ltefield": "%s must be less than or equal to %s",
	"gtefield": "%s must be greater than or equal to %s",
}

// translateError converts a validator.FieldError to a readable message.
func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}

	isString := fe.Kind().String() == "string"
	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
