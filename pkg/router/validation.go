package router

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/questx-lab/person-api/pkg/errorx"
)

var registerOnce sync.Once

// registerTagNames makes validation errors report the names clients send (json, form or
// uri tag) instead of Go field names.
func registerTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
				if name == "-" {
					continue
				}
				if name != "" {
					return name
				}
			}

			return field.Name
		})
	})
}

func toBadRequest(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]errorx.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, errorx.FieldError{
				Field:   fieldPath(fe),
				Message: fieldMessage(fe),
			})
		}

		return errorx.New(errorx.BadRequest, "Validation failed").WithDetails(details...)
	}

	return errorx.New(errorx.BadRequest, "Invalid request: %v", err)
}

// fieldPath drops the top level struct and embedded struct names, so
// "UpdatePersonRequest.PersonInput.skills[0]" becomes "skills[0]".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	path := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		if part != "" && unicode.IsUpper(rune(part[0])) {
			continue
		}
		path = append(path, part)
	}

	if len(path) == 0 {
		return fe.Field()
	}

	return strings.Join(path, ".")
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	isSlice := fe.Kind() == reflect.Slice

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		if isSlice {
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
