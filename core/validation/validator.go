package validation

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"team-scheduler/core/errors"
	"team-scheduler/core/utils"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	// timestamp accepts every layout utils.ParseTimestamp understands.
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, ok := utils.ParseTimestamp(fl.Field().String())
		return ok
	})
	return &Validator{validate: v}
}

// Fields runs the struct tags of s and returns one FieldError per failure.
func (v *Validator) Fields(s any) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return out
}

// Struct validates s and returns an ErrInvalidInput AppError listing every
// failing field, or nil.
func (v *Validator) Struct(s any) *errors.AppError {
	return NewError(v.Fields(s))
}

// NewError returns nil for an empty list.
func NewError(fields []FieldError) *errors.AppError {
	if len(fields) == 0 {
		return nil
	}
	return errors.NewValidationError("invalid input", fields)
}

// Field returns a single-field validation error in the same shape as Struct.
func Field(field, message string) *errors.AppError {
	return NewError([]FieldError{{Field: field, Message: message}})
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match layout %s", fe.Param())
	case "timestamp":
		return "must be a valid timestamp"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
