package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GielinorRush_Go/internal/buff"
	"github.com/osse101/GielinorRush_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// GP amounts validate as their decimal string
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if g, ok := field.Interface().(domain.GP); ok {
			return g.String()
		}
		return nil
	}, domain.GP{})

	_ = v.RegisterValidation("gp_positive", validateGPPositive)
	_ = v.RegisterValidation("gp_nonzero", validateGPNonZero)
	_ = v.RegisterValidation("buff_type", validateBuffType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt", "lte":
			errs[field] = "Out of range"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "gp_positive":
			errs[field] = "Must be a positive GP amount"
		case "gp_nonzero":
			errs[field] = "Must be a non-zero GP amount"
		case "buff_type":
			errs[field] = "Unknown buff type"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateGPPositive(fl validator.FieldLevel) bool {
	g, err := domain.ParseGP(fl.Field().String())
	return err == nil && g.Sign() > 0
}

func validateGPNonZero(fl validator.FieldLevel) bool {
	g, err := domain.ParseGP(fl.Field().String())
	return err == nil && !g.IsZero()
}

func validateBuffType(fl validator.FieldLevel) bool {
	_, ok := buff.Lookup(domain.BuffType(fl.Field().String()))
	return ok
}
