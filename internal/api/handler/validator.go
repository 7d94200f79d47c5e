package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field errors are reported with their JSON names.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("leadstatus", func(fl validator.FieldLevel) bool {
		return domain.LeadStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("leadsource", func(fl validator.FieldLevel) bool {
		return domain.LeadSource(fl.Field().String()).Valid()
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. One field is reported:
// the first missing field in declaration order, otherwise the first field
// that fails any other rule.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return domain.InvalidInput(fieldError(firstReported(ve)))
		}
		return err
	}
	return nil
}

// firstReported picks the error to show. Presence is checked across all
// fields before any format rule.
func firstReported(ve validator.ValidationErrors) validator.FieldError {
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return fe
		}
	}
	return ve[0]
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Invalid input: '%s' is required.", field)
	case "leadstatus":
		return fmt.Sprintf("Invalid input: '%s' must be one of %s.", field, domain.StatusValues())
	case "leadsource":
		return fmt.Sprintf("Invalid input: '%s' must be one of %s.", field, domain.SourceValues())
	case "min":
		return fmt.Sprintf("Invalid input: '%s' must be at least %s.", field, fe.Param())
	default:
		return fmt.Sprintf("Invalid input: '%s' failed validation (%s).", field, fe.Tag())
	}
}
