// Package handler provides the HTTP request handlers for authcore.
package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in violation
// messages come from the json tag so they match the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest validates a decoded request body and returns every
// violation as a client-facing message list, in declaration order.
func validateRequest(req any) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, violationMessage(fe))
	}
	return messages
}

// violationMessage renders one violation in the phrasing clients of the
// legacy API already parse.
func violationMessage(fe validator.FieldError) string {
	field := fe.Field()

	// The phone fields keep their historical combined message for both
	// the digits-only and the exact-length rule.
	switch field {
	case "numero":
		if fe.Tag() == "numeric" || fe.Tag() == "len" {
			return `"numero" must contain a number 9 characters long.`
		}
	case "ddd":
		if fe.Tag() == "numeric" || fe.Tag() == "len" {
			return `"ddd" must contain a number 2 characters long.`
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "len":
		return fmt.Sprintf("%q must contain %s items", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
