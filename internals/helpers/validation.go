package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorsToMap flattens validator.v10 errors into the per-field
// shape JsonValidationError expects. Non-validator errors map to a single
// generic entry so callers can pass any error through.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
