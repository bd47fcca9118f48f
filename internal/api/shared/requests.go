package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidationFields converts a validator error into a field→message map
// suitable for a structured 400 response. Non-validator errors produce a
// single generic entry.
func ValidationFields(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "invalid request"
		return fields
	}

	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = violationMessage(fe)
	}
	return fields
}

// violationMessage renders a single validation failure as a short,
// client-safe description.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters long"
	case "max":
		return "must be at most " + fe.Param() + " characters long"
	default:
		return "is invalid"
	}
}
