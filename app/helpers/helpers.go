package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		errorMessages[field] = ValidationMessage(err.Field(), err.Tag(), err.Param())
	}
	return errorMessages
}

func ValidationMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric.", field)
	case "number":
		return fmt.Sprintf("%s must be a whole number.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s.", field, param)
	default:
		return fmt.Sprintf("%s failed the %s check.", field, tag)
	}
}

// DecodeJSON reads the whole request body into dst. An empty body decodes as {}.
func DecodeJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	return json.Unmarshal(body, dst)
}
