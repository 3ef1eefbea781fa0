// Package validation provides custom validation rules for the application.
package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sealbox/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

var (
	errJSONRequired = validation.NewError("validation_json_required", "is required")
	errJSONNull     = validation.NewError("validation_json_null", "must not be null")
	errJSONInvalid  = validation.NewError("validation_json_invalid", "must be valid JSON")
	errJSONType     = validation.NewError("validation_json_type", "must be a JSON value")
)

// JSONValue validates that a raw JSON field is present, well formed and not null.
// Use it for payload fields where an omitted value and an explicit null are both missing data.
var JSONValue = validation.By(func(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errJSONType
	}

	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return errJSONRequired
	case bytes.Equal(trimmed, []byte("null")):
		return errJSONNull
	case !json.Valid(trimmed):
		return errJSONInvalid
	}
	return nil
})
