package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorToMessage converts a validator.ValidationErrors to a user
// facing message listing every failed field
func ValidationErrorToMessage(errs validator.ValidationErrors) string {
	msgs := []string{}
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("validation failed on field %s, tag %s", e.Field(), e.ActualTag()))
		}
	}
	return strings.Join(msgs, ". ")
}
