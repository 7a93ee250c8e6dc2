package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type ApiError struct {
	// Code is the HTTP status code
	Code int `json:"code"`
	// Message is the error message
	Message string `json:"message"`
}

func ApiErrorf(c *gin.Context, code int, format string, args ...interface{}) ApiError {
	ar := ApiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
	c.AbortWithStatusJSON(code, ar)
	return ar
}

// BindErrorToUser maps a JSON decode failure to a field level message
// where the decoder knows the offending field.
func BindErrorToUser(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("field %s must be of type %s", typeErr.Field, typeErr.Type.String())
		}
		return fmt.Sprintf("body must be of type %s", typeErr.Type.String())
	}
	return "invalid format"
}
