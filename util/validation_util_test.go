package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	ID     string `validate:"required"`
	Folder string `validate:"required"`
}

func validationErrors(t *testing.T, err error) validator.ValidationErrors {
	var vErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &vErrs))
	return vErrs
}

func TestValidationErrorToMessageRequired(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleInput{})
	assert.Error(t, err)

	msg := ValidationErrorToMessage(validationErrors(t, err))
	assert.Contains(t, msg, "ID is required")
	assert.Contains(t, msg, "Folder is required")
}

func TestValidationErrorToMessageSingleField(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleInput{ID: "1"})
	assert.Error(t, err)

	msg := ValidationErrorToMessage(validationErrors(t, err))
	assert.Equal(t, "Folder is required", msg)
}
