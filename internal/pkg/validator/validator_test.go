package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `validate:"required"`
	Rating *int   `validate:"required"`
}

func TestValidate(t *testing.T) {
	zero := 0

	assert.Nil(t, Validate(sample{Name: "x", Rating: &zero}))
	assert.Equal(t, map[string]string{"Name": "required", "Rating": "required"}, Validate(sample{}))
}
