package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("submitted", "processing", "completed", "failed")

	for _, s := range []string{"submitted", "processing", "completed", "failed"} {
		assert.NoError(t, validate(s))
	}

	err := validate("archived")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"archived"`)
}
