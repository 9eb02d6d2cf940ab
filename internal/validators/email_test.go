package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/izzypositivetech-001/Attendifybackend/internal/validators"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"a@b.co",
		"john.doe@example.com",
		"john+tag@sub.example.org",
	}
	for _, e := range valid {
		assert.True(t, validators.IsEmailValid(e), e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user name@example.com",
	}
	for _, e := range invalid {
		assert.False(t, validators.IsEmailValid(e), e)
	}
}
