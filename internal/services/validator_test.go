package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
)

func TestValidateEmailAccepts(t *testing.T) {
	for _, email := range []string{
		"a@b.com",
		"Mario.Rossi@Example.IT",
		"first+tag@sub.domain.co.uk",
		`we"ird,local@b.com`,
		"a@b.c",
	} {
		assert.NoError(t, ValidateEmail(email), email)
	}
}

func TestValidateEmailRejects(t *testing.T) {
	for _, email := range []string{
		"not-an-email",
		"a@b",
		"a@b.",
		"@b.com",
		"a@.com",
		"a@@b.com",
		"a@b@c.com",
		"a b@c.com",
		" a@b.com",
		"a@b.com ",
		"a.b.c",
		"a\u00a0b@c.com",
		"a\vb@c.com",
		"a@b.c\u2003om",
		"a@b\u2028.com",
		"a\u0085b@c.com",
	} {
		err := ValidateEmail(email)
		if assert.Error(t, err, email) {
			assert.True(t, appErr.IsCode(err, appErr.CodeInvalid), email)
			assert.Contains(t, err.Error(), MsgEmailInvalid, email)
		}
	}
}

func TestValidateEmailMissing(t *testing.T) {
	for _, email := range []string{"", "   ", "\u00a0", "\t\u3000"} {
		err := ValidateEmail(email)
		if assert.Error(t, err) {
			assert.True(t, appErr.IsCode(err, appErr.CodeInvalid))
			assert.Contains(t, err.Error(), MsgEmailRequired)
		}
	}
}

// Anything lacking "@" or a "." after it is rejected.
func TestValidateEmailRequiresDotAfterAt(t *testing.T) {
	locals := []string{"a", "mario.rossi", "x.y"}
	domains := []string{"b", "localhost", "bcom"}
	for _, l := range locals {
		assert.Error(t, ValidateEmail(l))
		for _, d := range domains {
			assert.Error(t, ValidateEmail(l+"@"+d))
			assert.Error(t, ValidateEmail(l+d))
		}
	}
}

func TestNewValidatorEmailTag(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Var("a@b.com", EmailTag))
	assert.Error(t, v.Var("a\u00a0b@c.com", EmailTag))
	assert.Error(t, v.Var("a@b", EmailTag))
}
