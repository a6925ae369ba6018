package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	appErr "github.com/droplaunch/waitlist/pkg/errors"
)

// EmailTag is the validator tag for waitlist email addresses.
const EmailTag = "waitlist_email"

const (
	MsgEmailRequired = "Email richiesta"
	MsgEmailInvalid  = "Email non valida"
)

// emailPattern is a syntactic check only: something, "@", something, ".",
// something. No normalization is applied to the input. Whitespace covers
// vertical tab and the Unicode separators as well as ASCII blanks.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}@]+@[^\s\v\p{Z}@]+\.[^\s\v\p{Z}]+$`)

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// NewValidator returns a validator with the waitlist_email tag registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
		candidate := fl.Field().String()
		return !hasSpace(candidate) && emailPattern.MatchString(candidate)
	})
	if err != nil {
		panic(fmt.Sprintf("services: register %s validation: %v", EmailTag, err))
	}
	return v
}

var defaultValidator = NewValidator()

// ValidateEmail fails with an invalid-input error unless candidate is a
// well-formed email address.
func ValidateEmail(candidate string) error {
	if strings.TrimFunc(candidate, unicode.IsSpace) == "" {
		return appErr.InvalidInput(MsgEmailRequired)
	}
	if err := defaultValidator.Var(candidate, EmailTag); err != nil {
		return appErr.InvalidInput(MsgEmailInvalid)
	}
	return nil
}
