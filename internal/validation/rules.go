// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/mediport/internal/errors"
)

// DateLayout is the calendar date format exchanged with the remote API.
const DateLayout = "2006-01-02"

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// phoneRegex accepts digits, spaces, dashes, parentheses and a leading plus
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)

	identifierRegex = regexp.MustCompile(`^\S+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// Phone validates a loosely formatted phone number.
var Phone = validation.NewStringRuleWithError(
	func(s string) bool {
		return phoneRegex.MatchString(s)
	},
	validation.NewError("validation_phone_format", "must be a valid phone number"),
)

// Identifier validates codes such as bed ids and medication codes, which carry no whitespace at all.
var Identifier = validation.Match(identifierRegex).
	ErrorObject(validation.NewError("validation_identifier", "must not contain whitespace"))

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Date validates a YYYY-MM-DD calendar date. Empty strings are left to Required.
var Date = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := time.Parse(DateLayout, s)
		return err == nil
	},
	validation.NewError("validation_date_format", "must be a date in YYYY-MM-DD format"),
)

// OneOf validates that a string is one of the allowed values.
func OneOf(values ...string) validation.Rule {
	allowed := make([]any, 0, len(values))
	for _, v := range values {
		allowed = append(allowed, v)
	}
	return validation.In(allowed...).Error("must be one of: " + strings.Join(values, ", "))
}
