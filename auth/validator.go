package auth

import (
	"ext-data/errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PasswordPolicy holds the password rules applied at registration.
// The composition root fills it from the environment.
type PasswordPolicy struct {
	MinLength     int `validate:"gte=8"`
	MaxLength     int `validate:"gtefield=MinLength,lte=1024"`
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy asks for 12 to 72 characters mixing every class.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     12,
		MaxLength:     72,
		RequireUpper:  true,
		RequireLower:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

func (p PasswordPolicy) Validate() error {
	return validate.Struct(p)
}

// Check returns errors.ErrInvalidPassword naming the first rule password breaks.
// Length is counted in characters.
func (p PasswordPolicy) Check(password string) error {
	length := utf8.RuneCountInString(password)
	if length < p.MinLength || length > p.MaxLength {
		return fmt.Errorf("%w: length must be between %d and %d characters",
			errors.ErrInvalidPassword, p.MinLength, p.MaxLength)
	}

	var classes struct{ upper, lower, digit, symbol bool }
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			classes.upper = true
		case unicode.IsLower(char):
			classes.lower = true
		case unicode.IsNumber(char):
			classes.digit = true
		case unicode.IsPunct(char), unicode.IsSymbol(char):
			classes.symbol = true
		}
	}

	for _, rule := range []struct {
		required, present bool
		name              string
	}{
		{p.RequireUpper, classes.upper, "an uppercase letter"},
		{p.RequireLower, classes.lower, "a lowercase letter"},
		{p.RequireDigit, classes.digit, "a digit"},
		{p.RequireSymbol, classes.symbol, "a symbol"},
	} {
		if rule.required && !rule.present {
			return fmt.Errorf("%w: missing %s", errors.ErrInvalidPassword, rule.name)
		}
	}
	return nil
}

// ValidateEmail rejects anything validator's email rule rejects.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: %q", errors.ErrInvalidEmail, email)
	}
	return nil
}
