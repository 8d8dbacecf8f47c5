package api

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/learnly/learnly-go/enums"
)

// validate enforces the backend's signup rules before a request leaves the
// client, so validation failures never hit the network.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mirrors the backend password policy: at least 8 characters with an
	// uppercase letter, a lowercase letter, a digit and a special character.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 8 {
			return false
		}
		var upper, lower, digit, special bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			case strings.ContainsRune(`!@#$%^&*(),.?":{}|<>`, r):
				special = true
			}
		}
		return upper && lower && digit && special
	})

	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return enums.Role(fl.Field().String()).Valid()
	})

	return v
}

// ValidationError describes client-side rejected input. It is surfaced
// inline to the user and never sent to the backend.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}

	first := errs[0]
	reason := first.Tag()
	switch first.Tag() {
	case "required":
		reason = "value is required"
	case "email":
		reason = "must be a valid email address"
	case "password":
		reason = "must be at least 8 characters with upper, lower, digit and special characters"
	case "role":
		reason = "must be one of admin, teacher, student"
	case "min":
		reason = "below the allowed minimum " + first.Param()
	case "max":
		reason = "above the allowed maximum " + first.Param()
	}
	return &ValidationError{Field: strings.ToLower(first.Field()), Reason: reason}
}
