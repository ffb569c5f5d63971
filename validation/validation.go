// Package validation exposes the ISBN-10 check as a go-playground/validator rule.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lepinkainen/isbn10"
)

// Tag is the struct tag that selects the ISBN-10 rule. The validator's built-in
// isbn10 tag does not restrict hyphen placement, so this rule uses its own name.
const Tag = "isbn10strict"

// New returns a validator with required-struct support enabled and the ISBN-10 rule registered.
func New() (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// Register installs the ISBN-10 rule on validate under Tag.
func Register(validate *validator.Validate) error {
	if err := validate.RegisterValidation(Tag, validateISBN10); err != nil {
		return fmt.Errorf("failed to register %s validation: %w", Tag, err)
	}
	return nil
}

// validateISBN10 fails non-string fields and blank strings; emptiness is the
// concern of the required tag.
func validateISBN10(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	valid, err := isbn10.IsValid(s)
	if err != nil {
		return false
	}
	return valid
}
