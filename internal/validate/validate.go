// Package validate applies field-format rules at the presentation edge.
// The stores themselves only enforce uniqueness and presence; format checks
// happen here before any mutation is attempted.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// RFC-5322-lite address shape: local@domain.tld.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// Local numbers: 0 or +84 prefix with 8-9 digits. International:
	// optional + and country code, 8-12 digits total.
	phonePattern = regexp.MustCompile(`^(?:\+84|0)(?:\d{9}|\d{8})$|^(?:\+?\d{1,3})?\d{8,12}$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// The built-in "email" tag is looser than the address shape the record
	// store historically accepted, so both rules are custom.
	_ = val.RegisterValidation("address_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return val
}

// CustomerForm carries the fields of an add/update request.
type CustomerForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,address_email"`
	Phone   string `validate:"required,phone"`
	Address string `validate:"required"`
}

// RegisterForm carries the fields of a registration request.
type RegisterForm struct {
	Username        string `validate:"required"`
	Password        string `validate:"required,min=6"`
	PasswordConfirm string `validate:"required,eqfield=Password"`
	Email           string `validate:"required,address_email"`
	SecurityAnswer  string `validate:"required"`
}

// Customer checks an add/update form, returning the first violation as a
// caller-facing message.
func Customer(f CustomerForm) error {
	if err := v.Struct(f); err != nil {
		return describe(err)
	}
	return nil
}

// Register checks a registration form, returning the first violation as a
// caller-facing message.
func Register(f RegisterForm) error {
	if err := v.Struct(f); err != nil {
		return describe(err)
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "address_email":
		return errors.New("invalid email address")
	case "phone":
		return errors.New("invalid phone number (e.g. +84912345678 or 0912345678)")
	case "min":
		return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return errors.New("password confirmation does not match")
	}
	return fmt.Errorf("invalid %s", field)
}
