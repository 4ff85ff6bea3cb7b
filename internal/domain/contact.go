package domain

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const minPhoneDigits = 10

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

var (
	errNameRequired    = errors.New("Name is required")
	errAddressRequired = errors.New("Address is required")
	errPhoneRequired   = errors.New("Phone number is required")
	errPhoneDigits     = errors.New("Phone must contain numbers only")
	errPhoneLength     = errors.New("Phone must be at least 10 digits")
	errEmailRequired   = errors.New("Email is required")
	errEmailAt         = errors.New("Email must contain @ symbol in the middle")
)

// Contact holds the renter details collected on confirmation.
type Contact struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (c Contact) Trimmed() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Address: strings.TrimSpace(c.Address),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
	}
}

// Validate checks every field and reports one message per invalid field.
// The returned error is a validation.Errors keyed by JSON field name.
func (c Contact) Validate() error {
	c = c.Trimmed()

	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.By(required(errNameRequired))),
		validation.Field(&c.Address, validation.By(required(errAddressRequired))),
		validation.Field(&c.Phone, validation.By(validatePhone)),
		validation.Field(&c.Email, validation.By(validateEmail)),
	)
}

func required(msg error) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return msg
		}
		return nil
	}
}

func validatePhone(value interface{}) error {
	phone, _ := value.(string)
	switch {
	case phone == "":
		return errPhoneRequired
	case !digitsOnly.MatchString(phone):
		return errPhoneDigits
	case len(phone) < minPhoneDigits:
		return errPhoneLength
	}
	return nil
}

func validateEmail(value interface{}) error {
	email, _ := value.(string)
	if email == "" {
		return errEmailRequired
	}
	if !ValidEmail(email) {
		return errEmailAt
	}
	return nil
}

// ValidEmail reports whether email has an '@' with at least one character
// on each side of its first occurrence.
func ValidEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1
}
