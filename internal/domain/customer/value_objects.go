package customer

import (
	"regexp"
	"strings"

	"restaurant-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail = errs.Validation("invalid email format")
	ErrEmptyName    = errs.Validation("customer name cannot be empty")
	ErrEmptyPhone   = errs.Validation("customer phone cannot be empty")
	ErrNameTooLong  = errs.Validation("customer name is too long (max 100 characters)")
	ErrPhoneTooLong = errs.Validation("customer phone is too long (max 20 characters)")
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 100
	MaxPhoneLength = 20
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is the identity key of a customer; stored trimmed and lower-cased.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > MaxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Contact struct {
	name  string
	email Email
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return Contact{}, ErrNameTooLong
	}
	e, err := NewEmail(email)
	if err != nil {
		return Contact{}, err
	}
	if phone == "" {
		return Contact{}, ErrEmptyPhone
	}
	if len(phone) > MaxPhoneLength {
		return Contact{}, ErrPhoneTooLong
	}
	return Contact{name: name, email: e, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() Email  { return c.email }
func (c Contact) Phone() string { return c.phone }
