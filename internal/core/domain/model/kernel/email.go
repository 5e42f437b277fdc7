package kernel

import (
	"strings"

	"boutique/internal/pkg/errs"
)

// MaxEmailLength bounds the stored address.
const MaxEmailLength = 100

// Email is an optional email address. The zero value means "no email".
type Email struct {
	value string
}

// NewEmail returns the zero Email for a blank string, otherwise s must be a
// bare address such as "asha@example.com" (no display name).
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, nil
	}
	if len(s) > MaxEmailLength {
		return Email{}, errs.NewValueIsOutOfRangeError("email length", len(s), 1, MaxEmailLength)
	}

	if err := validate.Var(s, emailRule); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{value: s}, nil
}

func (e Email) IsPresent() bool {
	return e.value != ""
}

func (e Email) String() string {
	return e.value
}
