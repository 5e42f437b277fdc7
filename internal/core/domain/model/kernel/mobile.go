package kernel

import (
	"fmt"
	"strings"

	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

// MobileLength is the exact number of digits in a mobile number.
const MobileLength = 10

var ErrMobileIsNotConstructed = errs.NewValueIsRequiredError("mobile number must be created via NewMobile")

// Mobile is a client's mobile number. It uniquely identifies a client.
type Mobile struct {
	value string
	guard guard.ConstructorGuard
}

// NewMobile validates s (surrounding whitespace is ignored) and returns a
// Mobile. Anything other than exactly 10 ASCII digits is rejected.
func NewMobile(s string) (Mobile, error) {
	s = strings.TrimSpace(s)
	if err := validate.Var(s, mobileRule); err != nil {
		return Mobile{}, errs.NewValueIsInvalidErrorWithCause(
			"mobile number",
			fmt.Errorf("%q must be exactly %d digits: %w", s, MobileLength, err),
		)
	}
	return Mobile{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (m Mobile) Validate() error {
	return m.guard.Validate(ErrMobileIsNotConstructed)
}

func (m Mobile) String() string {
	return m.value
}

func (m Mobile) IsEqual(other Mobile) bool {
	return m.value == other.value
}
