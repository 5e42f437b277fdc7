package client

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

const (
	MaxNameLength    = 100
	MaxAddressLength = 500
)

// ErrClientIsNotConstructed is returned when a Client was not created through
// NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is the aggregate root for a boutique customer.
//
// Invariants:
//   - name is non-empty and at most MaxNameLength runes
//   - mobile is a valid 10 digit kernel.Mobile
//   - email is either absent or a valid address
//   - address is at most MaxAddressLength runes
type Client struct {
	id        int64
	name      string
	mobile    kernel.Mobile
	email     kernel.Email
	address   string
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewClient validates the inputs and returns a Client without an id. The id
// is assigned by storage through AssignID.
//
// Example:
//
//	mobile, _ := kernel.NewMobile("9876543210")
//	c, err := client.NewClient("Priya Sharma", mobile, kernel.Email{}, "", time.Now())
func NewClient(name string, mobile kernel.Mobile, email kernel.Email, address string, now time.Time) (*Client, error) {
	c := &Client{
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setMobile(mobile),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}
	c.email = email

	return c, nil
}

// RestoreClient rebuilds a Client from persisted state. The same field
// checks as NewClient apply, so corrupted rows surface as errors.
func RestoreClient(
	id int64,
	name string,
	mobile kernel.Mobile,
	email kernel.Email,
	address string,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	c, err := NewClient(name, mobile, email, address, createdAt)
	if err != nil {
		return nil, err
	}
	if err := c.AssignID(id); err != nil {
		return nil, err
	}
	c.updatedAt = updatedAt.UTC()
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// AssignID sets the storage generated identifier.
func (c *Client) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("client id", id, 1, "+Inf")
	}
	c.id = id
	return nil
}

func (c *Client) ID() int64 { return c.id }
func (c *Client) Name() string { return c.name }
func (c *Client) Mobile() kernel.Mobile { return c.mobile }
func (c *Client) Email() kernel.Email { return c.email }
func (c *Client) Address() string { return c.address }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
func (c *Client) IsEqual(o *Client) bool { return o != nil && c.id == o.id }

// Changes lists the fields of a partial client update. Nil fields are left
// untouched. A non-nil Email pointing to the zero kernel.Email clears it.
type Changes struct {
	Name    *string
	Mobile  *kernel.Mobile
	Email   *kernel.Email
	Address *string
}

// IsEmpty reports whether no field is set.
func (ch Changes) IsEmpty() bool {
	return ch.Name == nil && ch.Mobile == nil && ch.Email == nil && ch.Address == nil
}

// Update applies ch. Either every change is applied or none is.
func (c *Client) Update(ch Changes, now time.Time) error {
	next := *c

	var validation []error
	if ch.Name != nil {
		validation = append(validation, next.setName(*ch.Name))
	}
	if ch.Mobile != nil {
		validation = append(validation, next.setMobile(*ch.Mobile))
	}
	if ch.Address != nil {
		validation = append(validation, next.setAddress(*ch.Address))
	}
	if err := errors.Join(validation...); err != nil {
		return err
	}
	if ch.Email != nil {
		next.email = *ch.Email
	}

	next.updatedAt = now.UTC()
	*c = next
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	c.name = name
	return nil
}

func (c *Client) setMobile(mobile kernel.Mobile) error {
	if err := mobile.Validate(); err != nil {
		return err
	}
	c.mobile = mobile
	return nil
}

func (c *Client) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if n := utf8.RuneCountInString(address); n > MaxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxAddressLength),
		)
	}
	c.address = address
	return nil
}
