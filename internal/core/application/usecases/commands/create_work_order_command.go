package commands

import (
	"errors"
	"strings"
	"time"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
	"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
)

// CreateWorkOrderParams is the raw input of a work order creation. Either
// ClientID or both ClientName and ClientMobile must be given. When ClientID
// is unknown and client details are present, the client is found by mobile
// number or registered.
type CreateWorkOrderParams struct {
	ClientID      *int64
	ClientName    string
	ClientMobile  string
	ClientEmail   string
	ClientAddress string

	ExpectedDeliveryDate time.Time
	Description          string
	Notes                string
	// Status defaults to Order Placed when empty.
	Status        string
	AdvancePaid   float64
	TotalEstimate float64
	ActualAmount  float64
	DueCleared    bool
}

type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	clientID      *int64
	clientName    string
	clientMobile  *kernel.Mobile
	clientEmail   kernel.Email
	clientAddress string

	expectedDeliveryDate time.Time
	description          string
	notes                string
	status               workorder.Status
	billing              workorder.Billing
	dueCleared           bool

	guard guard.ConstructorGuard
}

func NewCreateWorkOrderCommand(p CreateWorkOrderParams) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		clientName:           strings.TrimSpace(p.ClientName),
		clientAddress:        p.ClientAddress,
		expectedDeliveryDate: p.ExpectedDeliveryDate,
		description:          p.Description,
		notes:                p.Notes,
		dueCleared:           p.DueCleared,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClient(p),
		cmd.setStatus(p.Status),
		cmd.setBilling(p.AdvancePaid, p.TotalEstimate, p.ActualAmount),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// ClientID is nil when the client is identified by its details only.
func (c CreateWorkOrderCommand) ClientID() *int64 { return c.clientID }

// HasClientDetails reports whether a client can be found or registered by
// mobile number.
func (c CreateWorkOrderCommand) HasClientDetails() bool { return c.clientMobile != nil }

func (c CreateWorkOrderCommand) ClientName() string { return c.clientName }
func (c CreateWorkOrderCommand) ClientEmail() kernel.Email { return c.clientEmail }
func (c CreateWorkOrderCommand) ClientAddress() string { return c.clientAddress }
func (c CreateWorkOrderCommand) ExpectedDeliveryDate() time.Time { return c.expectedDeliveryDate }
func (c CreateWorkOrderCommand) Description() string { return c.description }
func (c CreateWorkOrderCommand) Notes() string { return c.notes }
func (c CreateWorkOrderCommand) Status() workorder.Status { return c.status }
func (c CreateWorkOrderCommand) Billing() workorder.Billing { return c.billing }
func (c CreateWorkOrderCommand) DueCleared() bool { return c.dueCleared }

// ClientMobile returns the zero Mobile when HasClientDetails is false.
func (c CreateWorkOrderCommand) ClientMobile() kernel.Mobile {
	if c.clientMobile == nil {
		return kernel.Mobile{}
	}
	return *c.clientMobile
}

func (c *CreateWorkOrderCommand) setClient(p CreateWorkOrderParams) error {
	if p.ClientID != nil {
		if *p.ClientID <= 0 {
			return errs.NewValueIsOutOfRangeError("client id", *p.ClientID, 1, "+Inf")
		}
		id := *p.ClientID
		c.clientID = &id
	}

	hasName := c.clientName != ""
	hasMobile := strings.TrimSpace(p.ClientMobile) != ""
	if c.clientID == nil && (!hasName || !hasMobile) {
		return errs.NewValueIsRequiredErrorWithCause(
			"client",
			errors.New("either client id or both client name and client mobile must be provided"),
		)
	}
	if !hasName || !hasMobile {
		return nil
	}

	mobile, err := kernel.NewMobile(p.ClientMobile)
	if err != nil {
		return err
	}
	email, err := kernel.NewEmail(p.ClientEmail)
	if err != nil {
		return err
	}
	c.clientMobile = &mobile
	c.clientEmail = email
	return nil
}

func (c *CreateWorkOrderCommand) setStatus(s string) error {
	if s == "" {
		c.status = workorder.Placed
		return nil
	}
	status, err := workorder.ParseStatus(s)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateWorkOrderCommand) setBilling(advance, estimate, actual float64) error {
	a, errA := kernel.NewMoney("advance paid", advance)
	e, errE := kernel.NewMoney("total estimate", estimate)
	x, errX := kernel.NewMoney("actual amount", actual)
	if err := errors.Join(errA, errE, errX); err != nil {
		return err
	}
	c.billing = workorder.Billing{AdvancePaid: a, TotalEstimate: e, ActualAmount: x}
	return nil
}
