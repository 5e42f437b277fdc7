package workorder

import (
	"fmt"

	"boutique/internal/pkg/errs"
)

// Status is the lifecycle state of a work order. Its String form is the
// value stored in the database and exchanged over HTTP.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	Placed
	Started
	Finished
	DeliveredPaid
	DeliveredPaymentPending
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "Unknown",
		Placed:                  "Order Placed",
		Started:                 "Started",
		Finished:                "Finished",
		DeliveredPaid:           "Delivered - Fully Paid",
		DeliveredPaymentPending: "Delivered – Payment Pending",
	}
}

// AllStatuses returns the valid statuses in workflow order.
func AllStatuses() []Status {
	return []Status{Placed, Started, Finished, DeliveredPaid, DeliveredPaymentPending}
}

// StatusStrings returns the String form of every valid status in workflow order.
func StatusStrings() []string {
	all := AllStatuses()
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, s.String())
	}
	return out
}

// ParseStatus maps one of the five display strings to a Status. The match is
// exact, so "Delivered – Payment Pending" must use the en dash.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewStatusIsInvalidError(s, StatusStrings())
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Validate rejects anything other than the five known statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > DeliveredPaymentPending {
		return errs.NewStatusIsInvalidError(s.String(), StatusStrings())
	}
	return nil
}

// IsDelivered reports whether the order has been handed over to the client,
// regardless of payment.
func (s Status) IsDelivered() bool {
	return s == DeliveredPaid || s == DeliveredPaymentPending
}

// IsFinal reports whether no other status can follow.
func (s Status) IsFinal() bool {
	return s == DeliveredPaid
}

// CanTransitionTo reports whether next may follow s. Staying in the same
// valid status is always allowed. Moving from payment pending to fully paid
// does not depend on the amount due.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	switch s {
	case DeliveredPaid:
		return next == DeliveredPaid
	case DeliveredPaymentPending:
		return next == DeliveredPaymentPending || next == DeliveredPaid
	default:
		return true
	}
}

// NextStatuses returns the recommended next steps of the workflow.
func (s Status) NextStatuses() []Status {
	switch s {
	case Placed:
		return []Status{Started}
	case Started:
		return []Status{Finished}
	case Finished:
		return []Status{DeliveredPaid, DeliveredPaymentPending}
	case DeliveredPaymentPending:
		return []Status{DeliveredPaid}
	default:
		return []Status{}
	}
}

// Stage is the 1-based position of s in the workflow. Both delivered
// statuses share the last stage.
func (s Status) Stage() int {
	switch s {
	case Placed:
		return 1
	case Started:
		return 2
	case Finished:
		return 3
	case DeliveredPaid, DeliveredPaymentPending:
		return 4
	default:
		return 0
	}
}

// Description returns a short human readable explanation of s.
func (s Status) Description() string {
	switch s {
	case Placed:
		return "Initial status when order is first created"
	case Started:
		return "Work has begun on the order"
	case Finished:
		return "Work is completed, ready for delivery"
	case DeliveredPaid:
		return "Order delivered and payment completed"
	case DeliveredPaymentPending:
		return "Order delivered but payment still pending"
	default:
		return ""
	}
}

func (s Status) transitionError(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	return errs.NewStatusTransitionIsInvalidError(s.String(), next.String())
}
