// Package workorder contains the WorkOrder aggregate and its lifecycle.
//
// A work order belongs to exactly one client and moves through five statuses:
//
//	Order Placed ──> Started ──> Finished ──┬──> Delivered - Fully Paid
//	                                        └──> Delivered – Payment Pending ──> Delivered - Fully Paid
//
// While an order is not delivered any status may be set, so the arrows above
// are the recommended workflow (Status.NextStatuses) rather than a constraint.
// Once delivered the order may only move from Payment Pending to Fully Paid.
//
// Billing is tracked as three non-negative amounts. The amount due and the
// due cleared flag are derived from them and from the status:
//
//	billable   = actual amount if it is positive, otherwise total estimate
//	amount due = max(0, billable - advance paid)
//	due cleared = status is Delivered - Fully Paid and amount due is 0
//
// Every status change records a StatusChanged domain event that the unit of
// work publishes after commit.
package workorder
