// Package errs provides the error taxonomy shared by the boutique work-order
// service. Every error type pairs a sentinel (used with errors.Is) with a
// struct carrying the details, and unwraps to its sentinel.
//
// The types fall into four kinds that the transport layer maps to responses:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - not found: ObjectNotFoundError
//   - invalid status: StatusIsInvalidError, StatusTransitionIsInvalidError
//   - conflict: ObjectAlreadyExistsError, ObjectHasDependentsError
//
// IsValidation, IsNotFound, IsInvalidStatus and IsConflict classify any
// (possibly joined or wrapped) error into one of these kinds.
package errs
