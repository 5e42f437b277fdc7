package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound            = errors.New("object not found")
	ErrValueIsInvalid            = errors.New("value is invalid")
	ErrValueIsOutOfRange         = errors.New("value is out of range")
	ErrValueIsRequired           = errors.New("value is required")
	ErrStatusIsInvalid           = errors.New("status is invalid")
	ErrStatusTransitionIsInvalid = errors.New("status transition is invalid")
	ErrObjectAlreadyExists       = errors.New("object already exists")
	ErrObjectHasDependents       = errors.New("object has dependents")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a missing client or work order.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input field.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory field.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StatusIsInvalidError reports a status string outside the known set.
type StatusIsInvalidError struct {
	Value string
	Valid []string
}

func NewStatusIsInvalidError(value string, valid []string) *StatusIsInvalidError {
	return &StatusIsInvalidError{Value: value, Valid: valid}
}

func (e *StatusIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %q is not one of [%s]", ErrStatusIsInvalid, sanitize(e.Value), strings.Join(e.Valid, ", "))
}

func (e *StatusIsInvalidError) Unwrap() error {
	return ErrStatusIsInvalid
}

// StatusTransitionIsInvalidError reports a transition that the lifecycle forbids.
type StatusTransitionIsInvalidError struct {
	From string
	To   string
}

func NewStatusTransitionIsInvalidError(from, to string) *StatusTransitionIsInvalidError {
	return &StatusTransitionIsInvalidError{From: from, To: to}
}

func (e *StatusTransitionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrStatusTransitionIsInvalid, e.From, e.To)
}

func (e *StatusTransitionIsInvalidError) Unwrap() error {
	return ErrStatusTransitionIsInvalid
}

// ObjectAlreadyExistsError reports a uniqueness violation, e.g. a duplicate mobile number.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value)), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ObjectHasDependentsError reports a deletion blocked by dependent records.
type ObjectHasDependentsError struct {
	ParamName  string
	ID         any
	Dependents int64
}

func NewObjectHasDependentsError(paramName string, id any, dependents int64) *ObjectHasDependentsError {
	return &ObjectHasDependentsError{ParamName: paramName, ID: id, Dependents: dependents}
}

func (e *ObjectHasDependentsError) Error() string {
	return fmt.Sprintf("%s: %s %s is referenced by %d record(s)",
		ErrObjectHasDependents, e.ParamName, sanitize(e.ID), e.Dependents)
}

func (e *ObjectHasDependentsError) Unwrap() error {
	return ErrObjectHasDependents
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// IsNotFound reports whether err refers to a missing object.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrObjectNotFound)
}

// IsInvalidStatus reports whether err is an unknown status or a forbidden transition.
func IsInvalidStatus(err error) bool {
	return errors.Is(err, ErrStatusIsInvalid) || errors.Is(err, ErrStatusTransitionIsInvalid)
}

// IsConflict reports whether err is a uniqueness or dependency conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrObjectAlreadyExists) || errors.Is(err, ErrObjectHasDependents)
}
