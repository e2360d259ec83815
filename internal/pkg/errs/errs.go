package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as classification anchors for errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrForbidden         = errors.New("access denied")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrAlreadyApplied    = errors.New("seller request already exists")
	ErrStore             = errors.New("store failure")
)

// sanitize removes newlines from values interpolated into error messages
// so that a single failure always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value does not satisfy its rules.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist in the store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// UnauthenticatedError indicates that an operation requires a signed-in actor
// but the request carried no identity (or a guest one).
type UnauthenticatedError struct {
	OperationName string
}

// NewUnauthenticatedError creates an UnauthenticatedError for the given operation.
func NewUnauthenticatedError(operationName string) *UnauthenticatedError {
	return &UnauthenticatedError{OperationName: operationName}
}

func (e *UnauthenticatedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthenticated, e.OperationName))
}

func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// ForbiddenError indicates that the actor is authenticated but its role does
// not permit the operation.
type ForbiddenError struct {
	OperationName string
	Role          string
}

// NewForbiddenError creates a ForbiddenError for the given operation and actor role.
func NewForbiddenError(operationName string, role string) *ForbiddenError {
	return &ForbiddenError{OperationName: operationName, Role: role}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s cannot perform %s", ErrForbidden, e.Role, e.OperationName))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AlreadyProcessedError indicates that a one-way state transition was already
// applied and the entity is no longer in the state the operation requires.
type AlreadyProcessedError struct {
	ParamName string
	ID        any
}

// NewAlreadyProcessedError creates an AlreadyProcessedError for the given parameter and identifier.
func NewAlreadyProcessedError(paramName string, id any) *AlreadyProcessedError {
	return &AlreadyProcessedError{ParamName: paramName, ID: id}
}

func (e *AlreadyProcessedError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s", ErrAlreadyProcessed, e.ParamName, e.ID))
}

func (e *AlreadyProcessedError) Unwrap() error {
	return ErrAlreadyProcessed
}

// AlreadyAppliedError indicates that the user already has a seller request on
// file. A user may apply at most once, regardless of the request's outcome.
type AlreadyAppliedError struct {
	UserID any
}

// NewAlreadyAppliedError creates an AlreadyAppliedError for the given user identifier.
func NewAlreadyAppliedError(userID any) *AlreadyAppliedError {
	return &AlreadyAppliedError{UserID: userID}
}

func (e *AlreadyAppliedError) Error() string {
	return sanitize(fmt.Sprintf("%s: user ID is: %s", ErrAlreadyApplied, e.UserID))
}

func (e *AlreadyAppliedError) Unwrap() error {
	return ErrAlreadyApplied
}

// StoreError indicates an infrastructure failure in the persistence layer.
// It is the only error kind callers may treat as transient and retry.
type StoreError struct {
	OperationName string
	Cause         error
}

// NewStoreErrorWithCause creates a StoreError wrapping the driver-level cause.
func NewStoreErrorWithCause(operationName string, cause error) *StoreError {
	return &StoreError{OperationName: operationName, Cause: cause}
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStore, e.OperationName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStore, e.OperationName))
}

func (e *StoreError) Unwrap() error {
	return ErrStore
}
