package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsRequired indicates a mandatory value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates a value is malformed or out of its enum.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectInUse indicates an object is still referenced and the
	// requested mutation would orphan that reference.
	ErrObjectInUse = errors.New("object is in use")

	// ErrDuplicateValue indicates a unique-constraint collision.
	ErrDuplicateValue = errors.New("duplicate value")

	// ErrCapacityExceeded indicates a load would exceed a vehicle's capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrPersistence indicates the storage collaborator failed for reasons
	// opaque to the core.
	ErrPersistence = errors.New("persistence failure")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that the object identified by ID was not found.
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
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectNotFound, e.Cause}
	}
	return []error{ErrObjectNotFound}
}

// ValueIsRequiredError reports a missing mandatory value.
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
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsRequired, e.Cause}
	}
	return []error{ErrValueIsRequired}
}

// ValueIsInvalidError reports a malformed or out-of-enum value.
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
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

// Unwrap exposes the cause so callers can classify the underlying reason,
// e.g. a capacity rejection folded into an invalid-session error.
func (e *ValueIsInvalidError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsInvalid, e.Cause}
	}
	return []error{ErrValueIsInvalid}
}

// ObjectInUseError reports that the object identified by ID is still
// referenced by rows of ReferencedBy and therefore cannot be mutated.
type ObjectInUseError struct {
	ParamName    string
	ID           any
	ReferencedBy string
	Cause        error
}

func NewObjectInUseError(paramName string, id any, referencedBy string) *ObjectInUseError {
	return &ObjectInUseError{ParamName: paramName, ID: id, ReferencedBy: referencedBy}
}

func NewObjectInUseErrorWithCause(paramName string, id any, referencedBy string, cause error) *ObjectInUseError {
	return &ObjectInUseError{ParamName: paramName, ID: id, ReferencedBy: referencedBy, Cause: cause}
}

func (e *ObjectInUseError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %v is referenced by %s (cause: %s)",
			ErrObjectInUse, e.ParamName, e.ID, e.ReferencedBy, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v is referenced by %s",
		ErrObjectInUse, e.ParamName, e.ID, e.ReferencedBy))
}

func (e *ObjectInUseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectInUse, e.Cause}
	}
	return []error{ErrObjectInUse}
}

// DuplicateValueError reports a unique-constraint collision on Value.
type DuplicateValueError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewDuplicateValueError(paramName string, value any) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value}
}

func NewDuplicateValueErrorWithCause(paramName string, value any, cause error) *DuplicateValueError {
	return &DuplicateValueError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateValueError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %v already exists (cause: %s)",
			ErrDuplicateValue, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %v already exists", ErrDuplicateValue, e.ParamName, e.Value))
}

func (e *DuplicateValueError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrDuplicateValue, e.Cause}
	}
	return []error{ErrDuplicateValue}
}

// CapacityExceededError reports that accepting AttemptedKG on top of the
// current load would exceed LimitKG. HeadroomKG names the remaining space.
type CapacityExceededError struct {
	ParamName   string
	AttemptedKG float64
	LimitKG     float64
	HeadroomKG  float64
}

func NewCapacityExceededError(paramName string, attemptedKG, limitKG, headroomKG float64) *CapacityExceededError {
	return &CapacityExceededError{
		ParamName:   paramName,
		AttemptedKG: attemptedKG,
		LimitKG:     limitKG,
		HeadroomKG:  headroomKG,
	}
}

func (e *CapacityExceededError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s of %.2fkg exceeds limit of %.2fkg, headroom is %.2fkg",
		ErrCapacityExceeded, e.ParamName, e.AttemptedKG, e.LimitKG, e.HeadroomKG))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// PersistenceError wraps a storage-level failure with the operation name.
type PersistenceError struct {
	Op    string
	Cause error
}

func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistence, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistence, e.Op))
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPersistence, e.Cause}
	}
	return []error{ErrPersistence}
}
