// Package errs provides the standardized error types used across the
// logistics application.
//
// Every public operation of the core reports failure through one of the
// error kinds defined here:
//   - ObjectNotFoundError: a referenced id, plate or code is absent
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is malformed or outside its enum
//   - ObjectInUseError: deleting or updating would orphan a reference
//   - DuplicateValueError: a unique constraint would be violated
//   - CapacityExceededError: a shipment would exceed vehicle capacity
//   - PersistenceError: the underlying statement execution failed
//
// Each kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting
//   - an Unwrap() method returning the sentinel, so callers can classify
//     failures with errors.Is without inspecting messages
package errs
