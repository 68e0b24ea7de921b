// Package gdserrors centralizes the error taxonomy shared by every layer of
// gdscore: the huge-array collections, the triadic property store, and the
// Pregel engine all return these kinds instead of panicking on expected
// failures.
//
// Example:
//
//	v, err := col.LongValue(42)
//	var oob *gdserrors.IndexOutOfBoundsError
//	if errors.As(err, &oob) {
//		log.Printf("index %d out of range (size %d)", oob.Index, oob.Size)
//	}
package gdserrors

import (
	"errors"
	"fmt"
)

// Cancelled is returned (wrapped in a Pregel result, not as an error value
// from Run) when cooperative cancellation stopped execution. It is exported
// as a sentinel so callers that do treat it as an error can match it with
// errors.Is.
var Cancelled = errors.New("gdscore: cancelled")

// ConcurrencyError indicates a detected corruption of a thread-safety
// invariant. This should be unreachable; treat it as fatal.
var ConcurrencyError = errors.New("gdscore: concurrency invariant violated")

// IndexOutOfBoundsError reports an out-of-range access on a column, huge
// array, or id map.
type IndexOutOfBoundsError struct {
	Index int64
	Size  int64
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds (size %d)", e.Index, e.Size)
}

// NewIndexOutOfBounds constructs an IndexOutOfBoundsError.
func NewIndexOutOfBounds(index, size int64) error {
	return &IndexOutOfBoundsError{Index: index, Size: size}
}

// UnsupportedOperationError indicates a type-incompatible property access,
// e.g. calling LongValue on a Double column, or a scalar getter on an array
// column.
type UnsupportedOperationError struct {
	Message string
}

func (e *UnsupportedOperationError) Error() string {
	return "unsupported operation: " + e.Message
}

// NewUnsupportedOperation constructs an UnsupportedOperationError.
func NewUnsupportedOperation(message string) error {
	return &UnsupportedOperationError{Message: message}
}

// SchemaViolationError indicates a property not declared in schema, a column
// length mismatch, or a duplicate property added without put_if_absent
// semantics.
type SchemaViolationError struct {
	Scope  string
	Detail string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation in %s: %s", e.Scope, e.Detail)
}

// NewSchemaViolation constructs a SchemaViolationError.
func NewSchemaViolation(scope, detail string) error {
	return &SchemaViolationError{Scope: scope, Detail: detail}
}

// UnknownNameError indicates a lookup miss on a store (property name,
// relationship type, or similar).
type UnknownNameError struct {
	Scope string
	Name  string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown name %q in %s", e.Name, e.Scope)
}

// NewUnknownName constructs an UnknownNameError.
func NewUnknownName(scope, name string) error {
	return &UnknownNameError{Scope: scope, Name: name}
}

// AlgorithmFailureError wraps a panic or error raised from user-supplied
// Pregel compute code. It is fatal to the current run; there is no per-node
// retry.
type AlgorithmFailureError struct {
	Message string
	Cause   error
}

func (e *AlgorithmFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("algorithm failure: %s: %v", e.Message, e.Cause)
	}
	return "algorithm failure: " + e.Message
}

func (e *AlgorithmFailureError) Unwrap() error { return e.Cause }

// NewAlgorithmFailure constructs an AlgorithmFailureError.
func NewAlgorithmFailure(message string, cause error) error {
	return &AlgorithmFailureError{Message: message, Cause: cause}
}
