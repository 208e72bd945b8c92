package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by the store wraps one of these.
var (
	ErrIncompatibleKind = errors.New("incompatible port kinds")
	ErrPortOccupied     = errors.New("input port already connected")
	ErrUnknownIdentity  = errors.New("unknown identity")
	ErrPortDirection    = errors.New("connection must run from an output to an input")
	ErrUnknownTemplate  = errors.New("unknown node template")
	ErrIDExhausted      = errors.New("identity space exhausted")
)

// GraphError provides structured information about a failed store operation.
type GraphError struct {
	Op      string // Operation that failed (e.g., "connect", "delete_node")
	Entity  string // "node", "port" or "template"
	ID      uint64 // Entity ID (if applicable)
	Context string // Additional context
	Cause   error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.ID != 0 && e.Context != "":
		return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.ID, e.Context, e.Cause)
	case e.ID != 0:
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// ErrorBuilder provides a fluent interface for building GraphErrors.
type ErrorBuilder struct {
	err GraphError
}

// NewError creates a new error builder for the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: GraphError{Op: op}}
}

// Node sets the entity to "node" with the given ID.
func (b *ErrorBuilder) Node(id NodeID) *ErrorBuilder {
	b.err.Entity = "node"
	b.err.ID = uint64(id)
	return b
}

// Port sets the entity to "port" with the given ID.
func (b *ErrorBuilder) Port(id PortID) *ErrorBuilder {
	b.err.Entity = "port"
	b.err.ID = uint64(id)
	return b
}

// Template sets the entity to "template".
func (b *ErrorBuilder) Template(name string) *ErrorBuilder {
	b.err.Entity = "template"
	b.err.Context = name
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying sentinel.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed GraphError.
func (b *ErrorBuilder) Build() *GraphError {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// IsRejectedConnection reports whether err is one of the ordinary reasons a
// wire is refused, as opposed to a stale identity.
func IsRejectedConnection(err error) bool {
	return errors.Is(err, ErrIncompatibleKind) ||
		errors.Is(err, ErrPortOccupied) ||
		errors.Is(err, ErrPortDirection)
}

// IsUnknown reports whether err was caused by a missing node or port.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownIdentity)
}

// Reason returns a short machine label for err, used for metric labels.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrIncompatibleKind):
		return "incompatible_kind"
	case errors.Is(err, ErrPortOccupied):
		return "port_occupied"
	case errors.Is(err, ErrPortDirection):
		return "port_direction"
	case errors.Is(err, ErrUnknownIdentity):
		return "unknown_identity"
	case errors.Is(err, ErrUnknownTemplate):
		return "unknown_template"
	case errors.Is(err, ErrIDExhausted):
		return "id_exhausted"
	default:
		return "error"
	}
}
