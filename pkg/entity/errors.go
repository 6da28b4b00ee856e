package entity

import (
	"errors"
	"fmt"
)

// Operation error kinds. Every failure surfaced by the data-access layer
// wraps exactly one of these, so callers can classify with errors.Is.
var (
	// ErrConnection marks a transport-level failure on the database
	// connection. Fatal to the calling operation; never retried here.
	ErrConnection = errors.New("connection failure")

	// ErrQuery marks a statement the database rejected (malformed SQL,
	// constraint violation). Surfaced to the caller; never retried here.
	ErrQuery = errors.New("query failure")

	// ErrMapping marks a result row that does not match the descriptor's
	// expectations, or a join against a child type the parent has no
	// declared relation for.
	ErrMapping = errors.New("row mapping failure")

	// ErrInvalidState marks a caller-side precondition violation, such as
	// editing an entity that has no identifier yet.
	ErrInvalidState = errors.New("invalid entity state")
)

// Descriptor configuration errors, reported by Builder.Build.
var (
	ErrNoColumns       = errors.New("descriptor declares no persisted columns")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrUnknownKind     = errors.New("unknown column kind")
	ErrNilAccessor     = errors.New("column accessor is nil")
	ErrNoFactory       = errors.New("descriptor has no entity factory")
)

// ErrNoRelation is reported when a join is requested against a child type
// the parent descriptor never declared a relation for. It wraps ErrMapping
// so callers classifying by kind see a mapping failure.
var ErrNoRelation = fmt.Errorf("%w: no relation declared for child type", ErrMapping)

// ErrNotPersisted is reported when an operation requires a stored entity
// but the entity has no identifier. It wraps ErrInvalidState.
var ErrNotPersisted = fmt.Errorf("%w: entity has no identifier", ErrInvalidState)
