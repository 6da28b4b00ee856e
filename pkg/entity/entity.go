// Package entity defines the contracts of the generic data-access layer:
// the Entity identity contract, the Descriptor metadata that binds an
// entity type to its table and column accessors, pagination state, filter
// clauses, and the standard error kinds every layer reports through.
package entity

// Entity is one persisted record of some type, addressed by an integer
// identifier. An identifier of zero means the entity has not been stored
// yet; the store assigns the identifier on create.
type Entity interface {
	// ID returns the entity's identifier, or zero if not yet persisted.
	ID() int64

	// SetID assigns the store-generated identifier. Once assigned, the
	// identifier is never reassigned.
	SetID(id int64)
}

// Ref carries the identifier of a persisted entity. Concrete entity types
// embed it to satisfy the Entity interface.
type Ref struct {
	id int64
}

// NewRef returns a Ref holding a known identifier. Callers use it to
// construct entities for rows that already exist.
func NewRef(id int64) Ref {
	return Ref{id: id}
}

// ID returns the identifier, or zero if the entity has not been persisted.
func (r *Ref) ID() int64 {
	return r.id
}

// SetID assigns the identifier if none has been assigned yet. Later calls
// are ignored, so an identifier handed out by the store is never replaced.
func (r *Ref) SetID(id int64) {
	if r.id == 0 {
		r.id = id
	}
}

// Persisted reports whether the entity has been assigned an identifier.
func Persisted(e Entity) bool {
	return e.ID() != 0
}

// ColumnSubset is implemented by entity types that persist only a subset
// of their table's columns. When an entity implements it, every operation
// touches only the named columns; all other declared columns are left to
// whichever other entity type manages them.
type ColumnSubset interface {
	// PersistedColumns returns the column names this entity manages.
	PersistedColumns() []string
}
