package entity

import "strings"

// Filter is a caller-owned fragment of the WHERE condition, including the
// literal word WHERE (or empty for no filtering). The clause text passes
// through to the statement unmodified; values belong in Args so they reach
// the driver as bound parameters, never interpolated into the text.
type Filter struct {
	Clause string
	Args   []any
}

// Empty reports whether the filter carries no condition.
func (f Filter) Empty() bool {
	return strings.TrimSpace(f.Clause) == ""
}

// Where builds a filter from a bare condition and its bound arguments.
//
//	entity.Where("state = ?", "active")
func Where(condition string, args ...any) Filter {
	return Filter{Clause: "WHERE " + condition, Args: args}
}

// ForeignKey returns a filter scoping a child table to the rows owned by
// one parent entity, using the <parent>_id naming convention.
func ForeignKey(parent *Descriptor, parentID int64) Filter {
	return Where(parent.Name()+"_id = ?", parentID)
}
