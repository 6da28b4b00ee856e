// Package sqlgen synthesizes SQL text from entity descriptors, pagination
// state, and filter clauses. Every function is pure: no I/O, no driver
// knowledge. Values are always returned as bound arguments alongside the
// statement text; only identifiers (validated at descriptor registration)
// and the caller-owned filter clause appear in the text itself.
//
// The emitted dialect is ANSI-ish with double-quoted identifiers and the
// `LIMIT offset,count` paging form that SQLite and MySQL both accept.
package sqlgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Canonical text encodings for temporal values. Dates and date-times are
// stored as text so they survive any ANSI-ish engine unchanged.
const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = time.RFC3339
)

// SelectByID returns the single-row lookup for one identifier.
func SelectByID(d *entity.Descriptor, id int64) (string, []any) {
	query := "SELECT " + selectList(d, "") + " FROM " + quote(d.Table()) +
		" WHERE " + quote("id") + " = ?"
	return query, []any{id}
}

// Count returns the unconditional row count of the descriptor's table.
// It is deliberately not filter-aware: the total drives the page widget,
// which reflects the whole table.
func Count(d *entity.Descriptor) string {
	return "SELECT count(" + quote("id") + ") FROM " + quote(d.Table())
}

// Delete returns the single-row delete for one identifier.
func Delete(d *entity.Descriptor, id int64) (string, []any) {
	return "DELETE FROM " + quote(d.Table()) + " WHERE " + quote("id") + " = ?", []any{id}
}

// SelectPage returns one page of rows, optionally filtered and sorted.
// The filter clause passes through verbatim; its arguments are forwarded.
// An ORDER BY clause is appended only when the pagination carries both a
// sort column and a valid direction, and the normalized sort column is one
// the descriptor declares (or "id"). Anything else is dropped rather than
// interpolated.
func SelectPage(d *entity.Descriptor, f entity.Filter, p *entity.Pagination) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT " + selectList(d, "") + " FROM " + quote(d.Table()))

	var args []any
	if !f.Empty() {
		b.WriteString(" " + strings.TrimSpace(f.Clause))
		args = append(args, f.Args...)
	}

	if p.Sorted() && p.SortOrder.Valid() {
		if col, ok := sortColumn(d, p.SortBy); ok {
			b.WriteString(" ORDER BY " + quote(col) + " " + string(p.SortOrder))
		}
	}

	fmt.Fprintf(&b, " LIMIT %d,%d", p.Offset(), p.Size())
	return b.String(), args
}

// Insert returns the insert statement for the entity, restricted to the
// columns the entity is permitted to persist. Column order in the text
// matches argument order. An entity whose permitted subset is empty cannot
// produce a meaningful statement and is rejected.
func Insert(d *entity.Descriptor, e entity.Entity) (string, []any, error) {
	cols := d.ColumnsFor(e)
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("insert into %s: %w", d.Table(), entity.ErrNoColumns)
	}

	names := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		names[i] = quote(c.Name)
		placeholders[i] = "?"
		args[i] = encodeArg(c.Kind, c.Get(e))
	}

	query := "INSERT INTO " + quote(d.Table()) +
		" (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	return query, args, nil
}

// Update returns the update statement for the entity, keyed by its
// identifier and restricted to its permitted columns.
func Update(d *entity.Descriptor, e entity.Entity) (string, []any, error) {
	cols := d.ColumnsFor(e)
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("update %s: %w", d.Table(), entity.ErrNoColumns)
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = quote(c.Name) + " = ?"
		args = append(args, encodeArg(c.Kind, c.Get(e)))
	}
	args = append(args, e.ID())

	query := "UPDATE " + quote(d.Table()) +
		" SET " + strings.Join(sets, ", ") + " WHERE " + quote("id") + " = ?"
	return query, args, nil
}

// Join returns the inner join of the parent and child tables, aliased a
// and b, selecting both column sets in descriptor order.
func Join(parent, child *entity.Descriptor, fkColumn, pkColumn string) string {
	return "SELECT " + selectList(parent, "a") + ", " + selectList(child, "b") +
		" FROM " + quote(parent.Table()) + " a JOIN " + quote(child.Table()) + " b" +
		" ON a." + quote(fkColumn) + " = b." + quote(pkColumn)
}

// SearchFilter builds the OR-chain of LIKE conditions over every persisted
// column of the entity type. The term travels as one bound argument per
// column, wrapped in wildcards; LIKE matching is case-insensitive on the
// supported engines.
func SearchFilter(d *entity.Descriptor, term string) entity.Filter {
	cols := d.ReadColumns()
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		parts[i] = quote(c.Name) + " LIKE ?"
		args[i] = "%" + term + "%"
	}
	return entity.Filter{
		Clause: "WHERE " + strings.Join(parts, " OR "),
		Args:   args,
	}
}

// selectList returns the identifier column followed by the entity type's
// read columns, optionally alias-prefixed.
func selectList(d *entity.Descriptor, alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	cols := d.ReadColumns()
	parts := make([]string, 0, len(cols)+1)
	parts = append(parts, prefix+quote("id"))
	for _, c := range cols {
		parts = append(parts, prefix+quote(c.Name))
	}
	return strings.Join(parts, ", ")
}

// sortColumn normalizes a requested sort column and accepts it only when
// the descriptor declares it (or it is the identifier column).
func sortColumn(d *entity.Descriptor, sortBy string) (string, bool) {
	name := entity.Normalize(sortBy)
	if name == "id" {
		return name, true
	}
	if _, ok := d.Column(name); ok {
		return name, true
	}
	return "", false
}

// encodeArg converts a temporal accessor value to its canonical text form.
// Zero times become NULL; every other kind passes through untouched.
func encodeArg(k entity.Kind, v any) any {
	t, ok := v.(time.Time)
	if !ok {
		return v
	}
	if t.IsZero() {
		return nil
	}
	switch k {
	case entity.KindDate:
		return t.Format(dateFormat)
	case entity.KindDateTime:
		return t.Format(dateTimeFormat)
	default:
		return v
	}
}

func quote(ident string) string {
	return `"` + ident + `"`
}
