package repo

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// rowTargets holds the scan destinations for one entity's columns in a
// result row: the identifier first, then one nullable holder per read
// column in descriptor order. database/sql scans positionally, and the
// repository always selects explicit column lists, so position and
// descriptor order agree by construction.
type rowTargets struct {
	d       *entity.Descriptor
	id      sql.NullInt64
	cols    []entity.Column
	holders []any
}

func newRowTargets(d *entity.Descriptor) *rowTargets {
	cols := d.ReadColumns()
	holders := make([]any, len(cols))
	for i, c := range cols {
		holders[i] = holderFor(c.Kind)
	}
	return &rowTargets{d: d, cols: cols, holders: holders}
}

// dests returns the scan destinations in select-list order.
func (t *rowTargets) dests() []any {
	dests := make([]any, 0, len(t.holders)+1)
	dests = append(dests, &t.id)
	return append(dests, t.holders...)
}

// entity materializes the scanned row: a fresh instance carrying the row's
// identifier, with each non-NULL column applied through its setter. NULL
// columns leave the entity's zero value in place.
func (t *rowTargets) entity() (entity.Entity, error) {
	e := t.d.New(t.id.Int64)
	for i, c := range t.cols {
		if err := applyHolder(c, t.holders[i], e); err != nil {
			return nil, fmt.Errorf("map %s.%s: %w: %w", t.d.Table(), c.Name, entity.ErrMapping, err)
		}
	}
	return e, nil
}

// holderFor returns the nullable scan destination for a column kind.
// Temporal kinds scan as text and are parsed during apply.
func holderFor(k entity.Kind) any {
	switch k {
	case entity.KindInt:
		return new(sql.NullInt64)
	case entity.KindDecimal:
		return new(sql.NullFloat64)
	default:
		return new(sql.NullString)
	}
}

// applyHolder pushes one scanned holder through the column's setter,
// coercing to the value shape the accessor contract promises. A NULL
// holder applies nothing.
func applyHolder(c entity.Column, holder any, e entity.Entity) error {
	switch h := holder.(type) {
	case *sql.NullInt64:
		if h.Valid {
			c.Set(e, h.Int64)
		}
	case *sql.NullFloat64:
		if h.Valid {
			c.Set(e, h.Float64)
		}
	case *sql.NullString:
		if !h.Valid {
			return nil
		}
		if c.Kind == entity.KindText {
			c.Set(e, h.String)
			return nil
		}
		t, err := parseTemporal(h.String)
		if err != nil {
			return err
		}
		c.Set(e, t)
	default:
		return fmt.Errorf("unsupported scan holder %T", holder)
	}
	return nil
}

// parseTemporal parses a stored temporal value. The canonical encodings
// are RFC 3339 for date-times and 2006-01-02 for dates; anything else in
// the table (hand-edited or imported data) goes through the permissive
// parser.
func parseTemporal(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := now.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse temporal value %q: %w", s, err)
	}
	return t, nil
}

// dbErr classifies a database/sql failure into one of the standard error
// kinds and wraps the underlying error so the driver detail survives.
func dbErr(op string, err error) error {
	kind := entity.ErrQuery
	if errors.Is(err, driver.ErrBadConn) {
		kind = entity.ErrConnection
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
