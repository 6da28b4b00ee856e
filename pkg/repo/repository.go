// Package repo implements the generic repository: every CRUD, paging,
// search, and join operation for any entity type described by a
// descriptor. One Repository instance serves one entity type over one
// database handle; instances hold no per-operation state and are safe for
// concurrent use.
package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clinickit/clinicdesk/internal/sqlgen"
	"github.com/clinickit/clinicdesk/internal/trace"
	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Repository executes statements for one entity type.
type Repository struct {
	db  *sql.DB
	d   *entity.Descriptor
	log *trace.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger routes SQL traces to the given logger.
func WithLogger(l *trace.Logger) Option {
	return func(r *Repository) { r.log = l }
}

// New returns a repository for the descriptor's entity type.
func New(db *sql.DB, d *entity.Descriptor, opts ...Option) *Repository {
	r := &Repository{db: db, d: d, log: trace.Disabled()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Descriptor returns the descriptor this repository serves.
func (r *Repository) Descriptor() *entity.Descriptor {
	return r.d
}

// GetByID fetches one entity by identifier. A missing row is not an
// error: it returns (nil, nil).
func (r *Repository) GetByID(id int64) (entity.Entity, error) {
	query, args := sqlgen.SelectByID(r.d, id)
	targets := newRowTargets(r.d)

	begin := time.Now()
	err := r.db.QueryRow(query, args...).Scan(targets.dests()...)
	rows := int64(1)
	if err != nil {
		rows = -1
	}
	r.log.Trace(begin, query, rows, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("get "+r.d.Name(), err)
	}
	return targets.entity()
}

// GetPage fetches one page of entities. The pagination's total record
// count is recomputed from the table before the page is fetched, so the
// caller's page widget and the returned page agree on the same total.
// The result is never nil; an empty page is an empty slice.
func (r *Repository) GetPage(f entity.Filter, p *entity.Pagination) ([]entity.Entity, error) {
	countQuery := sqlgen.Count(r.d)
	begin := time.Now()
	err := r.db.QueryRow(countQuery).Scan(&p.TotalRecords)
	r.log.Trace(begin, countQuery, 1, err)
	if err != nil {
		return nil, dbErr("count "+r.d.Table(), err)
	}

	query, args := sqlgen.SelectPage(r.d, f, p)
	begin = time.Now()
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Trace(begin, query, -1, err)
		return nil, dbErr("page "+r.d.Table(), err)
	}
	defer rows.Close()

	targets := newRowTargets(r.d)
	result := []entity.Entity{}
	for rows.Next() {
		if err := rows.Scan(targets.dests()...); err != nil {
			r.log.Trace(begin, query, int64(len(result)), err)
			return nil, dbErr("page "+r.d.Table(), err)
		}
		e, err := targets.entity()
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	r.log.Trace(begin, query, int64(len(result)), rows.Err())
	if err := rows.Err(); err != nil {
		return nil, dbErr("page "+r.d.Table(), err)
	}
	return result, nil
}

// Search fetches one page of entities whose columns contain the term.
// Every persisted column participates in the match.
func (r *Repository) Search(term string, p *entity.Pagination) ([]entity.Entity, error) {
	return r.GetPage(sqlgen.SearchFilter(r.d, term), p)
}

// Join fetches every parent row joined to its child through the foreign
// key column, assuming the child is keyed by its identifier column. Each
// mapped child is attached to its parent through the declared relation.
func (r *Repository) Join(child *entity.Descriptor, fkColumn string) ([]entity.Entity, error) {
	return r.JoinOn(child, fkColumn, "id")
}

// JoinOn is Join with an explicit child join column.
func (r *Repository) JoinOn(child *entity.Descriptor, fkColumn, pkColumn string) ([]entity.Entity, error) {
	rel, ok := r.d.RelationTo(child)
	if !ok {
		return nil, fmt.Errorf("join %s to %s: %w", r.d.Table(), child.Table(), entity.ErrNoRelation)
	}

	query := sqlgen.Join(r.d, child, fkColumn, pkColumn)
	begin := time.Now()
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Trace(begin, query, -1, err)
		return nil, dbErr("join "+r.d.Table(), err)
	}
	defer rows.Close()

	parentTargets := newRowTargets(r.d)
	childTargets := newRowTargets(child)
	dests := append(parentTargets.dests(), childTargets.dests()...)

	result := []entity.Entity{}
	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			r.log.Trace(begin, query, int64(len(result)), err)
			return nil, dbErr("join "+r.d.Table(), err)
		}
		parent, err := parentTargets.entity()
		if err != nil {
			return nil, err
		}
		childEntity, err := childTargets.entity()
		if err != nil {
			return nil, err
		}
		rel.Attach(parent, childEntity)
		result = append(result, parent)
	}
	r.log.Trace(begin, query, int64(len(result)), rows.Err())
	if err := rows.Err(); err != nil {
		return nil, dbErr("join "+r.d.Table(), err)
	}
	return result, nil
}

// Create inserts the entity and assigns its store-generated identifier.
func (r *Repository) Create(e entity.Entity) error {
	query, args, err := sqlgen.Insert(r.d, e)
	if err != nil {
		return err
	}

	begin := time.Now()
	res, err := r.db.Exec(query, args...)
	if err != nil {
		r.log.Trace(begin, query, -1, err)
		return dbErr("create "+r.d.Name(), err)
	}
	r.log.Trace(begin, query, 1, nil)

	id, err := res.LastInsertId()
	if err != nil {
		return dbErr("create "+r.d.Name(), err)
	}
	e.SetID(id)
	return nil
}

// Edit updates the stored row backing the entity. It reports whether a
// row was actually updated; editing an entity that was never persisted is
// a caller error.
func (r *Repository) Edit(e entity.Entity) (bool, error) {
	if !entity.Persisted(e) {
		return false, fmt.Errorf("edit %s: %w", r.d.Name(), entity.ErrNotPersisted)
	}

	query, args, err := sqlgen.Update(r.d, e)
	if err != nil {
		return false, err
	}

	begin := time.Now()
	res, err := r.db.Exec(query, args...)
	if err != nil {
		r.log.Trace(begin, query, -1, err)
		return false, dbErr("edit "+r.d.Name(), err)
	}

	affected, err := res.RowsAffected()
	r.log.Trace(begin, query, affected, err)
	if err != nil {
		return false, dbErr("edit "+r.d.Name(), err)
	}
	return affected == 1, nil
}

// Delete removes the row with the given identifier and reports whether a
// row was actually removed.
func (r *Repository) Delete(id int64) (bool, error) {
	query, args := sqlgen.Delete(r.d, id)

	begin := time.Now()
	res, err := r.db.Exec(query, args...)
	if err != nil {
		r.log.Trace(begin, query, -1, err)
		return false, dbErr("delete "+r.d.Name(), err)
	}

	affected, err := res.RowsAffected()
	r.log.Trace(begin, query, affected, err)
	if err != nil {
		return false, dbErr("delete "+r.d.Name(), err)
	}
	return affected == 1, nil
}
