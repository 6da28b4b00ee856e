package entity

import "fmt"

// Kind identifies the scalar kind of a persisted column. Each kind has
// exactly one coercion path in the row mapper; there is no widening or
// narrowing between kinds.
type Kind int

const (
	KindInt Kind = iota + 1
	KindText
	KindDecimal
	KindDate
	KindDateTime
)

// Valid reports whether k is one of the supported scalar kinds.
func (k Kind) Valid() bool {
	return k >= KindInt && k <= KindDateTime
}

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Getter reads a column value from an entity. The returned value's dynamic
// type matches the column kind: int64, string, float64, or time.Time.
type Getter func(e Entity) any

// Setter writes a column value onto an entity. The value's dynamic type
// matches the column kind, as for Getter.
type Setter func(e Entity, v any)

// Column binds one table column to a typed accessor pair on the entity.
type Column struct {
	Name string // normalized column name
	Kind Kind
	Get  Getter
	Set  Setter
}

// Relation declares that a parent entity type can host a child entity type,
// and how to attach a mapped child onto a mapped parent.
type Relation struct {
	Child  *Descriptor
	Attach func(parent, child Entity)
}

// Descriptor is the static metadata for one entity type: its table name,
// the ordered persisted columns with their accessors, and the declared
// child relations. Descriptors are built once at startup through Builder
// and are immutable, process-wide, read-only metadata afterwards.
type Descriptor struct {
	name      string // normalized singular type name, e.g. "patient"
	table     string
	factory   func(id int64) Entity
	columns   []Column
	byName    map[string]int
	relations map[string]Relation // keyed by child table name
}

// Name returns the normalized singular type name ("patient" for Patient).
func (d *Descriptor) Name() string {
	return d.name
}

// Table returns the table name the descriptor persists to.
func (d *Descriptor) Table() string {
	return d.table
}

// New constructs a fresh entity instance carrying the given identifier.
// Pass zero for an entity that has not been stored yet.
func (d *Descriptor) New(id int64) Entity {
	return d.factory(id)
}

// Columns returns the full ordered list of declared persisted columns.
// The returned slice is shared metadata; callers must not modify it.
func (d *Descriptor) Columns() []Column {
	return d.columns
}

// ColumnNames returns the declared column names in registration order.
func (d *Descriptor) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks up a declared column by its normalized name.
func (d *Descriptor) Column(name string) (Column, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Column{}, false
	}
	return d.columns[i], true
}

// ColumnsFor returns the columns that participate in persistence for the
// given entity instance: the full declared list, narrowed to the entity's
// own permitted subset when it implements ColumnSubset.
func (d *Descriptor) ColumnsFor(e Entity) []Column {
	cs, ok := e.(ColumnSubset)
	if !ok {
		return d.columns
	}
	permitted := make(map[string]bool, len(d.columns))
	for _, name := range cs.PersistedColumns() {
		permitted[Normalize(name)] = true
	}
	var cols []Column
	for _, c := range d.columns {
		if permitted[c.Name] {
			cols = append(cols, c)
		}
	}
	return cols
}

// ReadColumns returns the columns a read operation selects and maps for
// this entity type. The subset narrowing is a property of the type, so it
// is derived from a fresh instance.
func (d *Descriptor) ReadColumns() []Column {
	return d.ColumnsFor(d.factory(0))
}

// RelationTo returns the declared relation hosting the given child type.
func (d *Descriptor) RelationTo(child *Descriptor) (Relation, bool) {
	rel, ok := d.relations[child.table]
	return rel, ok
}

// Builder registers the metadata for one entity type and validates it into
// an immutable Descriptor.
type Builder struct {
	d    *Descriptor
	errs []error
}

// NewDescriptor starts a descriptor for the named entity type. The table
// name defaults to the pluralized normalized type name; factory constructs
// an instance carrying the given identifier (zero when not yet stored).
func NewDescriptor(typeName string, factory func(id int64) Entity) *Builder {
	return &Builder{
		d: &Descriptor{
			name:      Normalize(typeName),
			table:     TableName(typeName),
			factory:   factory,
			byName:    make(map[string]int),
			relations: make(map[string]Relation),
		},
	}
}

// Table overrides the derived table name.
func (b *Builder) Table(name string) *Builder {
	b.d.table = name
	return b
}

// Column registers a persisted column under the property's normalized
// name. Registration order fixes the column order used in every statement.
func (b *Builder) Column(property string, kind Kind, get Getter, set Setter) *Builder {
	name := Normalize(property)
	if !kind.Valid() {
		b.errs = append(b.errs, fmt.Errorf("column %q: %w", name, ErrUnknownKind))
		return b
	}
	if get == nil || set == nil {
		b.errs = append(b.errs, fmt.Errorf("column %q: %w", name, ErrNilAccessor))
		return b
	}
	if _, exists := b.d.byName[name]; exists {
		b.errs = append(b.errs, fmt.Errorf("column %q: %w", name, ErrDuplicateColumn))
		return b
	}
	b.d.byName[name] = len(b.d.columns)
	b.d.columns = append(b.d.columns, Column{Name: name, Kind: kind, Get: get, Set: set})
	return b
}

// Relation declares that this entity type can host the given child type.
// The attach function receives the mapped parent and child after a join.
func (b *Builder) Relation(child *Descriptor, attach func(parent, child Entity)) *Builder {
	b.d.relations[child.table] = Relation{Child: child, Attach: attach}
	return b
}

// Build validates the registered metadata and returns the descriptor.
// A descriptor with no persisted columns is a configuration error: it
// would only ever produce degenerate statements.
func (b *Builder) Build() (*Descriptor, error) {
	if b.d.factory == nil {
		return nil, fmt.Errorf("descriptor %q: %w", b.d.name, ErrNoFactory)
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("descriptor %q: %w", b.d.name, b.errs[0])
	}
	if len(b.d.columns) == 0 {
		return nil, fmt.Errorf("descriptor %q: %w", b.d.name, ErrNoColumns)
	}
	return b.d, nil
}

// MustBuild is Build for package-level descriptor variables; it panics on
// a configuration error.
func (b *Builder) MustBuild() *Descriptor {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
