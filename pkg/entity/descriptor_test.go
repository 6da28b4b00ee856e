package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widget is a plain test entity persisting two columns.
type widget struct {
	Ref
	Label string
	Count int64
}

func widgetDescriptor(t *testing.T) *Descriptor {
	t.Helper()
	d, err := NewDescriptor("Widget", func(id int64) Entity {
		return &widget{Ref: NewRef(id)}
	}).
		Column("label", KindText,
			func(e Entity) any { return e.(*widget).Label },
			func(e Entity, v any) { e.(*widget).Label = v.(string) }).
		Column("count", KindInt,
			func(e Entity) any { return e.(*widget).Count },
			func(e Entity, v any) { e.(*widget).Count = v.(int64) }).
		Build()
	require.NoError(t, err)
	return d
}

func TestDescriptorBuild(t *testing.T) {
	d := widgetDescriptor(t)

	assert.Equal(t, "widget", d.Name())
	assert.Equal(t, "widgets", d.Table())
	assert.Equal(t, []string{"label", "count"}, d.ColumnNames())

	col, ok := d.Column("label")
	require.True(t, ok)
	assert.Equal(t, KindText, col.Kind)

	_, ok = d.Column("missing")
	assert.False(t, ok)
}

func TestDescriptorTableOverride(t *testing.T) {
	d, err := NewDescriptor("Widget", func(id int64) Entity {
		return &widget{Ref: NewRef(id)}
	}).
		Table("legacy_widgets").
		Column("label", KindText,
			func(e Entity) any { return e.(*widget).Label },
			func(e Entity, v any) { e.(*widget).Label = v.(string) }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "legacy_widgets", d.Table())
}

func TestDescriptorAccessors(t *testing.T) {
	d := widgetDescriptor(t)

	e := d.New(7)
	assert.Equal(t, int64(7), e.ID())

	col, _ := d.Column("label")
	col.Set(e, "syringe")
	assert.Equal(t, "syringe", col.Get(e))
}

func TestDescriptorBuildErrors(t *testing.T) {
	factory := func(id int64) Entity { return &widget{Ref: NewRef(id)} }
	get := func(e Entity) any { return e.(*widget).Label }
	set := func(e Entity, v any) { e.(*widget).Label = v.(string) }

	tests := []struct {
		name    string
		builder *Builder
		wantErr error
	}{
		{
			name:    "zero columns",
			builder: NewDescriptor("Widget", factory),
			wantErr: ErrNoColumns,
		},
		{
			name: "duplicate column",
			builder: NewDescriptor("Widget", factory).
				Column("label", KindText, get, set).
				Column("label", KindText, get, set),
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "duplicate after normalization",
			builder: NewDescriptor("Widget", factory).
				Column("fullName", KindText, get, set).
				Column("full_name", KindText, get, set),
			wantErr: ErrDuplicateColumn,
		},
		{
			name: "unknown kind",
			builder: NewDescriptor("Widget", factory).
				Column("label", Kind(99), get, set),
			wantErr: ErrUnknownKind,
		},
		{
			name: "nil accessor",
			builder: NewDescriptor("Widget", factory).
				Column("label", KindText, nil, set),
			wantErr: ErrNilAccessor,
		},
		{
			name:    "nil factory",
			builder: NewDescriptor("Widget", nil),
			wantErr: ErrNoFactory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDescriptor("Widget", func(id int64) Entity {
			return &widget{Ref: NewRef(id)}
		}).MustBuild()
	})
}

// narrowWidget persists only the label column of the widgets table.
type narrowWidget struct {
	widget
}

func (*narrowWidget) PersistedColumns() []string {
	return []string{"label"}
}

func TestColumnsForSubset(t *testing.T) {
	d := widgetDescriptor(t)

	full := d.ColumnsFor(&widget{})
	require.Len(t, full, 2)

	narrow := d.ColumnsFor(&narrowWidget{})
	require.Len(t, narrow, 1)
	assert.Equal(t, "label", narrow[0].Name)
}

func TestRelations(t *testing.T) {
	child := widgetDescriptor(t)

	parent, err := NewDescriptor("Crate", func(id int64) Entity {
		return &widget{Ref: NewRef(id)}
	}).
		Column("label", KindText,
			func(e Entity) any { return e.(*widget).Label },
			func(e Entity, v any) { e.(*widget).Label = v.(string) }).
		Relation(child, func(parent, child Entity) {}).
		Build()
	require.NoError(t, err)

	_, ok := parent.RelationTo(child)
	assert.True(t, ok)
	_, ok = child.RelationTo(parent)
	assert.False(t, ok)
}

func TestRefIdentifierNeverReassigned(t *testing.T) {
	var r Ref
	r.SetID(3)
	r.SetID(9)
	assert.Equal(t, int64(3), r.ID())
}

func TestPersisted(t *testing.T) {
	w := &widget{}
	assert.False(t, Persisted(w))
	w.SetID(1)
	assert.True(t, Persisted(w))
}

func TestErrNoRelationIsMappingError(t *testing.T) {
	assert.True(t, errors.Is(ErrNoRelation, ErrMapping))
	assert.True(t, errors.Is(ErrNotPersisted, ErrInvalidState))
}
