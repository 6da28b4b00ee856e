package sqlgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

type medicine struct {
	entity.Ref
	Label    string
	Price    float64
	AddedOn  time.Time
	StockQty int64
}

func medicineDescriptor(t *testing.T) *entity.Descriptor {
	t.Helper()
	d, err := entity.NewDescriptor("Medicine", func(id int64) entity.Entity {
		return &medicine{Ref: entity.NewRef(id)}
	}).
		Column("label", entity.KindText,
			func(e entity.Entity) any { return e.(*medicine).Label },
			func(e entity.Entity, v any) { e.(*medicine).Label = v.(string) }).
		Column("price", entity.KindDecimal,
			func(e entity.Entity) any { return e.(*medicine).Price },
			func(e entity.Entity, v any) { e.(*medicine).Price = v.(float64) }).
		Column("addedOn", entity.KindDate,
			func(e entity.Entity) any { return e.(*medicine).AddedOn },
			func(e entity.Entity, v any) { e.(*medicine).AddedOn = v.(time.Time) }).
		Column("stockQty", entity.KindInt,
			func(e entity.Entity) any { return e.(*medicine).StockQty },
			func(e entity.Entity, v any) { e.(*medicine).StockQty = v.(int64) }).
		Build()
	require.NoError(t, err)
	return d
}

func TestSelectByID(t *testing.T) {
	d := medicineDescriptor(t)

	query, args := SelectByID(d, 42)
	assert.Equal(t,
		`SELECT "id", "label", "price", "added_on", "stock_qty" FROM "medicines" WHERE "id" = ?`,
		query)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestCount(t *testing.T) {
	d := medicineDescriptor(t)
	assert.Equal(t, `SELECT count("id") FROM "medicines"`, Count(d))
}

func TestDelete(t *testing.T) {
	d := medicineDescriptor(t)

	query, args := Delete(d, 7)
	assert.Equal(t, `DELETE FROM "medicines" WHERE "id" = ?`, query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestSelectPage(t *testing.T) {
	d := medicineDescriptor(t)
	selectAll := `SELECT "id", "label", "price", "added_on", "stock_qty" FROM "medicines"`

	tests := []struct {
		name     string
		filter   entity.Filter
		p        entity.Pagination
		want     string
		wantArgs []any
	}{
		{
			name: "first page defaults",
			p:    entity.Pagination{},
			want: selectAll + " LIMIT 0,10",
		},
		{
			name: "third page of five",
			p:    entity.Pagination{PageNumber: 3, PageSize: 5},
			want: selectAll + " LIMIT 10,5",
		},
		{
			name:     "with filter",
			filter:   entity.Where("stock_qty > ?", 0),
			p:        entity.Pagination{},
			want:     selectAll + " WHERE stock_qty > ? LIMIT 0,10",
			wantArgs: []any{0},
		},
		{
			name: "sorted by declared column",
			p: entity.Pagination{
				SortBy:    "addedOn",
				SortOrder: entity.SortDescending,
			},
			want: selectAll + ` ORDER BY "added_on" DESC LIMIT 0,10`,
		},
		{
			name: "sorted by identifier",
			p: entity.Pagination{
				SortBy:    "id",
				SortOrder: entity.SortAscending,
			},
			want: selectAll + ` ORDER BY "id" ASC LIMIT 0,10`,
		},
		{
			name: "undeclared sort column is dropped",
			p: entity.Pagination{
				SortBy:    "nonexistent",
				SortOrder: entity.SortAscending,
			},
			want: selectAll + " LIMIT 0,10",
		},
		{
			name: "invalid sort direction is dropped",
			p: entity.Pagination{
				SortBy:    "label",
				SortOrder: entity.SortOrder("ASC; DROP TABLE medicines"),
			},
			want: selectAll + " LIMIT 0,10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := SelectPage(d, tt.filter, &tt.p)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInsert(t *testing.T) {
	d := medicineDescriptor(t)
	m := &medicine{
		Label:    "aspirin",
		Price:    4.25,
		AddedOn:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		StockQty: 30,
	}

	query, args, err := Insert(d, m)
	require.NoError(t, err)
	assert.Equal(t,
		`INSERT INTO "medicines" ("label", "price", "added_on", "stock_qty") VALUES (?, ?, ?, ?)`,
		query)
	assert.Equal(t, []any{"aspirin", 4.25, "2024-03-15", int64(30)}, args)
}

func TestInsertZeroDateIsNull(t *testing.T) {
	d := medicineDescriptor(t)

	_, args, err := Insert(d, &medicine{Label: "aspirin"})
	require.NoError(t, err)
	assert.Nil(t, args[2])
}

func TestUpdate(t *testing.T) {
	d := medicineDescriptor(t)
	m := &medicine{
		Ref:      entity.NewRef(9),
		Label:    "ibuprofen",
		Price:    6.5,
		AddedOn:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		StockQty: 12,
	}

	query, args, err := Update(d, m)
	require.NoError(t, err)
	assert.Equal(t,
		`UPDATE "medicines" SET "label" = ?, "price" = ?, "added_on" = ?, "stock_qty" = ? WHERE "id" = ?`,
		query)
	assert.Equal(t, []any{"ibuprofen", 6.5, "2024-03-15", int64(12), int64(9)}, args)
}

// shelfEntry writes only the stock column of the medicines table.
type shelfEntry struct {
	medicine
}

func (*shelfEntry) PersistedColumns() []string {
	return []string{"stockQty"}
}

func TestUpdateColumnSubset(t *testing.T) {
	d := medicineDescriptor(t)
	s := &shelfEntry{medicine{Ref: entity.NewRef(3), StockQty: 8}}

	query, args, err := Update(d, s)
	require.NoError(t, err)
	assert.Equal(t, `UPDATE "medicines" SET "stock_qty" = ? WHERE "id" = ?`, query)
	assert.Equal(t, []any{int64(8), int64(3)}, args)
}

// voidEntry permits no columns at all.
type voidEntry struct {
	medicine
}

func (*voidEntry) PersistedColumns() []string { return nil }

func TestInsertEmptySubset(t *testing.T) {
	d := medicineDescriptor(t)

	_, _, err := Insert(d, &voidEntry{})
	assert.ErrorIs(t, err, entity.ErrNoColumns)

	_, _, err = Update(d, &voidEntry{})
	assert.ErrorIs(t, err, entity.ErrNoColumns)
}

func TestJoin(t *testing.T) {
	parent := medicineDescriptor(t)

	child, err := entity.NewDescriptor("Supplier", func(id int64) entity.Entity {
		return &medicine{Ref: entity.NewRef(id)}
	}).
		Column("label", entity.KindText,
			func(e entity.Entity) any { return e.(*medicine).Label },
			func(e entity.Entity, v any) { e.(*medicine).Label = v.(string) }).
		Build()
	require.NoError(t, err)

	query := Join(parent, child, "supplier_id", "id")
	assert.Equal(t,
		`SELECT a."id", a."label", a."price", a."added_on", a."stock_qty", b."id", b."label"`+
			` FROM "medicines" a JOIN "suppliers" b ON a."supplier_id" = b."id"`,
		query)
}

func TestSearchFilter(t *testing.T) {
	d := medicineDescriptor(t)

	f := SearchFilter(d, "asp")
	assert.Equal(t,
		`WHERE "label" LIKE ? OR "price" LIKE ? OR "added_on" LIKE ? OR "stock_qty" LIKE ?`,
		f.Clause)
	assert.Equal(t, []any{"%asp%", "%asp%", "%asp%", "%asp%"}, f.Args)
}

func TestDateTimeEncoding(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15T09:30:00Z", encodeArg(entity.KindDateTime, at))
	assert.Equal(t, "2024-03-15", encodeArg(entity.KindDate, at))
	assert.Nil(t, encodeArg(entity.KindDate, time.Time{}))
	assert.Equal(t, "plain", encodeArg(entity.KindText, "plain"))
}
