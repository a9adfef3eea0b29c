package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-schema/internal/catalog"
	"index-schema/internal/mapping"
)

// buildTestCatalog mirrors the UDT validation table: an address composite
// holding a frozen geo_point.
func buildTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.NewBuilder("udt_validation_table").
		FieldExpr("geo_point", "latitude", "float").
		FieldExpr("geo_point", "longitude", "float").
		FieldExpr("address", "street", "text").
		FieldExpr("address", "city", "text").
		FieldExpr("address", "zip", "int").
		FieldExpr("address", "bool", "boolean").
		FieldExpr("address", "height", "float").
		FieldExpr("address", "point", "frozen<geo_point>").
		FieldExpr("address", "history", "list<frozen<geo_point>>").
		FieldExpr("address", "labels", "map<text, frozen<geo_point>>").
		ColumnExpr("login", "text", catalog.RolePartitionKey).
		ColumnExpr("first_name", "text", catalog.RoleRegular).
		ColumnExpr("last_name", "text", catalog.RoleClusteringKey).
		ColumnExpr("address", "frozen<address>", catalog.RoleRegular).
		ColumnExpr("tags", "set<text>", catalog.RoleRegular).
		ColumnExpr("lucene", "text", catalog.RoleIndexMarker).
		Build()
	require.NoError(t, err)

	return cat
}

func TestResolve_Resolved(t *testing.T) {
	r := New(buildTestCatalog(t))

	tests := []struct {
		path     string
		terminal catalog.Kind
		declared string
		multi    bool
	}{
		{"first_name", catalog.KindText, "text", false},
		{"last_name", catalog.KindText, "text", false},
		{"tags", catalog.KindText, "set<text>", true},
		{"address.city", catalog.KindText, "text", false},
		{"address.zip", catalog.KindInt, "int", false},
		{"address.point.latitude", catalog.KindFloat, "float", false},
		{"address.history.longitude", catalog.KindFloat, "float", true},
		{"address.labels.latitude", catalog.KindFloat, "float", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := r.Resolve(mapping.MustParsePath(tt.path))
			require.True(t, res.Resolved(), "reason: %s", res.Reason)
			assert.Equal(t, catalog.Primitive(tt.terminal), res.Terminal)
			assert.Equal(t, tt.declared, res.Declared.String())
			assert.Equal(t, tt.multi, res.MultiValued)
			assert.Equal(t, tt.path, res.Path.String())
			assert.True(t, res.Prefix.IsEmpty())
			assert.Equal(t, ReasonNone, res.Reason)
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	r := New(buildTestCatalog(t))

	tests := []struct {
		path   string
		prefix string
		reason Reason
		parent string
	}{
		{"missing", "missing", ReasonNoColumn, ""},
		{"missing.city", "missing", ReasonNoColumn, ""},
		{"login", "login", ReasonNoColumn, ""},
		{"lucene", "lucene", ReasonNoColumn, ""},
		{"Address.city", "Address", ReasonNoColumn, ""},
		{"address.non-existent", "address.non-existent", ReasonNoField, "address"},
		{"address.non-existent.latitude", "address.non-existent", ReasonNoField, "address"},
		{"address.point.altitude", "address.point.altitude", ReasonNoField, "geo_point"},
		{"address.City", "address.City", ReasonNoField, "address"},
		{"address.point.longitude.non-existent", "address.point.longitude.non-existent", ReasonNotComposite, "float"},
		{"first_name.x.y", "first_name.x", ReasonNotComposite, "text"},
		{"address", "address", ReasonNotPrimitive, "address"},
		{"address.point", "address.point", ReasonNotPrimitive, "geo_point"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := r.Resolve(mapping.MustParsePath(tt.path))
			require.False(t, res.Resolved())
			assert.Equal(t, tt.prefix, res.Prefix.String())
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, tt.parent, res.Parent)
			assert.Equal(t, catalog.StorageType{}, res.Terminal)
		})
	}
}

func TestResolve_Candidates(t *testing.T) {
	r := New(buildTestCatalog(t))

	res := r.Resolve(mapping.MustParsePath("adress.city"))
	assert.Equal(t, []string{"first_name", "last_name", "address", "tags"}, res.Candidates)

	res = r.Resolve(mapping.MustParsePath("address.point.lat"))
	assert.Equal(t, []string{"latitude", "longitude"}, res.Candidates)

	res = r.Resolve(mapping.MustParsePath("address.zip.code"))
	assert.Empty(t, res.Candidates)
}

func TestResolve_EmptyPath(t *testing.T) {
	res := New(buildTestCatalog(t)).Resolve(mapping.FieldPath{})
	assert.False(t, res.Resolved())
	assert.Equal(t, ReasonNoColumn, res.Reason)
	assert.True(t, res.Prefix.IsEmpty())
}

func TestResolve_CyclicTypes(t *testing.T) {
	cat, err := catalog.NewBuilder("t").
		FieldExpr("node", "value", "int").
		FieldExpr("node", "next", "frozen<node>").
		ColumnExpr("head", "frozen<node>", catalog.RoleRegular).
		Build()
	require.NoError(t, err)

	r := New(cat)

	res := r.Resolve(mapping.MustParsePath("head.next.next.next.value"))
	require.True(t, res.Resolved())
	assert.Equal(t, catalog.Primitive(catalog.KindInt), res.Terminal)

	res = r.Resolve(mapping.MustParsePath("head.next.next"))
	assert.Equal(t, ReasonNotPrimitive, res.Reason)
	assert.Equal(t, "head.next.next", res.Prefix.String())
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "no column definition", ReasonNoColumn.String())
	assert.Equal(t, "resolved", ReasonNone.String())
	assert.Equal(t, "unknown", Reason(42).String())
}
