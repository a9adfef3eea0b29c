package validate

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-schema/internal/catalog"
	"index-schema/internal/diagnostic"
	"index-schema/internal/mapping"
)

func udtCatalog(t *testing.T) *catalog.Catalog {
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
		ColumnExpr("login", "text", catalog.RolePartitionKey).
		ColumnExpr("first_name", "text", catalog.RoleRegular).
		ColumnExpr("last_name", "text", catalog.RoleClusteringKey).
		ColumnExpr("address", "frozen<address>", catalog.RoleRegular).
		ColumnExpr("lucene", "text", catalog.RoleIndexMarker).
		Build()
	require.NoError(t, err)

	return cat
}

func mapper(path string, st mapping.SemanticType) mapping.MapperSpec {
	return mapping.MustMapper(path, st)
}

func TestValidate_ScenarioA(t *testing.T) {
	v := Validate([]mapping.MapperSpec{mapper("address.city", mapping.String)}, udtCatalog(t))

	require.True(t, v.Accepted(), v.Message())
	assert.NoError(t, v.Err())
	assert.Empty(t, v.Message())

	e, ok := v.Plan.Lookup("address.city")
	require.True(t, ok)
	assert.Equal(t, catalog.Primitive(catalog.KindText), e.Terminal)
	assert.Equal(t, "address", e.Column.Name)
}

func TestValidate_ScenarioB(t *testing.T) {
	v := Validate([]mapping.MapperSpec{mapper("address.non-existent", mapping.String)}, udtCatalog(t))

	require.False(t, v.Accepted())
	assert.Nil(t, v.Plan)
	assert.Equal(t,
		"'schema' is invalid : No column definition 'address.non-existent' for field 'address.non-existent'",
		v.Message())
}

func TestValidate_ScenarioC(t *testing.T) {
	v := Validate([]mapping.MapperSpec{mapper("address.non-existent.latitude", mapping.String)}, udtCatalog(t))

	require.False(t, v.Accepted())
	assert.Equal(t,
		"'schema' is invalid : No column definition 'address.non-existent' for field 'address.non-existent.latitude'",
		v.Message())
	assert.Equal(t, "address.non-existent", v.Diagnostic.Prefix)
	assert.Equal(t, "address.non-existent.latitude", v.Diagnostic.Field)
}

func TestValidate_ScenarioD(t *testing.T) {
	v := Validate([]mapping.MapperSpec{mapper("address.point.longitude", mapping.Blob)}, udtCatalog(t))

	require.False(t, v.Accepted())
	assert.Equal(t,
		"'schema' is invalid : Type 'org.apache.cassandra.db.marshal.FloatType' in column "+
			"'address.point.longitude' is not supported by mapper 'address.point.longitude'",
		v.Message())
	assert.Equal(t, diagnostic.IncompatibleType, v.Diagnostic.Kind)
}

// The cases below are the ones the store's own UDT integration tests pin.
func TestValidate_UDTCases(t *testing.T) {
	cat := udtCatalog(t)

	valid := []mapping.MapperSpec{
		mapper("address.city", mapping.String),
		mapper("address.zip", mapping.Integer),
		mapper("address.bool", mapping.Boolean),
		mapper("address.height", mapping.Float),
		mapper("first_name", mapping.String),
	}

	tests := []struct {
		name  string
		extra mapping.MapperSpec
		want  string
	}{
		{
			name:  "nested float",
			extra: mapper("address.point.latitude", mapping.Float),
		},
		{
			name:  "missing intermediate field",
			extra: mapper("address.non-existent.latitude", mapping.String),
			want:  "'schema' is invalid : No column definition 'address.non-existent' for field 'address.non-existent.latitude'",
		},
		{
			name:  "missing leaf field",
			extra: mapper("address.non-existent", mapping.String),
			want:  "'schema' is invalid : No column definition 'address.non-existent' for field 'address.non-existent'",
		},
		{
			name:  "descends into a float",
			extra: mapper("address.point.longitude.non-existent", mapping.String),
			want: "'schema' is invalid : No column definition 'address.point.longitude.non-existent' " +
				"for field 'address.point.longitude.non-existent'",
		},
		{
			name:  "float as binary",
			extra: mapper("address.point.longitude", mapping.Blob),
			want: "'schema' is invalid : Type 'org.apache.cassandra.db.marshal.FloatType' in column " +
				"'address.point.longitude' is not supported by mapper 'address.point.longitude'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := append(append([]mapping.MapperSpec{}, valid...), tt.extra)
			v := Validate(specs, cat)

			if tt.want == "" {
				require.True(t, v.Accepted(), v.Message())
				assert.Equal(t, len(specs), v.Plan.Len(), spew.Sdump(v.Plan))

				return
			}

			require.False(t, v.Accepted())
			assert.Equal(t, tt.want, v.Message())
		})
	}
}

func TestValidate_FailFastInDeclarationOrder(t *testing.T) {
	cat := udtCatalog(t)

	incompatibleFirst := []mapping.MapperSpec{
		mapper("first_name", mapping.String),
		mapper("address.zip", mapping.Blob),
		mapper("address.missing", mapping.String),
	}

	v := Validate(incompatibleFirst, cat)
	require.False(t, v.Accepted())
	assert.Equal(t, diagnostic.IncompatibleType, v.Diagnostic.Kind)
	assert.Equal(t, "address.zip", v.Diagnostic.Field)

	unresolvedFirst := []mapping.MapperSpec{
		mapper("address.missing", mapping.String),
		mapper("address.zip", mapping.Blob),
	}

	v = Validate(unresolvedFirst, cat)
	require.False(t, v.Accepted())
	assert.Equal(t, diagnostic.UnresolvedPath, v.Diagnostic.Kind)
	assert.Equal(t, "address.missing", v.Diagnostic.Field)
}

func TestValidate_StructuralAndMissingColumns(t *testing.T) {
	cat := udtCatalog(t)

	for _, name := range []string{"login", "lucene", "missing"} {
		v := Validate([]mapping.MapperSpec{mapper(name, mapping.String)}, cat)
		require.False(t, v.Accepted(), name)
		assert.Equal(t, "'schema' is invalid : No column definition '"+name+"' for field '"+name+"'", v.Message())
	}
}

func TestValidate_EndsOnComposite(t *testing.T) {
	cat := udtCatalog(t)

	v := Validate([]mapping.MapperSpec{mapper("address.point", mapping.String)}, cat)
	require.False(t, v.Accepted())
	assert.Equal(t, "'schema' is invalid : No column definition 'address.point' for field 'address.point'", v.Message())
	assert.Equal(t, []string{"address.point.latitude", "address.point.longitude"}, v.Diagnostic.Suggestions)
}

func TestValidate_RenamedMapper(t *testing.T) {
	cat := udtCatalog(t)

	lon, err := mapping.NewRenamedMapper("lon", "address.point.longitude", mapping.Blob)
	require.NoError(t, err)

	v := Validate([]mapping.MapperSpec{lon}, cat)
	require.False(t, v.Accepted())
	assert.Equal(t,
		"'schema' is invalid : Type 'org.apache.cassandra.db.marshal.FloatType' in column "+
			"'address.point.longitude' is not supported by mapper 'lon'",
		v.Message())

	lat, err := mapping.NewRenamedMapper("lat", "address.location.latitude", mapping.Float)
	require.NoError(t, err)

	v = Validate([]mapping.MapperSpec{lat}, cat)
	require.False(t, v.Accepted())
	assert.Equal(t, "'schema' is invalid : No column definition 'address.location' for field 'lat'", v.Message())

	lat, err = mapping.NewRenamedMapper("lat", "address.point.latitude", mapping.Float)
	require.NoError(t, err)

	v = Validate([]mapping.MapperSpec{lat}, cat)
	require.True(t, v.Accepted())

	_, ok := v.Plan.Lookup("address.point.latitude")
	assert.False(t, ok)

	e, ok := v.Plan.Lookup("lat")
	require.True(t, ok)
	assert.Equal(t, "address.point.latitude", e.Mapper.Column.String())
}

func TestValidate_Suggestions(t *testing.T) {
	cat := udtCatalog(t)

	tests := []struct {
		path string
		want []string
	}{
		{"adress.city", []string{"address"}},
		{"firstName", []string{"first_name", "last_name"}},
		{"address.City", []string{"address.city"}},
		{"address.point.latitud", []string{"address.point.latitude", "address.point.longitude"}},
		{"non-existent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := Validate([]mapping.MapperSpec{mapper(tt.path, mapping.String)}, cat)
			require.False(t, v.Accepted())
			assert.Equal(t, tt.want, v.Diagnostic.Suggestions)
			assert.NotContains(t, v.Message(), "did you mean")
		})
	}

	cfg := DefaultConfig()
	cfg.Suggestions = false

	v := New(cfg).Validate([]mapping.MapperSpec{mapper("adress.city", mapping.String)}, cat)
	assert.Empty(t, v.Diagnostic.Suggestions)
}

func TestValidate_Empty(t *testing.T) {
	v := Validate(nil, udtCatalog(t))
	require.True(t, v.Accepted())
	assert.Equal(t, 0, v.Plan.Len())
	assert.Equal(t, "udt_validation_table", v.Plan.Table)
}

func TestValidate_Collections(t *testing.T) {
	def, err := mapping.LoadFile("../../examples/collections/definition.yaml")
	require.NoError(t, err)

	v := Validate(def.Mappers, def.Catalog)
	require.True(t, v.Accepted(), v.Message())

	tests := []struct {
		name     string
		terminal catalog.Kind
		multi    bool
	}{
		{"day", catalog.KindDate, false},
		{"tags", catalog.KindText, true},
		{"scores", catalog.KindDouble, true},
		{"stop_name", catalog.KindText, true},
		{"stops.location.latitude", catalog.KindFloat, true},
	}

	for _, tt := range tests {
		e, ok := v.Plan.Lookup(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, catalog.Primitive(tt.terminal), e.Terminal, tt.name)
		assert.Equal(t, tt.multi, e.MultiValued, tt.name)
	}

	types := v.Plan.Types()
	assert.Len(t, types, 5)
	assert.Equal(t, catalog.Primitive(catalog.KindDouble), types["scores"])

	warnings := v.Warnings()
	require.Len(t, warnings, 4)
	assert.Equal(t, "Mapper 'tags' indexes every element of column 'tags' (set<text>)", warnings[0].Message)
	assert.Equal(t, "stop_name", warnings[2].Field)
}

func TestPlan_NilSafe(t *testing.T) {
	var p *Plan

	_, ok := p.Lookup("x")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Types())
	assert.Nil(t, Verdict{}.Warnings())
}
