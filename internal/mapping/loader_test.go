package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"index-schema/internal/catalog"
)

func examplePath(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "examples"}, parts...)...)
}

func TestParse(t *testing.T) {
	yaml := `
table: users
types:
  geo_point:
    latitude: float
    longitude: float
  address:
    city: text
    point: frozen<geo_point>
columns:
  login: {type: text, role: partition_key}
  first_name: text
  address: frozen<address>
  lucene: {type: text, role: index}
schema:
  fields:
    first_name: {type: string}
    address.point.latitude: float
    town: {type: text, column: address.city}
`

	def, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "users", def.Table())
	assert.Empty(t, def.Source)

	cat := def.Catalog
	assert.Equal(t, []string{"geo_point", "address"}, cat.TypeNames())
	assert.Equal(t, []string{"latitude", "longitude"}, cat.FieldNames("geo_point"))

	cols := cat.Columns()
	require.Len(t, cols, 4)
	assert.Equal(t, "login", cols[0].Name)
	assert.Equal(t, catalog.RolePartitionKey, cols[0].Role)
	assert.Equal(t, catalog.RoleRegular, cols[1].Role)
	assert.Equal(t, catalog.Frozen(catalog.Composite("address")), cols[2].Type)
	assert.Equal(t, catalog.RoleIndexMarker, cols[3].Role)

	require.Len(t, def.Mappers, 3)
	assert.Equal(t, MustMapper("first_name", String), def.Mappers[0])
	assert.Equal(t, MustMapper("address.point.latitude", Float), def.Mappers[1])
	assert.Equal(t, "town", def.Mappers[2].Name)
	assert.Equal(t, "address.city", def.Mappers[2].Column.String())
	assert.Equal(t, Text, def.Mappers[2].Type)
}

func TestParse_KeepsDeclarationOrder(t *testing.T) {
	yaml := `
table: t
columns:
  z: text
  a: text
  m: text
schema:
  fields:
    z: string
    a: string
    m: string
`

	def, err := Parse([]byte(yaml))
	require.NoError(t, err)

	var names []string
	for _, m := range def.Mappers {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{"z", "a", "m"}, names)
	assert.Equal(t, []string{"z", "a", "m"}, def.Catalog.SearchableColumns())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		msg     string
	}{
		{
			name:    "missing table",
			yaml:    "columns: {a: text}",
			wantErr: ErrInvalidDefinition,
			msg:     "missing table",
		},
		{
			name:    "no columns",
			yaml:    "table: t",
			wantErr: ErrInvalidDefinition,
			msg:     "no columns",
		},
		{
			name:    "dangling type",
			yaml:    "table: t\ncolumns: {a: frozen<address>}",
			wantErr: catalog.ErrUnknownType,
			msg:     `"address"`,
		},
		{
			name:    "bad role",
			yaml:    "table: t\ncolumns: {a: {type: text, role: static}}",
			wantErr: ErrInvalidDefinition,
			msg:     "static",
		},
		{
			name:    "unknown mapper type",
			yaml:    "table: t\ncolumns: {a: text}\nschema: {fields: {a: geo_shape}}",
			wantErr: ErrUnknownSemanticType,
			msg:     "geo_shape",
		},
		{
			name:    "duplicate mapper",
			yaml:    "table: t\ncolumns: {a: text}\nschema:\n  fields:\n    a: string\n    a: text",
			wantErr: ErrDuplicateMapper,
			msg:     `"a"`,
		},
		{
			name:    "bad mapper path",
			yaml:    "table: t\ncolumns: {a: text}\nschema: {fields: {x: {type: string, column: a..b}}}",
			wantErr: ErrInvalidSegment,
			msg:     "a..b",
		},
		{
			name: "columns not a mapping",
			yaml: "table: t\ncolumns: [a, b]",
			msg:  "columns: expected mapping",
		},
		{
			name: "column as sequence",
			yaml: "table: t\ncolumns: {a: [text]}",
			msg:  "column a: expected string or mapping",
		},
		{
			name: "invalid yaml",
			yaml: "table: [",
			msg:  "failed to parse definition YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, def)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := examplePath("udt-validation", "valid.yaml")

	def, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, def.Source)
	assert.Equal(t, "udt_validation_table", def.Table())
	require.Len(t, def.Mappers, 6)
	assert.Equal(t, "address.city", def.Mappers[0].Name)
	assert.Equal(t, "address.point.latitude", def.Mappers[4].Name)
	assert.Equal(t, "first_name", def.Mappers[5].Name)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read definition file")
}

func TestLoadFile_Examples(t *testing.T) {
	for _, path := range []string{
		examplePath("udt-validation", "valid.yaml"),
		examplePath("udt-validation", "incompatible.yaml"),
		examplePath("udt-validation", "unresolved.yaml"),
		examplePath("collections", "definition.yaml"),
	} {
		t.Run(filepath.Base(filepath.Dir(path))+"/"+filepath.Base(path), func(t *testing.T) {
			_, err := LoadFile(path)
			require.NoError(t, err)
		})
	}
}
