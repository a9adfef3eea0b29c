package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"first_name", []string{"first_name"}},
		{"address.city", []string{"address", "city"}},
		{"address.point.latitude", []string{"address", "point", "latitude"}},
		{"address.non-existent", []string{"address", "non-existent"}},
		{"Address.City", []string{"Address", "City"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fp, err := ParsePath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fp.Segments)
			assert.Equal(t, tt.path, fp.String())
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	_, err := ParsePath("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	for _, path := range []string{".", "address.", ".city", "address..city", "address.ci ty"} {
		t.Run(path, func(t *testing.T) {
			_, err := ParsePath(path)
			assert.ErrorIs(t, err, ErrInvalidSegment)
		})
	}
}

func TestFieldPath_Accessors(t *testing.T) {
	fp := MustParsePath("address.point.latitude")

	assert.Equal(t, 3, fp.Len())
	assert.False(t, fp.IsEmpty())
	assert.Equal(t, "address", fp.Column())
	assert.Equal(t, "latitude", fp.Leaf())
	assert.Equal(t, "address.point", fp.Prefix(2).String())
	assert.Equal(t, "address.point.latitude", fp.Prefix(10).String())
	assert.True(t, fp.Prefix(0).IsEmpty())
	assert.True(t, fp.Equal(NewFieldPath("address", "point", "latitude")))
	assert.False(t, fp.Equal(fp.Prefix(2)))

	var empty FieldPath
	assert.Empty(t, empty.Column())
	assert.Empty(t, empty.Leaf())
}

func TestFieldPath_PrefixDoesNotAlias(t *testing.T) {
	fp := MustParsePath("a.b.c")
	prefix := fp.Prefix(2)
	prefix.Segments[0] = "z"

	assert.Equal(t, "a.b.c", fp.String())
}

func TestFieldPath_Text(t *testing.T) {
	var fp FieldPath
	require.NoError(t, fp.UnmarshalText([]byte("address.city")))
	assert.Equal(t, []string{"address", "city"}, fp.Segments)

	b, err := fp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "address.city", string(b))

	assert.Error(t, fp.UnmarshalText([]byte("a..b")))
}
