package mapping

import (
	"errors"
	"fmt"
)

var ErrDuplicateMapper = errors.New("duplicate mapper")

// MapperSpec binds an index field to a column path and a semantic type.
//
// Name is the index field name. Column is the path the values are read from;
// when a mapper does not rename its source, Column is Name parsed as a path.
type MapperSpec struct {
	Name   string
	Column FieldPath
	Type   SemanticType
}

// NewMapper returns a mapper whose column path is its own name.
func NewMapper(name string, t SemanticType) (MapperSpec, error) {
	return NewRenamedMapper(name, "", t)
}

// NewRenamedMapper returns a mapper reading from column; an empty column
// means the mapper reads from the path named by name.
func NewRenamedMapper(name, column string, t SemanticType) (MapperSpec, error) {
	if name == "" {
		return MapperSpec{}, fmt.Errorf("mapper name: %w", ErrEmptyPath)
	}

	if !t.IsValid() {
		return MapperSpec{}, fmt.Errorf("mapper %q: %w %d", name, ErrUnknownSemanticType, int(t))
	}

	if column == "" {
		column = name
	}

	path, err := ParsePath(column)
	if err != nil {
		return MapperSpec{}, fmt.Errorf("mapper %q: %w", name, err)
	}

	return MapperSpec{Name: name, Column: path, Type: t}, nil
}

// MustMapper is like NewMapper but panics on error. Intended for tests and fixtures.
func MustMapper(name string, t SemanticType) MapperSpec {
	m, err := NewMapper(name, t)
	if err != nil {
		panic(err)
	}

	return m
}

// Renamed reports whether the mapper reads from a column path other than its name.
func (m MapperSpec) Renamed() bool {
	return m.Column.String() != m.Name
}

// String returns "name: type" or "name(column): type" for renamed mappers.
func (m MapperSpec) String() string {
	if m.Renamed() {
		return fmt.Sprintf("%s(%s): %s", m.Name, m.Column, m.Type)
	}

	return fmt.Sprintf("%s: %s", m.Name, m.Type)
}

// CheckUnique returns an error wrapping ErrDuplicateMapper for the first
// repeated mapper name.
func CheckUnique(specs []MapperSpec) error {
	seen := make(map[string]struct{}, len(specs))

	for _, s := range specs {
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w %q", ErrDuplicateMapper, s.Name)
		}

		seen[s.Name] = struct{}{}
	}

	return nil
}
