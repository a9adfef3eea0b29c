package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"index-schema/internal/catalog"
)

var ErrInvalidDefinition = errors.New("invalid index definition")

// Definition is a parsed index definition: the table schema snapshot and
// the mappers declared against it, in declaration order.
type Definition struct {
	// Source names where the definition came from (a file path, or empty).
	Source  string
	Catalog *catalog.Catalog
	Mappers []MapperSpec
}

// Table returns the table name of the definition.
func (d *Definition) Table() string {
	return d.Catalog.Table()
}

// LoadOption configures LoadFile.
type LoadOption func(*loadOptions)

type loadOptions struct {
	checkDocument bool
}

// WithDocumentCheck makes LoadFile check the document against its JSON
// schema before building it, rejecting unknown keys.
func WithDocumentCheck(enabled bool) LoadOption {
	return func(o *loadOptions) {
		o.checkDocument = enabled
	}
}

// LoadFile loads and parses an index definition file from the given path.
func LoadFile(path string, opts ...LoadOption) (*Definition, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	if o.checkDocument {
		if err := CheckDocument(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	def.Source = path

	return def, nil
}

// ParseDocument parses YAML data into a raw Document.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	return &doc, nil
}

// Parse parses YAML data into a Definition.
func Parse(data []byte) (*Definition, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Build turns the raw document into a catalog and an ordered mapper list.
func (d *Document) Build() (*Definition, error) {
	if d.Table == "" {
		return nil, fmt.Errorf("%w: missing table", ErrInvalidDefinition)
	}

	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("%w: table %q has no columns", ErrInvalidDefinition, d.Table)
	}

	cat, err := d.buildCatalog()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	mappers, err := d.buildMappers()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	return &Definition{Catalog: cat, Mappers: mappers}, nil
}

func (d *Document) buildCatalog() (*catalog.Catalog, error) {
	b := catalog.NewBuilder(d.Table)

	for _, td := range d.Types {
		b.Type(td.Name)

		for _, f := range td.Fields {
			b.FieldExpr(td.Name, f.Name, f.Type)
		}
	}

	for _, cd := range d.Columns {
		role, err := catalog.ParseRole(cd.Role)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cd.Name, err)
		}

		b.ColumnExpr(cd.Name, cd.Type, role)
	}

	return b.Build()
}

func (d *Document) buildMappers() ([]MapperSpec, error) {
	mappers := make([]MapperSpec, 0, len(d.Schema.Fields))

	for _, md := range d.Schema.Fields {
		st, err := ParseSemanticType(md.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", md.Name, err)
		}

		m, err := NewRenamedMapper(md.Name, md.Column, st)
		if err != nil {
			return nil, err
		}

		mappers = append(mappers, m)
	}

	if err := CheckUnique(mappers); err != nil {
		return nil, err
	}

	return mappers, nil
}
