package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the raw form of an index definition file:
//
//	table: users
//	types:
//	  address:
//	    city: text
//	    point: frozen<geo_point>
//	columns:
//	  login: {type: text, role: partition_key}
//	  address: frozen<address>
//	schema:
//	  fields:
//	    address.city: {type: string}
//	    town: {type: string, column: address.city}
//
// Mappings are decoded in document order; the order of schema.fields is the
// order mappers are validated in.
type Document struct {
	Table   string         `yaml:"table"`
	Types   TypesSection   `yaml:"types,omitempty"`
	Columns ColumnsSection `yaml:"columns"`
	Schema  SchemaSection  `yaml:"schema"`
}

// SchemaSection holds the index schema: its mapped fields.
type SchemaSection struct {
	Fields FieldsSection `yaml:"fields"`
}

// TypeDoc is one composite type declaration.
type TypeDoc struct {
	Name   string
	Fields []FieldDoc
}

// FieldDoc is one composite type field: its name and type expression.
type FieldDoc struct {
	Name string
	Type string
}

// ColumnDoc is one column declaration.
type ColumnDoc struct {
	Name string `yaml:"-"`
	Type string `yaml:"type"`
	Role string `yaml:"role,omitempty"`
}

// MapperDoc is one mapped index field.
type MapperDoc struct {
	Name   string `yaml:"-"`
	Type   string `yaml:"type"`
	Column string `yaml:"column,omitempty"`
}

// TypesSection is the ordered list of composite types.
type TypesSection []TypeDoc

// ColumnsSection is the ordered list of columns.
type ColumnsSection []ColumnDoc

// FieldsSection is the ordered list of mappers.
type FieldsSection []MapperDoc

// --- ordered mapping helpers ---

func eachPair(node *yaml.Node, section string, fn func(key string, value *yaml.Node) error) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: expected mapping at line %d, got %v", section, node.Line, kindName(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("%s: expected scalar key at line %d", section, key.Line)
		}

		if err := fn(key.Value, value); err != nil {
			return err
		}
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}

// --- TypesSection YAML methods ---

// UnmarshalYAML decodes `name: {field: type, ...}` pairs keeping document order.
func (s *TypesSection) UnmarshalYAML(node *yaml.Node) error {
	var types TypesSection

	err := eachPair(node, "types", func(name string, value *yaml.Node) error {
		td := TypeDoc{Name: name}

		err := eachPair(value, "type "+name, func(field string, ft *yaml.Node) error {
			var expr string
			if err := ft.Decode(&expr); err != nil {
				return fmt.Errorf("type %s field %s: %w", name, field, err)
			}

			td.Fields = append(td.Fields, FieldDoc{Name: field, Type: expr})

			return nil
		})
		if err != nil {
			return err
		}

		types = append(types, td)

		return nil
	})
	if err != nil {
		return err
	}

	*s = types

	return nil
}

// --- ColumnsSection YAML methods ---

// UnmarshalYAML decodes `name: type` or `name: {type: ..., role: ...}` pairs keeping document order.
func (s *ColumnsSection) UnmarshalYAML(node *yaml.Node) error {
	var cols ColumnsSection

	err := eachPair(node, "columns", func(name string, value *yaml.Node) error {
		col := ColumnDoc{Name: name}

		switch value.Kind {
		case yaml.ScalarNode:
			if err := value.Decode(&col.Type); err != nil {
				return fmt.Errorf("column %s: %w", name, err)
			}
		case yaml.MappingNode:
			type plain ColumnDoc

			var p plain
			if err := value.Decode(&p); err != nil {
				return fmt.Errorf("column %s: %w", name, err)
			}

			col.Type, col.Role = p.Type, p.Role
		default:
			return fmt.Errorf("column %s: expected string or mapping, got %v", name, kindName(value.Kind))
		}

		cols = append(cols, col)

		return nil
	})
	if err != nil {
		return err
	}

	*s = cols

	return nil
}

// --- FieldsSection YAML methods ---

// UnmarshalYAML decodes `name: {type: ..., column: ...}` pairs keeping document order.
// A bare scalar value is shorthand for the mapper type.
func (s *FieldsSection) UnmarshalYAML(node *yaml.Node) error {
	var fields FieldsSection

	err := eachPair(node, "schema.fields", func(name string, value *yaml.Node) error {
		md := MapperDoc{Name: name}

		switch value.Kind {
		case yaml.ScalarNode:
			if err := value.Decode(&md.Type); err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
		case yaml.MappingNode:
			type plain MapperDoc

			var p plain
			if err := value.Decode(&p); err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}

			md.Type, md.Column = p.Type, p.Column
		default:
			return fmt.Errorf("field %s: expected string or mapping, got %v", name, kindName(value.Kind))
		}

		fields = append(fields, md)

		return nil
	})
	if err != nil {
		return err
	}

	*s = fields

	return nil
}
