package catalog

import (
	"errors"
	"fmt"
	"slices"

	"index-schema/internal/common"
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrUnknownType     = errors.New("unknown type")
	ErrInvalidType     = errors.New("invalid storage type")

	errBuilderUsed = errors.New("catalog builder already built")
)

// Role is the structural role of a column in its table.
type Role int

const (
	RoleRegular Role = iota
	RolePartitionKey
	RoleClusteringKey
	RoleIndexMarker
)

// String returns the role name as written in definition documents.
func (r Role) String() string {
	switch r {
	case RoleRegular:
		return "regular"
	case RolePartitionKey:
		return "partition_key"
	case RoleClusteringKey:
		return "clustering_key"
	case RoleIndexMarker:
		return "index"
	default:
		return common.UnknownStr
	}
}

// ParseRole parses a role name. The empty string is RoleRegular.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleRegular, RolePartitionKey, RoleClusteringKey, RoleIndexMarker} {
		if s == r.String() {
			return r, nil
		}
	}

	if s == "" {
		return RoleRegular, nil
	}

	return RoleRegular, fmt.Errorf("unknown column role %q", s)
}

// ColumnDefinition is a top-level column of the table.
type ColumnDefinition struct {
	Name string
	Type StorageType
	Role Role
}

// Structural reports whether the column is excluded from mapper resolution.
// Partition key columns and the index marker column carry no searchable content.
func (c ColumnDefinition) Structural() bool {
	return c.Role == RolePartitionKey || c.Role == RoleIndexMarker
}

// Field is a named member of a composite type.
type Field struct {
	Name string
	Type StorageType
}

// CompositeType is a user-defined type: an ordered list of uniquely named fields.
type CompositeType struct {
	Name   string
	Fields []Field

	index map[string]int
}

// Field returns the type of the named field.
func (c *CompositeType) Field(name string) (StorageType, bool) {
	i, ok := c.index[name]
	if !ok {
		return StorageType{}, false
	}

	return c.Fields[i].Type, true
}

// FieldNames returns the field names in declaration order.
func (c *CompositeType) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}

	return names
}

// Catalog is an immutable snapshot of a table schema: its columns and the
// registry of composite types they may reference. Build one with a Builder.
type Catalog struct {
	table     string
	columns   []ColumnDefinition
	byName    map[string]int
	types     map[string]*CompositeType
	typeOrder []string
}

// Table returns the table name.
func (c *Catalog) Table() string {
	return c.table
}

// Columns returns a copy of the column definitions in declaration order.
func (c *Catalog) Columns() []ColumnDefinition {
	return slices.Clone(c.columns)
}

// Column returns the column with the given name.
func (c *Catalog) Column(name string) (ColumnDefinition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return ColumnDefinition{}, false
	}

	return c.columns[i], true
}

// SearchableColumns returns the names of the non-structural columns.
func (c *Catalog) SearchableColumns() []string {
	var names []string

	for _, col := range c.columns {
		if !col.Structural() {
			names = append(names, col.Name)
		}
	}

	return names
}

// Type returns a copy of the named composite type.
func (c *Catalog) Type(name string) (CompositeType, bool) {
	t, ok := c.types[name]
	if !ok {
		return CompositeType{}, false
	}

	return CompositeType{Name: t.Name, Fields: slices.Clone(t.Fields), index: t.index}, true
}

// TypeNames returns the composite type names in declaration order.
func (c *Catalog) TypeNames() []string {
	return slices.Clone(c.typeOrder)
}

// FieldType returns the type of field in the named composite type.
func (c *Catalog) FieldType(typeName, field string) (StorageType, bool) {
	t, ok := c.types[typeName]
	if !ok {
		return StorageType{}, false
	}

	return t.Field(field)
}

// FieldNames returns the field names of the named composite type.
func (c *Catalog) FieldNames(typeName string) []string {
	t, ok := c.types[typeName]
	if !ok {
		return nil
	}

	return t.FieldNames()
}

// Builder accumulates columns and composite type fields and produces a Catalog.
// The first error recorded is returned by Build.
type Builder struct {
	table   string
	columns []ColumnDefinition
	types   map[string]*CompositeType
	order   []string
	err     error
}

// NewBuilder returns a Builder for the named table.
func NewBuilder(table string) *Builder {
	return &Builder{
		table: table,
		types: make(map[string]*CompositeType),
	}
}

// Column adds a column.
func (b *Builder) Column(name string, t StorageType, role Role) *Builder {
	if b.err != nil {
		return b
	}

	if name == "" {
		b.err = fmt.Errorf("column of table %q: %w", b.table, ErrEmptyName)
		return b
	}

	for _, c := range b.columns {
		if c.Name == name {
			b.err = fmt.Errorf("%w %q in table %q", ErrDuplicateColumn, name, b.table)
			return b
		}
	}

	b.columns = append(b.columns, ColumnDefinition{Name: name, Type: t, Role: role})

	return b
}

// ColumnExpr adds a column whose type is given as a type expression.
func (b *Builder) ColumnExpr(name, expr string, role Role) *Builder {
	if b.err != nil {
		return b
	}

	t, err := ParseType(expr)
	if err != nil {
		b.err = fmt.Errorf("column %q: %w", name, err)
		return b
	}

	return b.Column(name, t, role)
}

// Type declares a composite type with no fields yet. Declaring a type that
// already exists is a no-op, fields keep accumulating.
func (b *Builder) Type(name string) *Builder {
	if b.err != nil {
		return b
	}

	if name == "" {
		b.err = fmt.Errorf("composite type: %w", ErrEmptyName)
		return b
	}

	if _, ok := b.types[name]; !ok {
		b.types[name] = &CompositeType{Name: name, index: make(map[string]int)}
		b.order = append(b.order, name)
	}

	return b
}

// Field appends a field to the named composite type, declaring the type if needed.
func (b *Builder) Field(typeName, field string, t StorageType) *Builder {
	b.Type(typeName)

	if b.err != nil {
		return b
	}

	if field == "" {
		b.err = fmt.Errorf("field of type %q: %w", typeName, ErrEmptyName)
		return b
	}

	ct := b.types[typeName]
	if _, ok := ct.index[field]; ok {
		b.err = fmt.Errorf("%w %q in type %q", ErrDuplicateField, field, typeName)
		return b
	}

	ct.index[field] = len(ct.Fields)
	ct.Fields = append(ct.Fields, Field{Name: field, Type: t})

	return b
}

// FieldExpr appends a field whose type is given as a type expression.
func (b *Builder) FieldExpr(typeName, field, expr string) *Builder {
	if b.err != nil {
		return b
	}

	t, err := ParseType(expr)
	if err != nil {
		b.err = fmt.Errorf("field %q of type %q: %w", field, typeName, err)
		return b
	}

	return b.Field(typeName, field, t)
}

// Build checks that every composite reference resolves and returns the Catalog.
func (b *Builder) Build() (*Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}

	for _, col := range b.columns {
		if err := b.checkRefs(col.Type); err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
	}

	for _, name := range b.order {
		for _, f := range b.types[name].Fields {
			if err := b.checkRefs(f.Type); err != nil {
				return nil, fmt.Errorf("field %q of type %q: %w", f.Name, name, err)
			}
		}
	}

	c := &Catalog{
		table:     b.table,
		columns:   b.columns,
		byName:    make(map[string]int, len(b.columns)),
		types:     b.types,
		typeOrder: b.order,
	}

	for i, col := range c.columns {
		c.byName[col.Name] = i
	}

	b.err = errBuilderUsed

	return c, nil
}

func (b *Builder) checkRefs(t StorageType) error {
	if err := checkShape(t); err != nil {
		return err
	}

	for _, ref := range t.References() {
		if _, ok := b.types[ref]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownType, ref)
		}
	}

	return nil
}

func checkShape(t StorageType) error {
	switch t.Form {
	case FormPrimitive:
		if !t.Kind.IsValid() {
			return fmt.Errorf("%w: primitive %s", ErrInvalidType, t.Kind)
		}
	case FormComposite:
		if t.Name == "" {
			return fmt.Errorf("%w: composite without name", ErrInvalidType)
		}
	case FormWrapped:
		if t.Modifier == ModifierNone {
			return fmt.Errorf("%w: wrapper without modifier", ErrInvalidType)
		}

		if t.Elem == nil {
			return fmt.Errorf("%w: %s without element type", ErrInvalidType, t.Modifier)
		}

		if (t.Modifier == ModifierMap) != (t.Key != nil) {
			return fmt.Errorf("%w: %s key type mismatch", ErrInvalidType, t.Modifier)
		}

		if t.Key != nil {
			if err := checkShape(*t.Key); err != nil {
				return err
			}
		}

		return checkShape(*t.Elem)
	default:
		return fmt.Errorf("%w: form %s", ErrInvalidType, t.Form)
	}

	return nil
}
