package resolve

import (
	"index-schema/internal/catalog"
	"index-schema/internal/common"
	"index-schema/internal/mapping"
)

// Reason tells why a path did not resolve. Every reason is reported to users
// with the same "no column definition" wording; the distinction is kept for
// callers and for suggestions.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonNoColumn: the first segment names no searchable column.
	ReasonNoColumn
	// ReasonNoField: a composite type has no field with the segment's name.
	ReasonNoField
	// ReasonNotComposite: the path descends into a primitive value.
	ReasonNotComposite
	// ReasonNotPrimitive: the path ends on a composite value.
	ReasonNotPrimitive
)

// String returns a short description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "resolved"
	case ReasonNoColumn:
		return "no column definition"
	case ReasonNoField:
		return "no such field in composite type"
	case ReasonNotComposite:
		return "descends into a non-composite value"
	case ReasonNotPrimitive:
		return "ends on a composite value"
	default:
		return common.UnknownStr
	}
}

// Result is the outcome of resolving one path.
type Result struct {
	// Path is the path that was resolved.
	Path mapping.FieldPath
	// Column is the top-level column the path starts at (zero if ReasonNoColumn).
	Column catalog.ColumnDefinition
	// Declared is the type at the last consumed segment, before unwrapping.
	Declared catalog.StorageType
	// Terminal is the primitive type the path denotes. Only set when resolved.
	Terminal catalog.StorageType
	// MultiValued is set when a list, set or map was unwrapped along the path.
	MultiValued bool

	// Prefix is the failing prefix: every segment consumed including the
	// one that could not be resolved. Only set when unresolved.
	Prefix mapping.FieldPath
	Reason Reason
	// Parent names the composite type that lacked the field (ReasonNoField),
	// or the primitive type descended into (ReasonNotComposite).
	Parent string
	// Candidates are the names that were available where resolution failed.
	Candidates []string
}

// Resolved reports whether the path resolved to a primitive type.
func (r Result) Resolved() bool {
	return r.Reason == ReasonNone
}

// Resolver walks mapper paths over a catalog.
// It holds no state besides the catalog and is safe for concurrent use.
type Resolver struct {
	catalog *catalog.Catalog
}

// New returns a Resolver over cat.
func New(cat *catalog.Catalog) *Resolver {
	return &Resolver{catalog: cat}
}

// Resolve walks path segment by segment. The first segment must name a
// searchable column; every following segment names a field of the composite
// type reached so far. Frozen wrappers and collections are unwrapped without
// consuming a segment. The walk consumes at most one composite lookup per
// segment, so it terminates on cyclic type graphs.
func (r *Resolver) Resolve(path mapping.FieldPath) Result {
	res := Result{Path: path}

	if path.IsEmpty() {
		return res.fail(0, ReasonNoColumn, "", r.catalog.SearchableColumns())
	}

	col, ok := r.catalog.Column(path.Column())
	if !ok || col.Structural() {
		return res.fail(1, ReasonNoColumn, "", r.catalog.SearchableColumns())
	}

	res.Column = col
	current := col.Type

	for i := 1; i < path.Len(); i++ {
		seg := path.Segments[i]

		inner, multi := current.UnwrapCollections()
		res.MultiValued = res.MultiValued || multi

		if !inner.IsComposite() {
			return res.fail(i+1, ReasonNotComposite, inner.String(), nil)
		}

		ft, ok := r.catalog.FieldType(inner.Name, seg)
		if !ok {
			return res.fail(i+1, ReasonNoField, inner.Name, r.catalog.FieldNames(inner.Name))
		}

		current = ft
	}

	res.Declared = current

	terminal, multi := current.UnwrapCollections()
	res.MultiValued = res.MultiValued || multi

	if !terminal.IsPrimitive() {
		return res.fail(path.Len(), ReasonNotPrimitive, terminal.Name, r.catalog.FieldNames(terminal.Name))
	}

	res.Terminal = terminal

	return res
}

func (r Result) fail(consumed int, reason Reason, parent string, candidates []string) Result {
	r.Prefix = r.Path.Prefix(consumed)
	r.Reason = reason
	r.Parent = parent
	r.Candidates = candidates
	r.Terminal = catalog.StorageType{}

	return r
}
