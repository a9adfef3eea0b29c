package catalog

import (
	"strings"

	"index-schema/internal/common"
)

// Form tells which variant a StorageType holds.
type Form int

const (
	FormInvalid   Form = iota
	FormPrimitive      // a primitive storage kind
	FormComposite      // a reference to a user-defined composite type
	FormWrapped        // a frozen wrapper or a collection around another type
)

// String returns a human-readable representation of the Form.
func (f Form) String() string {
	switch f {
	case FormPrimitive:
		return "primitive"
	case FormComposite:
		return "composite"
	case FormWrapped:
		return "wrapped"
	default:
		return common.UnknownStr
	}
}

// Modifier is the wrapper applied by a FormWrapped type.
type Modifier int

const (
	ModifierNone Modifier = iota
	ModifierFrozen
	ModifierList
	ModifierSet
	ModifierMap
)

// String returns the type-expression keyword of the modifier.
func (m Modifier) String() string {
	switch m {
	case ModifierFrozen:
		return "frozen"
	case ModifierList:
		return "list"
	case ModifierSet:
		return "set"
	case ModifierMap:
		return "map"
	case ModifierNone:
		return "none"
	default:
		return common.UnknownStr
	}
}

// IsCollection reports whether values under the modifier are multi-valued.
func (m Modifier) IsCollection() bool {
	return m == ModifierList || m == ModifierSet || m == ModifierMap
}

// StorageType is a tagged variant over primitive kinds, composite type
// references and wrapped types. Composites are referenced by name and looked
// up in the owning Catalog, so the value itself is always a finite tree.
type StorageType struct {
	Form Form
	// Kind is set for FormPrimitive.
	Kind Kind
	// Name is the composite type name for FormComposite.
	Name string
	// Modifier, Elem and Key are set for FormWrapped. For maps Elem holds
	// the value type and Key the key type.
	Modifier Modifier
	Elem     *StorageType
	Key      *StorageType
}

// Primitive returns the StorageType of a primitive kind.
func Primitive(k Kind) StorageType {
	return StorageType{Form: FormPrimitive, Kind: k}
}

// Composite returns a reference to the composite type with the given name.
func Composite(name string) StorageType {
	return StorageType{Form: FormComposite, Name: name}
}

// Frozen wraps t in the frozen modifier.
func Frozen(t StorageType) StorageType {
	return wrap(ModifierFrozen, t)
}

// List returns list<t>.
func List(t StorageType) StorageType {
	return wrap(ModifierList, t)
}

// Set returns set<t>.
func Set(t StorageType) StorageType {
	return wrap(ModifierSet, t)
}

// Map returns map<key, value>.
func Map(key, value StorageType) StorageType {
	st := wrap(ModifierMap, value)
	st.Key = &key

	return st
}

func wrap(m Modifier, inner StorageType) StorageType {
	return StorageType{Form: FormWrapped, Modifier: m, Elem: &inner}
}

func (t StorageType) IsPrimitive() bool { return t.Form == FormPrimitive }
func (t StorageType) IsComposite() bool { return t.Form == FormComposite }
func (t StorageType) IsWrapped() bool   { return t.Form == FormWrapped }

// Unwrap strips every wrapper around t. Maps unwrap to their value type.
func (t StorageType) Unwrap() StorageType {
	st, _ := t.UnwrapCollections()
	return st
}

// UnwrapCollections is like Unwrap and also reports whether a collection
// modifier was crossed on the way.
func (t StorageType) UnwrapCollections() (StorageType, bool) {
	multi := false
	for t.Form == FormWrapped && t.Elem != nil {
		multi = multi || t.Modifier.IsCollection()
		t = *t.Elem
	}

	return t, multi
}

// References returns the names of all composite types mentioned by t.
func (t StorageType) References() []string {
	var names []string

	var walk func(st StorageType)
	walk = func(st StorageType) {
		switch st.Form {
		case FormComposite:
			names = append(names, st.Name)
		case FormWrapped:
			if st.Key != nil {
				walk(*st.Key)
			}

			if st.Elem != nil {
				walk(*st.Elem)
			}
		}
	}
	walk(t)

	return names
}

// String renders t as a type expression, e.g. "frozen<address>" or "map<text, int>".
func (t StorageType) String() string {
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t StorageType) write(sb *strings.Builder) {
	switch t.Form {
	case FormPrimitive:
		sb.WriteString(t.Kind.String())
	case FormComposite:
		sb.WriteString(t.Name)
	case FormWrapped:
		sb.WriteString(t.Modifier.String())
		sb.WriteByte('<')

		if t.Key != nil {
			t.Key.write(sb)
			sb.WriteString(", ")
		}

		if t.Elem != nil {
			t.Elem.write(sb)
		}

		sb.WriteByte('>')
	default:
		sb.WriteString(common.UnknownStr)
	}
}

// Validator returns the storage validator name of t as the store reports it,
// e.g. "org.apache.cassandra.db.marshal.FloatType" or
// "org.apache.cassandra.db.marshal.ListType(org.apache.cassandra.db.marshal.Int32Type)".
func (t StorageType) Validator() string {
	switch t.Form {
	case FormPrimitive:
		return t.Kind.Validator()
	case FormComposite:
		return ValidatorPackage + "UserType(" + t.Name + ")"
	case FormWrapped:
		var inner []string
		if t.Key != nil {
			inner = append(inner, t.Key.Validator())
		}

		if t.Elem != nil {
			inner = append(inner, t.Elem.Validator())
		}

		name := map[Modifier]string{
			ModifierFrozen: "FrozenType",
			ModifierList:   "ListType",
			ModifierSet:    "SetType",
			ModifierMap:    "MapType",
		}[t.Modifier]

		return ValidatorPackage + name + "(" + strings.Join(inner, ",") + ")"
	default:
		return common.UnknownStr
	}
}
