// Package catalog models the table schema snapshot that mapper paths are
// resolved against.
//
// A Catalog holds the table's columns and a registry of user-defined
// composite types. Column and field types are StorageType values: a
// primitive kind, a reference to a composite type by name, or a wrapper
// (frozen, list, set, map) around another type. Composite types refer to
// each other by name only, so a cyclic type graph never produces a cyclic
// value.
//
// Types can be written as expressions:
//
//	text
//	frozen<address>
//	list<frozen<geo_point>>
//	map<text, int>
//
// A Catalog is built once with a Builder and is read-only afterwards; it is
// safe for concurrent use.
package catalog
