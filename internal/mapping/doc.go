// Package mapping provides mapper declarations, dotted column paths and
// the YAML index definition format.
//
// A mapper binds an index field to a column path and a semantic type:
//
//	schema:
//	  fields:
//	    address.city: {type: string}
//	    height: {type: float, column: address.height}
//
// # Path Syntax
//
// Column paths are dotted: the first segment names a table column, every
// following segment names a field of the composite type reached so far.
//   - Simple columns: "first_name"
//   - Nested fields: "address.city"
//   - Deep nesting: "address.point.latitude"
//
// Segments are case-sensitive and matched verbatim.
//
// # Definition Files
//
// A definition file declares the table, its composite types, its columns and
// the mapped fields. Order in every section is preserved; mappers are
// validated in the order they are declared. CheckDocument validates the
// file shape against a JSON schema before it is built.
package mapping
