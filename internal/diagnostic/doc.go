// Package diagnostic describes why an index definition was rejected.
//
// A rejection is one *Diagnostic, either UnresolvedPath or IncompatibleType,
// whose message is built by New:
//
//	'schema' is invalid : No column definition '<prefix>' for field '<field>'
//	'schema' is invalid : Type '<storage type>' in column '<column>' is not supported by mapper '<field>'
//
// Diagnostics collects findings across several definitions.
package diagnostic
