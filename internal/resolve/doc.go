// Package resolve resolves dotted mapper paths against a catalog to the
// primitive storage type they denote.
//
// Resolution fails at the first segment that cannot be followed, and the
// Result records the failing prefix: the segments consumed so far,
// including the one that failed.
package resolve
