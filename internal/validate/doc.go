// Package validate accepts or rejects a set of index mappers against a
// table schema.
//
// Validator.Validate walks the mappers in declaration order and stops at the
// first one that fails, returning a Verdict that holds either a Plan (every
// mapper with the primitive storage type it indexes) or exactly one
// diagnostic. Service wraps the validator for callers that load definition
// files, validate many at once and log outcomes.
package validate
