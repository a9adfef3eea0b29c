package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"index-schema/internal/common"
)

// MessagePrefix starts every rejection message.
const MessagePrefix = "'schema' is invalid : "

// Kind identifies what a diagnostic reports.
type Kind int

const (
	// UnresolvedPath: a mapper path does not reach a column or composite field.
	UnresolvedPath Kind = iota + 1
	// IncompatibleType: the path resolves but the mapper type cannot index it.
	IncompatibleType
	// MultiValued: an accepted mapper indexes every element of a collection.
	MultiValued
)

// String returns the stable code of the kind.
func (k Kind) String() string {
	switch k {
	case UnresolvedPath:
		return "unresolved_path"
	case IncompatibleType:
		return "incompatible_type"
	case MultiValued:
		return "multi_valued"
	default:
		return common.UnknownStr
	}
}

// Severity returns the severity diagnostics of this kind carry.
func (k Kind) Severity() Severity {
	if k == MultiValued {
		return SeverityWarning
	}

	return SeverityError
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is a single finding about one mapper. Rejections are
// returned as *Diagnostic, which implements error.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	// Code is Kind.String(), kept for serialized reports.
	Code string
	// Field is the mapper the diagnostic is about.
	Field string
	// Prefix is the dotted path where resolution stopped (UnresolvedPath),
	// or the column path that was checked (IncompatibleType).
	Prefix string
	// StorageType is the validator name of the offending storage type.
	StorageType string
	// Detail says which way resolution failed. Not part of Message.
	Detail string
	// Suggestions are names close to the one that did not resolve.
	Suggestions []string
	// Message is the user-facing text, returned verbatim by Error.
	Message string
}

// New builds a diagnostic of the given kind. It is the only place messages
// are formatted:
//
//	UnresolvedPath:   prefixPath is the failing prefix, extra the failure detail
//	IncompatibleType: prefixPath is the column path, extra the storage validator name
//	MultiValued:      prefixPath is the column path, extra the declared column type
func New(kind Kind, prefixPath, originalPath, extra string) *Diagnostic {
	d := &Diagnostic{
		Kind:     kind,
		Severity: kind.Severity(),
		Code:     kind.String(),
		Field:    originalPath,
		Prefix:   prefixPath,
	}

	switch kind {
	case UnresolvedPath:
		d.Detail = extra
		d.Message = fmt.Sprintf("%sNo column definition '%s' for field '%s'", MessagePrefix, prefixPath, originalPath)
	case IncompatibleType:
		d.StorageType = extra
		d.Message = fmt.Sprintf("%sType '%s' in column '%s' is not supported by mapper '%s'",
			MessagePrefix, extra, prefixPath, originalPath)
	case MultiValued:
		d.Detail = extra
		d.Message = fmt.Sprintf("Mapper '%s' indexes every element of column '%s' (%s)", originalPath, prefixPath, extra)
	default:
		d.Message = fmt.Sprintf("%s%s '%s' for field '%s'", MessagePrefix, common.UnknownStr, prefixPath, originalPath)
	}

	return d
}

// Unresolved is New(UnresolvedPath, ...).
func Unresolved(prefixPath, originalPath, detail string) *Diagnostic {
	return New(UnresolvedPath, prefixPath, originalPath, detail)
}

// Incompatible is New(IncompatibleType, ...).
func Incompatible(storageType, columnPath, originalPath string) *Diagnostic {
	return New(IncompatibleType, columnPath, originalPath, storageType)
}

// WithSuggestions returns d with the suggestions attached. Message is unchanged.
func (d *Diagnostic) WithSuggestions(suggestions []string) *Diagnostic {
	d.Suggestions = suggestions
	return d
}

// Error returns the diagnostic message.
func (d *Diagnostic) Error() string {
	return d.Message
}

// Hint returns a "did you mean" line, or "" when there are no suggestions.
func (d *Diagnostic) Hint() string {
	if len(d.Suggestions) == 0 {
		return ""
	}

	quoted := make([]string, len(d.Suggestions))
	for i, s := range d.Suggestions {
		quoted[i] = "'" + s + "'"
	}

	return "did you mean " + strings.Join(quoted, ", ") + "?"
}

// String returns a formatted diagnostic string with code and hint.
func (d *Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)
	if hint := d.Hint(); hint != "" {
		msg += " (" + hint + ")"
	}

	return msg
}

// As returns the *Diagnostic wrapped in err, if any.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}

	return nil, false
}

// Diagnostics holds the diagnostics gathered over several definitions.
type Diagnostics struct {
	Errors   []*Diagnostic
	Warnings []*Diagnostic
}

// Add files d by its severity. Nil is ignored.
func (ds *Diagnostics) Add(d *Diagnostic) {
	if d == nil {
		return
	}

	if d.Severity == SeverityError {
		ds.Errors = append(ds.Errors, d)
	} else {
		ds.Warnings = append(ds.Warnings, d)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// Err returns a combined error from all error diagnostics, or nil if there are none.
func (ds *Diagnostics) Err() error {
	if !ds.HasErrors() {
		return nil
	}

	errs := make([]error, len(ds.Errors))
	for i, d := range ds.Errors {
		errs[i] = d
	}

	return errors.Join(errs...)
}
