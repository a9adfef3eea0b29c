package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"index-schema/internal/common"
)

var (
	ErrEmptyPath      = errors.New("empty path")
	ErrInvalidSegment = errors.New("invalid path segment")
)

// FieldPath is a dotted column path like "address.point.latitude":
// a column name followed by composite-type field names.
type FieldPath struct {
	Segments []string
}

// ParsePath parses a dotted path into a FieldPath.
// Segments are matched verbatim, so names such as "non-existent" or
// "Street" are kept exactly as written. Empty segments and segments
// containing whitespace are rejected.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, ErrEmptyPath
	}

	segments := strings.Split(path, common.PathSeparator)

	for _, seg := range segments {
		if seg == "" {
			return FieldPath{}, fmt.Errorf("%w in %q: empty segment", ErrInvalidSegment, path)
		}

		if strings.IndexFunc(seg, unicode.IsSpace) >= 0 {
			return FieldPath{}, fmt.Errorf("%w in %q: %q contains whitespace", ErrInvalidSegment, path, seg)
		}
	}

	return FieldPath{Segments: segments}, nil
}

// MustParsePath is like ParsePath but panics on error. Intended for tests and fixtures.
func MustParsePath(path string) FieldPath {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}

	return p
}

// NewFieldPath builds a FieldPath from already split segments.
func NewFieldPath(segments ...string) FieldPath {
	return FieldPath{Segments: slices.Clone(segments)}
}

// String returns the dotted form of the path.
func (p FieldPath) String() string {
	return common.JoinPath(p.Segments...)
}

// Len returns the number of segments.
func (p FieldPath) Len() int {
	return len(p.Segments)
}

// IsEmpty reports whether the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return common.IsEmpty(p.Segments)
}

// Column returns the first segment, the name of the top-level column.
func (p FieldPath) Column() string {
	first, _ := common.First(p.Segments)
	return first
}

// Leaf returns the last segment.
func (p FieldPath) Leaf() string {
	last, _ := common.Last(p.Segments)
	return last
}

// Prefix returns the path made of the first n segments.
func (p FieldPath) Prefix(n int) FieldPath {
	n = min(max(n, 0), len(p.Segments))
	return FieldPath{Segments: slices.Clone(p.Segments[:n])}
}

// Equal reports whether both paths have the same segments.
func (p FieldPath) Equal(other FieldPath) bool {
	return slices.Equal(p.Segments, other.Segments)
}

// MarshalText implements encoding.TextMarshaler.
func (p FieldPath) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *FieldPath) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}
