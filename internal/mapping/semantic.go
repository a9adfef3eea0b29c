package mapping

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=SemanticType -linecomment -output=semantic_string.go

// SemanticType is the declared type of a mapper: how the index interprets
// the values found at the mapper's column path.
type SemanticType int

const (
	_ SemanticType = iota // zero value is not a valid mapper type

	String     // string
	Text       // text
	Integer    // integer
	Long       // long
	Float      // float
	Double     // double
	Boolean    // boolean
	Blob       // blob
	Date       // date
	Inet       // inet
	UUID       // uuid
	BigDecimal // bigdecimal
	BigInteger // biginteger

	// SemanticTotal is the number of values reserved for semantic types, including the zero value.
	SemanticTotal = int(iota)
)

var ErrUnknownSemanticType = errors.New("unknown mapper type")

// semanticAliases are accepted spellings besides the canonical names.
var semanticAliases = map[string]SemanticType{
	"binary": Blob,
	"bytes":  Blob,
	"int":    Integer,
	"bool":   Boolean,
}

// IsValid reports whether s is one of the declared semantic types.
func (s SemanticType) IsValid() bool {
	return s > 0 && int(s) < SemanticTotal
}

// AllSemanticTypes returns every declared semantic type in declaration order.
func AllSemanticTypes() []SemanticType {
	all := make([]SemanticType, 0, SemanticTotal-1)
	for s := SemanticType(1); int(s) < SemanticTotal; s++ {
		all = append(all, s)
	}

	return all
}

// ParseSemanticType parses a mapper type name such as "string" or "binary".
// Names are case-insensitive.
func ParseSemanticType(name string) (SemanticType, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, s := range AllSemanticTypes() {
		if s.String() == name {
			return s, nil
		}
	}

	if s, ok := semanticAliases[name]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownSemanticType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s SemanticType) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownSemanticType, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SemanticType) UnmarshalText(text []byte) error {
	v, err := ParseSemanticType(string(text))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
