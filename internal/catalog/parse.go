package catalog

import (
	"fmt"
	"strings"
)

// ParseType parses a type expression into a StorageType.
// Supports: "text", "int", "address", "frozen<address>", "list<float>",
// "set<frozen<geo_point>>", "map<text, int>".
// Bare names that are not primitive kinds are composite type references;
// whether they exist is checked when the Catalog is built.
func ParseType(expr string) (StorageType, error) {
	p := &typeParser{src: expr}

	t, err := p.parseType()
	if err != nil {
		return StorageType{}, err
	}

	p.skipSpace()

	if p.pos != len(p.src) {
		return StorageType{}, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return t, nil
}

// MustParseType is like ParseType but panics on error. Intended for tests and fixtures.
func MustParseType(expr string) StorageType {
	t, err := ParseType(expr)
	if err != nil {
		panic(err)
	}

	return t
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) parseType() (StorageType, error) {
	name, err := p.ident()
	if err != nil {
		return StorageType{}, err
	}

	p.skipSpace()

	if !p.accept('<') {
		if k, ok := KindByName(name); ok {
			return Primitive(k), nil
		}

		if isModifierKeyword(name) {
			return StorageType{}, p.errorf("%s requires type parameters", name)
		}

		return Composite(name), nil
	}

	switch strings.ToLower(name) {
	case "frozen", "list", "set":
		inner, err := p.parseType()
		if err != nil {
			return StorageType{}, err
		}

		if err := p.expect('>'); err != nil {
			return StorageType{}, err
		}

		switch strings.ToLower(name) {
		case "frozen":
			return Frozen(inner), nil
		case "list":
			return List(inner), nil
		default:
			return Set(inner), nil
		}

	case "map":
		key, err := p.parseType()
		if err != nil {
			return StorageType{}, err
		}

		if err := p.expect(','); err != nil {
			return StorageType{}, err
		}

		value, err := p.parseType()
		if err != nil {
			return StorageType{}, err
		}

		if err := p.expect('>'); err != nil {
			return StorageType{}, err
		}

		return Map(key, value), nil

	default:
		return StorageType{}, p.errorf("unsupported parameterized type %q", name)
	}
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}

	if start == p.pos {
		if p.pos == len(p.src) {
			return "", p.errorf("unexpected end of expression")
		}

		return "", p.errorf("unexpected %q", p.src[p.pos])
	}

	return p.src[start:p.pos], nil
}

func (p *typeParser) accept(c byte) bool {
	p.skipSpace()

	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}

	return false
}

func (p *typeParser) expect(c byte) error {
	if !p.accept(c) {
		return p.errorf("expected %q", c)
	}

	return nil
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q at offset %d: %s", ErrInvalidType, p.src, p.pos, fmt.Sprintf(format, args...))
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isModifierKeyword(name string) bool {
	switch strings.ToLower(name) {
	case "frozen", "list", "set", "map", "tuple":
		return true
	default:
		return false
	}
}
