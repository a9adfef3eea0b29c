package validate

import (
	"index-schema/internal/catalog"
	"index-schema/internal/mapping"
)

// Entry is one accepted mapper with the storage type it indexes.
type Entry struct {
	Mapper mapping.MapperSpec
	// Column is the top-level column the mapper reads from.
	Column catalog.ColumnDefinition
	// Declared is the type of the last path segment as the schema declares it.
	Declared catalog.StorageType
	// Terminal is the primitive the mapper indexes.
	Terminal catalog.StorageType
	// MultiValued is set when the mapper indexes every element of a collection.
	MultiValued bool
}

// Plan is the path to terminal type mapping of an accepted definition,
// handed to whatever builds the index documents.
type Plan struct {
	Table   string
	Entries []Entry

	index map[string]int
}

func newPlan(table string, size int) *Plan {
	return &Plan{
		Table:   table,
		Entries: make([]Entry, 0, size),
		index:   make(map[string]int, size),
	}
}

func (p *Plan) add(e Entry) {
	p.index[e.Mapper.Name] = len(p.Entries)
	p.Entries = append(p.Entries, e)
}

// Lookup returns the entry of the mapper with the given name.
func (p *Plan) Lookup(name string) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}

	i, ok := p.index[name]
	if !ok {
		return Entry{}, false
	}

	return p.Entries[i], true
}

// Len returns the number of mappers in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}

	return len(p.Entries)
}

// Types returns mapper name -> terminal storage type.
func (p *Plan) Types() map[string]catalog.StorageType {
	if p == nil {
		return nil
	}

	out := make(map[string]catalog.StorageType, len(p.Entries))
	for _, e := range p.Entries {
		out[e.Mapper.Name] = e.Terminal
	}

	return out
}
