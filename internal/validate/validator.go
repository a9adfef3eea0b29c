package validate

import (
	"index-schema/internal/catalog"
	"index-schema/internal/diagnostic"
	"index-schema/internal/mapping"
	"index-schema/internal/match"
	"index-schema/internal/resolve"
)

// Config holds configuration for validation.
type Config struct {
	// Suggestions attaches "did you mean" names to UnresolvedPath diagnostics.
	Suggestions bool
	// MinSimilarity is the lowest name similarity worth suggesting.
	MinSimilarity float64
	// MaxSuggestions caps the suggestions per diagnostic.
	MaxSuggestions int
	// Concurrency limits how many definitions Service validates at once
	// (0 = unlimited).
	Concurrency int
	// CheckDocument makes Service check definition files against the
	// document schema before building them.
	CheckDocument bool
}

// DefaultConfig returns the default validation configuration.
func DefaultConfig() Config {
	return Config{
		Suggestions:    true,
		MinSimilarity:  match.DefaultMinSimilarity,
		MaxSuggestions: match.DefaultMaxSuggestions,
		Concurrency:    4,
	}
}

// Verdict is the outcome of validating one definition: a plan when
// accepted, exactly one diagnostic when rejected.
type Verdict struct {
	Plan       *Plan
	Diagnostic *diagnostic.Diagnostic
}

// Accepted reports whether every mapper resolved to a compatible type.
func (v Verdict) Accepted() bool {
	return v.Diagnostic == nil
}

// Err returns the rejection as an error, or nil when accepted.
func (v Verdict) Err() error {
	if v.Diagnostic == nil {
		return nil
	}

	return v.Diagnostic
}

// Message returns the rejection message, or "" when accepted.
func (v Verdict) Message() string {
	if v.Diagnostic == nil {
		return ""
	}

	return v.Diagnostic.Message
}

// Warnings lists the accepted mappers that index collections element-wise.
func (v Verdict) Warnings() []*diagnostic.Diagnostic {
	if v.Plan == nil {
		return nil
	}

	var out []*diagnostic.Diagnostic

	for _, e := range v.Plan.Entries {
		if e.MultiValued {
			out = append(out, diagnostic.New(diagnostic.MultiValued,
				e.Mapper.Column.String(), e.Mapper.Name, e.Declared.String()))
		}
	}

	return out
}

// Validator checks mappers against a catalog. It keeps no state between
// calls and is safe for concurrent use.
type Validator struct {
	cfg Config
}

// New returns a Validator with the given configuration.
func New(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate resolves the mappers in declaration order and stops at the first
// one that does not resolve or whose type cannot index the resolved column.
func (v *Validator) Validate(specs []mapping.MapperSpec, cat *catalog.Catalog) Verdict {
	r := resolve.New(cat)
	plan := newPlan(cat.Table(), len(specs))

	for _, spec := range specs {
		res := r.Resolve(spec.Column)
		if !res.Resolved() {
			return Verdict{Diagnostic: v.unresolved(spec, res)}
		}

		check := match.Check(res.Terminal, spec.Type)
		if !check.Compatible {
			return Verdict{Diagnostic: diagnostic.Incompatible(check.StorageType, spec.Column.String(), spec.Name)}
		}

		plan.add(Entry{
			Mapper:      spec,
			Column:      res.Column,
			Declared:    res.Declared,
			Terminal:    res.Terminal,
			MultiValued: res.MultiValued,
		})
	}

	return Verdict{Plan: plan}
}

func (v *Validator) unresolved(spec mapping.MapperSpec, res resolve.Result) *diagnostic.Diagnostic {
	detail := res.Reason.String()
	if res.Parent != "" {
		detail += " " + res.Parent
	}

	d := diagnostic.Unresolved(res.Prefix.String(), spec.Name, detail)

	if v.cfg.Suggestions {
		d.WithSuggestions(v.suggest(res))
	}

	return d
}

// suggest returns full dotted paths close to where resolution stopped.
func (v *Validator) suggest(res resolve.Result) []string {
	var names []string

	switch res.Reason {
	case resolve.ReasonNoColumn, resolve.ReasonNoField:
		if res.Prefix.IsEmpty() {
			return nil
		}

		names = match.Suggest(res.Prefix.Leaf(), res.Candidates, v.cfg.MinSimilarity, v.cfg.MaxSuggestions)
		base := res.Prefix.Prefix(res.Prefix.Len() - 1)

		for i, n := range names {
			names[i] = mapping.NewFieldPath(append(base.Segments, n)...).String()
		}
	case resolve.ReasonNotPrimitive:
		for _, n := range res.Candidates {
			if len(names) == v.cfg.MaxSuggestions {
				break
			}

			names = append(names, mapping.NewFieldPath(append(res.Prefix.Segments, n)...).String())
		}
	}

	return names
}

var defaultValidator = New(DefaultConfig())

// Validate validates specs against cat with the default configuration.
func Validate(specs []mapping.MapperSpec, cat *catalog.Catalog) Verdict {
	return defaultValidator.Validate(specs, cat)
}
