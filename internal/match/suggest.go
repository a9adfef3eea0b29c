package match

import (
	"sort"
	"strings"
)

const (
	// DefaultMinSimilarity is the lowest similarity a name needs to be suggested.
	DefaultMinSimilarity = 0.5
	// DefaultMaxSuggestions caps the number of suggestions returned.
	DefaultMaxSuggestions = 3
)

// Suggest returns the candidates closest to name, best first. Names are
// compared case-insensitively with '_' and '-' ignored, so "firstName"
// suggests "first_name". Ties keep candidate order.
func Suggest(name string, candidates []string, minSimilarity float64, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	norm := normalizeName(name)

	var hits []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, normalizeName(c))
		if score >= minSimilarity {
			hits = append(hits, scored{name: c, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) == 0 {
		return nil
	}

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}
