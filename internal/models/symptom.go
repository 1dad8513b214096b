package models

import (
	"sort"
	"strings"
)

// Symptom is an opaque snake_case token from the symptom catalog
type Symptom string

// DisplayName returns the token with underscores replaced by spaces
func (s Symptom) DisplayName() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Catalog is the list of symptom tokens known to the prediction service
type Catalog []Symptom

// NewCatalog builds a catalog from raw tokens, sorted lexicographically
func NewCatalog(tokens []string) Catalog {
	c := make(Catalog, 0, len(tokens))
	for _, t := range tokens {
		c = append(c, Symptom(t))
	}
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c
}

// Filter returns the symptoms whose display name contains term, ignoring case.
// An empty term returns the whole catalog.
func (c Catalog) Filter(term string) Catalog {
	if term == "" {
		return c
	}
	term = strings.ToLower(term)
	var out Catalog
	for _, s := range c {
		if MatchesSearch(s, term) {
			out = append(out, s)
		}
	}
	return out
}

// MatchesSearch reports whether a symptom is visible for the lowercase term
func MatchesSearch(s Symptom, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s.DisplayName()), lowerTerm)
}

// AppendToInput inserts a symptom into free text the way the sidebar does:
// "I have x" for an empty input, "current, x" otherwise.
func AppendToInput(current string, s Symptom) string {
	current = strings.TrimSpace(current)
	if current == "" {
		return "I have " + s.DisplayName()
	}
	return current + ", " + s.DisplayName()
}
