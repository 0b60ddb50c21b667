// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a free-text affiliation string denotes a
// non-academic (commercial) organization.
//
// Classification is a case-insensitive substring match against two fixed
// keyword lists. Any academic keyword disqualifies the text even when a
// company keyword is also present, so a university-affiliated biotech
// spin-off mentioning "institute" stays academic. Keywords match as
// substrings, not whole words, so short terms like "co" can over-match
// inside longer words; known limitation.
package classify

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// defaultNonAcademic lists organizational and corporate terms.
var defaultNonAcademic = []string{
	"pharma", "biotech", "inc", "ltd", "llc", "gmbh", "corp", "co", "industries",
	"solutions", "company", "laboratories", "lab", "research institute",
}

// defaultAcademic lists institutional terms. A match here always wins.
var defaultAcademic = []string{
	"university", "college", "school", "institute of technology", "faculty",
	"dept", "department", "hospital", "center", "centre", "academy",
}

// Classifier matches affiliation text against keyword lists.
type Classifier struct {
	nonAcademic []string
	academic    []string
}

// New returns a Classifier with the built-in keyword lists.
func New() *Classifier {
	return &Classifier{
		nonAcademic: defaultNonAcademic,
		academic:    defaultAcademic,
	}
}

// IsNonAcademic reports whether affiliation denotes a non-academic
// organization: at least one non-academic keyword present and no academic
// keyword anywhere in the text. An empty string matches nothing and
// returns false.
func (c *Classifier) IsNonAcademic(affiliation string) bool {
	text := strings.ToLower(affiliation)
	for _, k := range c.academic {
		if strings.Contains(text, k) {
			return false
		}
	}
	for _, k := range c.nonAcademic {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// keywordFile is the on-disk YAML shape for custom keyword lists.
type keywordFile struct {
	NonAcademic []string `yaml:"non_academic"`
	Academic    []string `yaml:"academic"`
}

// Load reads custom keyword lists from a YAML file. A list left empty in the
// file falls back to the built-in default. Keywords are lowercased on load.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file %s: %w", path, err)
	}

	var kf keywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}

	c := New()
	if len(kf.NonAcademic) > 0 {
		c.nonAcademic = lowerAll(kf.NonAcademic)
	}
	if len(kf.Academic) > 0 {
		c.academic = lowerAll(kf.Academic)
	}
	return c, nil
}

func lowerAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = strings.ToLower(strings.TrimSpace(k))
	}
	return out
}
