// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a raw PubMed citation into a PaperSummary: it walks
// the author list, classifies each affiliation, and collects the authors and
// affiliation strings classified as non-academic.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/entrez"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// emailPattern matches an embedded email address inside affiliation text.
var emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+`)

// Extract builds a PaperSummary from one citation record. It never fails:
// missing fields default to empty, an empty author list yields a summary
// with no non-academic authors (which the pipeline then filters out).
//
// The corresponding email is first-match-wins: the first address found in
// affiliation scanning order is kept and later matches never overwrite it.
func Extract(cit *entrez.Citation, pmid string, cls *classify.Classifier) types.PaperSummary {
	summary := types.PaperSummary{
		PMID:    pmid,
		Title:   cit.Article.Title,
		PubDate: formatDate(cit.Article.PubDate),
	}

	var authors, affiliations []string
	for _, author := range cit.Article.Authors {
		for _, aff := range author.Affiliations {
			if !cls.IsNonAcademic(aff) {
				continue
			}
			authors = append(authors, displayName(author))
			affiliations = append(affiliations, aff)
			if summary.CorrespondingEmail == "" {
				summary.CorrespondingEmail = emailPattern.FindString(aff)
			}
		}
	}

	summary.NonAcademicAuthors = dedupSorted(authors)
	summary.CompanyAffiliations = dedupSorted(affiliations)
	return summary
}

// formatDate joins the date components with "-". The output always carries
// three segments; missing components stay empty ("2023-Apr-").
func formatDate(d entrez.PubDate) string {
	return d.Year + "-" + d.Month + "-" + d.Day
}

// displayName composes "ForeName LastName", dropping the separator when one
// part is missing.
func displayName(a entrez.Author) string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

// dedupSorted removes duplicates and sorts, so set-valued fields render
// deterministically. Empty input returns nil.
func dedupSorted(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
