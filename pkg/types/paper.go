// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubmed-papers pipeline.
package types

// PaperSummary is the normalized output record for one PubMed citation that
// has at least one author with a non-academic affiliation.
type PaperSummary struct {
	// PMID is the PubMed identifier of the citation.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title as returned by PubMed, empty if absent.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date rendered as "Year-Month-Day". Missing
	// components stay empty but the string always carries three segments
	// (e.g. "2023-Apr-" when the day is unknown).
	PubDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists authors with at least one non-academic
	// affiliation, deduplicated and sorted.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the affiliation strings classified as
	// non-academic, deduplicated and sorted.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email address found while scanning
	// qualifying affiliations, or empty if none was found.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// HasNonAcademicAuthor reports whether the summary qualifies for output.
func (p PaperSummary) HasNonAcademicAuthor() bool {
	return len(p.NonAcademicAuthors) > 0
}
