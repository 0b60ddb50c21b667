// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders paper summaries as CSV, a console table, or JSON.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// csvHeader is the fixed column order of the CSV output.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes one row per summary with the fixed header. Multi-value
// fields are comma-joined inside their cell.
func WriteCSV(w io.Writer, papers []types.PaperSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.PMID,
			p.Title,
			p.PubDate,
			strings.Join(p.NonAcademicAuthors, ", "),
			strings.Join(p.CompanyAffiliations, ", "),
			p.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatTable writes summaries as a human-readable table to w.
func FormatTable(papers []types.PaperSummary, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No papers with non-academic authors found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-60s  %-12s  %-24s  %s\n",
		"PMID", "Title", "Date", "Authors", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, p := range papers {
		title := p.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%-10s  %-60s  %-12s  %-24s  %s\n",
			p.PMID, title, p.PubDate, formatAuthors(p.NonAcademicAuthors), p.CorrespondingEmail)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes summaries as indented JSON to w.
func FormatJSON(papers []types.PaperSummary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 24)
	default:
		return truncate(authors[0], 16) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
