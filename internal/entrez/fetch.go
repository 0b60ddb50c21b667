// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
)

// EFetch XML structures. Only the fields the extractor reads are mapped;
// everything else in the record is ignored by the decoder.
type articleSet struct {
	Articles []Citation `xml:"PubmedArticle"`
}

// Citation is one raw PubMed citation record as returned by EFetch.
type Citation struct {
	Article Article `xml:"MedlineCitation>Article"`
}

// Article carries the citation fields of interest. All fields are optional
// in the PubMed DTD; absent elements decode to zero values.
type Article struct {
	Title   string   `xml:"ArticleTitle"`
	PubDate PubDate  `xml:"Journal>JournalIssue>PubDate"`
	Authors []Author `xml:"AuthorList>Author"`
}

// PubDate holds the publication date components. PubMed records months as
// names ("Apr") or numbers, and any component may be missing.
type PubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// Author is one entry of the author list. An author may carry zero, one, or
// several affiliation strings.
type Author struct {
	LastName     string   `xml:"LastName"`
	ForeName     string   `xml:"ForeName"`
	Affiliations []string `xml:"AffiliationInfo>Affiliation"`
}

// Fetch retrieves the citation record for one PMID via EFetch. An unknown
// PMID yields an empty article set, reported as an error so the pipeline
// can skip the identifier.
func (c *Client) Fetch(ctx context.Context, pmid string) (*Citation, error) {
	params := url.Values{
		"id":      {pmid},
		"retmode": {"xml"},
	}

	resp, err := c.get(ctx, efetchBase, params)
	if err != nil {
		return nil, fmt.Errorf("EFetch %s: %w", pmid, err)
	}
	defer resp.Body.Close()

	var set articleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing EFetch response for %s: %w", pmid, err)
	}
	if len(set.Articles) == 0 {
		return nil, fmt.Errorf("no record found for PMID %s", pmid)
	}
	return &set.Articles[0], nil
}
