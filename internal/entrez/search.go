// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ESearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}

// Search runs the query against ESearch and returns the matching PMIDs in
// the order the service ranked them. The query string is passed through
// verbatim, so any PubMed query syntax works. maxResults bounds the result
// page; there is no pagination beyond it.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = 20
	}

	params := url.Values{
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
		"retmode": {"json"},
	}

	resp, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return nil, fmt.Errorf("ESearch: %w", err)
	}
	defer resp.Body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	if sr.Result.Error != "" {
		return nil, fmt.Errorf("ESearch rejected query: %s", sr.Result.Error)
	}
	return sr.Result.IDList, nil
}
