// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez is a client for the NCBI E-utilities API: ESearch turns a
// PubMed query into an ordered list of PMIDs, EFetch retrieves the citation
// record for a single PMID.
//
// NCBI asks every client to identify itself with a contact email and caps
// request rates at 3 req/s without an API key and 10 req/s with one. The
// client enforces the cap with a token-bucket limiter and backs off on
// HTTP 429 responses.
package entrez

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pubmed-papers/internal/httputil"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Endpoint base URLs. Declared as vars so tests can substitute httptest servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// toolName is sent as the tool parameter per the E-utilities usage policy.
const toolName = "pubmed-papers"

// Client queries the E-utilities endpoints for the pubmed database.
type Client struct {
	httpClient *http.Client
	cfg        types.EntrezConfig
	limiter    *rate.Limiter
}

// NewClient builds a Client from cfg. The contact identity (email, API key)
// is instance state, so pipelines with different identities can coexist.
func NewClient(cfg types.EntrezConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		if cfg.APIKey != "" {
			rps = 10
		} else {
			rps = 3
		}
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// get performs a rate-limited GET against base with params, retrying on 429.
// The identification parameters required by NCBI are added here so every
// request carries them.
func (c *Client) get(ctx context.Context, base string, params url.Values) (*http.Response, error) {
	params.Set("db", "pubmed")
	params.Set("tool", toolName)
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	return resp, nil
}
