// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one retrieval run: search the query, fetch
// and extract each identifier in order, and keep the papers that have at
// least one non-academic author.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/entrez"
	"github.com/pdiddy/pubmed-papers/internal/extract"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// Searcher turns a query into an ordered list of PMIDs.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}

// Fetcher retrieves the raw citation record for one PMID.
type Fetcher interface {
	Fetch(ctx context.Context, pmid string) (*entrez.Citation, error)
}

// FetchOutcome is the result of processing one identifier: either a summary
// or the error that made the record unusable. Exactly one of Summary and
// Err is meaningful.
type FetchOutcome struct {
	PMID    string
	Summary types.PaperSummary
	Err     error
}

// BatchResult summarizes one pipeline run.
type BatchResult struct {
	// Retained counts papers that passed the non-academic-author filter.
	Retained int
	// Filtered counts well-formed papers with no non-academic author.
	Filtered int
	// Failed counts identifiers whose fetch or parse failed.
	Failed int
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int {
	return r.Retained + r.Filtered + r.Failed
}

// Pipeline runs search, per-identifier fetch, extraction, and filtering.
// Construct one per contact identity; the injected Searcher/Fetcher carry
// the NCBI identification, not process-wide state.
type Pipeline struct {
	searcher   Searcher
	fetcher    Fetcher
	classifier *classify.Classifier
	log        *zap.Logger
}

// New builds a Pipeline. A nil logger is replaced with a no-op logger.
func New(searcher Searcher, fetcher Fetcher, cls *classify.Classifier, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		searcher:   searcher,
		fetcher:    fetcher,
		classifier: cls,
		log:        log,
	}
}

// Run executes one batch. A search failure is fatal and produces no
// results. Per-identifier failures are logged at debug level and skipped;
// one bad record never aborts the batch. Identifiers are processed strictly
// in search order, one attempt each, and the returned summaries keep that
// relative order.
func (p *Pipeline) Run(ctx context.Context, query string, maxResults int) ([]types.PaperSummary, error) {
	p.log.Debug("searching", zap.String("query", query), zap.Int("max_results", maxResults))

	pmids, err := p.searcher.Search(ctx, query, maxResults)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	p.log.Debug("search returned identifiers", zap.Int("count", len(pmids)), zap.Strings("pmids", pmids))

	var result BatchResult
	var papers []types.PaperSummary
	for _, pmid := range pmids {
		outcome := p.process(ctx, pmid)
		if outcome.Err != nil {
			result.Failed++
			p.log.Debug("skipping record", zap.String("pmid", pmid), zap.Error(outcome.Err))
			continue
		}
		if !outcome.Summary.HasNonAcademicAuthor() {
			result.Filtered++
			continue
		}
		result.Retained++
		papers = append(papers, outcome.Summary)
	}

	p.log.Info("batch complete",
		zap.Int("retained", result.Retained),
		zap.Int("filtered", result.Filtered),
		zap.Int("failed", result.Failed),
		zap.Int("total", result.Total()),
	)
	return papers, nil
}

// process fetches and extracts a single identifier.
func (p *Pipeline) process(ctx context.Context, pmid string) FetchOutcome {
	cit, err := p.fetcher.Fetch(ctx, pmid)
	if err != nil {
		return FetchOutcome{PMID: pmid, Err: err}
	}
	return FetchOutcome{PMID: pmid, Summary: extract.Extract(cit, pmid, p.classifier)}
}
