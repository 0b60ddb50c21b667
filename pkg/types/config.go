package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EntrezConfig holds settings for the NCBI E-utilities client.
type EntrezConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address sent with every request, as required by
	// the NCBI usage policy.
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults is the maximum number of search results to process (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestsPerSecond caps the request rate. Zero selects the NCBI policy
	// default: 3 req/s without an API key, 10 req/s with one.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries is the number of retries on HTTP 429 responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ClassifyConfig holds settings for the affiliation classifier.
type ClassifyConfig struct {
	// KeywordsFile optionally names a YAML file with custom keyword lists.
	// Empty selects the built-in lists.
	KeywordsFile string `json:"keywords_file,omitempty" yaml:"keywords_file,omitempty"`
}

// OutputConfig holds settings for result rendering.
type OutputConfig struct {
	// File is the CSV output path. Empty writes a table to stdout.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// JSON switches console output from a table to indented JSON.
	JSON bool `json:"json" yaml:"json"`
}
