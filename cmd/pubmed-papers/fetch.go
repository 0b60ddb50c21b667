package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/entrez"
	"github.com/pdiddy/pubmed-papers/internal/output"
	"github.com/pdiddy/pubmed-papers/internal/pipeline"
	"github.com/pdiddy/pubmed-papers/internal/secrets"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 20
	defaultUserAgent  = "pubmed-papers/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch QUERY",
	Short: "Fetch PubMed papers with non-academic authors",
	Long: `Fetch runs QUERY against PubMed (any PubMed query syntax works), retrieves
each matching citation, and keeps papers where at least one author has a
non-academic affiliation. With --file results are saved as CSV; otherwise a
table (or, with --json, JSON) is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Int("max-results", defaultMaxResults, "maximum number of search results to process")
	fetchCmd.Flags().StringP("file", "f", "", "save results as CSV to this file")
	fetchCmd.Flags().Bool("json", false, "print results as JSON instead of a table")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI (required by usage policy)")
	fetchCmd.Flags().String("api-key", "", "NCBI API key for higher rate limits")
	fetchCmd.Flags().String("keywords", "", "YAML file with custom classifier keyword lists")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]

	maxResults, _ := cmd.Flags().GetInt("max-results")
	file, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("entrez.email")
	}
	email = secretDefault(secrets.KeyEntrezEmail, email)

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = viper.GetString("entrez.api_key")
	}
	apiKey = secretDefault(secrets.KeyNCBIAPIKey, apiKey)

	cls, err := buildClassifier(cmd)
	if err != nil {
		return err
	}

	cfg := types.EntrezConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Email:      email,
		APIKey:     apiKey,
		MaxResults: maxResults,
	}
	client := entrez.NewClient(cfg)

	p := pipeline.New(client, client, cls, zap.L())
	papers, err := p.Run(cmd.Context(), query, maxResults)
	if err != nil {
		return err
	}

	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("creating %s: %w", file, err)
		}
		if err := output.WriteCSV(f, papers); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", file, err)
		}
		fmt.Printf("Saved %d results to %s\n", len(papers), file)
		return nil
	}

	if asJSON {
		return output.FormatJSON(papers, os.Stdout)
	}
	output.FormatTable(papers, os.Stdout)
	return nil
}

// buildClassifier returns the keyword classifier, loading custom lists when
// --keywords (or the config file) names one.
func buildClassifier(cmd *cobra.Command) (*classify.Classifier, error) {
	keywords, _ := cmd.Flags().GetString("keywords")
	if keywords == "" {
		keywords = viper.GetString("classify.keywords_file")
	}
	if keywords == "" {
		return classify.New(), nil
	}
	return classify.Load(keywords)
}
