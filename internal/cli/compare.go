package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clausematch/clausematch/internal/model"
	"github.com/clausematch/clausematch/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	outHTML     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	cacheDir    string
	noFooter    bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	llmEnabled  bool
	llmProvider string
	llmModel    string
	semWorkers  int
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two documents and report factual discrepancies",
	Long: `Compare segments both documents into clauses, aligns them pair by
pair, extracts money, date and number facts, and reports every field where
the two sides disagree. With --llm enabled, an external classifier
additionally checks each pair for discrepancies the rules cannot see.

Sources may be local files (.txt, .md, .json, .html) or http(s) URLs.

Example:
  clausematch compare contract_en.txt contract_de.txt
  clausematch compare a.txt b.txt --json report.json --md report.md
  clausematch compare a.txt b.txt --llm --llm-provider openai`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	// Output flags
	compareCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	compareCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	compareCmd.Flags().StringVar(&outHTML, "html", "", "output HTML path (optional)")
	compareCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// HTTP flags (for URL sources)
	compareCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall comparison timeout")
	compareCmd.Flags().StringVar(&userAgent, "ua", "ClauseMatch/0.2 (+https://github.com/clausematch/clausematch)", "HTTP User-Agent")
	compareCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	compareCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	compareCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	compareCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	compareCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable semantic checking via an LLM classifier")
	compareCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	compareCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
	compareCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable classifier response cache")
	compareCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "classifier cache directory (memory-only when empty)")
	compareCmd.Flags().IntVar(&semWorkers, "semantic-workers", 4, "parallel classifier calls per job")
}

func runCompare(cmd *cobra.Command, args []string) error {
	sourceA, sourceB := args[0], args[1]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Comparing: %s vs %s\n", sourceA, sourceB)
		fmt.Fprintf(os.Stderr, "Semantic checks: %v\n\n", llmEnabled)
	}

	p := pipeline.NewPipeline(cfg)

	rep, err := p.CompareSources(ctx, sourceA, sourceB)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Compared %d clause pairs\n", rep.Similarity.Total)
		fmt.Fprintf(os.Stderr, "✓ %d finding(s): %d OK, %d REVIEW, %d MISMATCH\n\n",
			len(rep.Findings), rep.Summary.OK, rep.Summary.Review, rep.Summary.Mismatch)
	}

	if err := p.RenderReport(rep, outJSON, outMD, outHTML, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig merges flags over defaults and pulls API keys from the
// environment. Commands register different flag subsets, so zero values
// mean "keep the default" here.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	if semWorkers > 0 {
		cfg.Concurrency.SemanticWorkers = semWorkers
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if !llmEnabled {
		return cfg, nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
