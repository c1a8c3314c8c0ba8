package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/clausematch/clausematch/internal/api"
	"github.com/clausematch/clausematch/internal/pipeline"
	"github.com/clausematch/clausematch/internal/store"
)

var (
	serveAddr string
	jobTTL    time.Duration
	maxUpload int64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the comparison HTTP API",
	Long: `Serve exposes the pipeline over HTTP:

  POST /v1/analyze             submit two documents (multipart: source, target)
  GET  /v1/jobs                list recent jobs
  GET  /v1/jobs/{id}           job status and summary
  GET  /v1/jobs/{id}/findings  canonical findings
  GET  /v1/jobs/{id}/report    HTML report

Jobs are held in memory with a TTL; there is no durable storage and no
authentication. Run behind a gateway in anything resembling production.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&jobTTL, "job-ttl", 24*time.Hour, "how long completed jobs are retained")
	serveCmd.Flags().Int64Var(&maxUpload, "max-upload", 10<<20, "max upload size in bytes per file")

	// LLM flags shared with compare
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable semantic checking via an LLM classifier")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default when empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Server.Addr = serveAddr
	cfg.Server.JobTTL = jobTTL
	cfg.Server.MaxUploadBytes = maxUpload

	p := pipeline.NewPipeline(cfg)
	jobs := store.NewMemoryStore(cfg.Server.JobTTL)
	server := api.NewServer(p, jobs, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
