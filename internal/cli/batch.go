package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clausematch/clausematch/internal/pipeline"
	"github.com/clausematch/clausematch/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Compare multiple document pairs from a file in parallel",
	Long: `Batch reads document pairs from a file — one pair per line, the two
sources separated by whitespace or a comma — and compares them in parallel
with a configurable worker count, writing one JSON report per pair.

Example:
  clausematch batch pairs.txt
  clausematch batch pairs.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clausematch-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	pairs, err := readPairs(file)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no document pairs found in %s", file)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch: %d pair(s), %d worker(s), output %s\n\n", len(pairs), concurrency, outputDir)

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	p := pipeline.NewPipeline(cfg)

	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.Process(ctx, pairs)

	failed := 0
	for i, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s vs %s: %v\n", result.SourceA, result.SourceB, result.Err)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report_%03d.json", i+1))
		if err := p.Renderer().RenderJSON(result.Report, path); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s vs %s: write report: %v\n", result.SourceA, result.SourceB, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s vs %s: %d OK, %d REVIEW, %d MISMATCH → %s\n",
			result.SourceA, result.SourceB,
			result.Report.Summary.OK, result.Report.Summary.Review, result.Report.Summary.Mismatch,
			path)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d comparisons failed", failed, len(results))
	}
	return nil
}

// readPairs parses the batch input file. Blank lines and lines starting
// with '#' are skipped.
func readPairs(path string) ([]worker.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var pairs []worker.Pair
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.ReplaceAll(line, ",", " ")
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected two sources, got %d", lineNo, len(fields))
		}
		pairs = append(pairs, worker.Pair{SourceA: fields[0], SourceB: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	return pairs, nil
}
