package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/DEEPAK-KUMAR-SINGH1/panextract/ai"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/ai/mistral"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/chunk"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/doctext"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/extraction"
	"github.com/DEEPAK-KUMAR-SINGH1/panextract/tabular"
)

func main() {
	// Allow MISTRAL_API_KEY to come from a local .env file.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "panextract",
		Usage: "Extract PAN/person/organisation relations from a document into a table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "extract",
				Usage:  "Run entity extraction over a document and write the resulting table",
				Action: extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the source document (PDF, DOCX, or plain .txt)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the table file to write",
						Value:   "output_entities.csv",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: csv or xlsx",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "Extraction service base URL",
						Value: "https://api.mistral.ai/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Extraction model name",
						Value: "mistral-small-2501",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Extraction service API key",
						EnvVars: []string{"MISTRAL_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Characters of document text per service call",
						Value: chunk.DefaultSize,
					},
					&cli.IntFlag{
						Name:  "max-chars",
						Usage: "Cap on total input characters (0 = unlimited)",
						Value: chunk.DefaultMaxChars,
					},
					&cli.StringFlag{
						Name:  "on-oversize",
						Usage: "Policy for input above max-chars: truncate or fail",
						Value: "truncate",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent extraction requests (1 = strictly sequential)",
						Value: 1,
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-request timeout for the extraction service",
						Value: 2 * time.Minute,
					},
				},
			},
		},
	}
}

func extractCommand(c *cli.Context) error {
	ctx := context.Background()

	policy, err := oversizePolicy(c.String("on-oversize"))
	if err != nil {
		return err
	}

	format := strings.ToLower(c.String("format"))
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("unknown format %q (want csv or xlsx)", c.String("format"))
	}

	// Configuration problems abort here, before any segment is processed.
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithAPIKey(c.String("api-key")),
		ai.WithTimeout(c.Duration("timeout")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid extraction configuration: %w", err)
	}

	extractor, err := mistral.NewEntityExtractor(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create extraction client: %w", err)
	}

	inputPath := c.String("input")
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	text, err := doctext.NewConverter().Text(data, inputPath)
	if err != nil {
		return fmt.Errorf("failed to extract document text: %w", err)
	}

	pipeline, err := extraction.NewPipeline(extractor,
		extraction.WithChunkSize(c.Int("chunk-size")),
		extraction.WithLimit(chunk.Limit{MaxChars: c.Int("max-chars"), Policy: policy}),
		extraction.WithWorkers(c.Int("workers")),
		extraction.WithProgress(printProgress),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Input: %s (%d characters of text)\n", inputPath, len([]rune(text)))
	fmt.Fprintf(os.Stderr, "Model: %s\n", aiConfig.Model)

	result, err := pipeline.Run(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr)

	table := tabular.Parse(result.Aggregated, len(aiConfig.Schema.Columns))

	var encoded []byte
	switch format {
	case "xlsx":
		encoded, err = table.XLSX()
	default:
		encoded, err = table.CSV()
	}
	if err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	outputPath := c.String("output")
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	report := result.Report
	fmt.Fprintf(os.Stderr, "Document fingerprint: %x\n", uint64(report.Fingerprint))
	fmt.Fprintf(os.Stderr, "Segments: %d processed, %d succeeded, %d skipped\n",
		report.Segments, report.Succeeded, len(report.Skipped))
	for _, failure := range report.Failures {
		fmt.Fprintf(os.Stderr, "  segment %d skipped: %s\n", failure.Index, failure.Cause)
	}
	if report.Truncated {
		fmt.Fprintf(os.Stderr, "Warning: input exceeded %d characters; only the first part was processed\n",
			c.Int("max-chars"))
	}
	if len(table.Ragged) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d row(s) did not match the %d-column format: rows %v\n",
			len(table.Ragged), len(aiConfig.Schema.Columns), table.Ragged)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d row(s) to %s\n", len(table.Rows), outputPath)

	return nil
}

// printProgress renders incremental status on one stderr line.
func printProgress(completed, total int) {
	if total == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\rProcessing segment %d/%d...", completed, total)
}

func oversizePolicy(name string) (chunk.OversizePolicy, error) {
	switch strings.ToLower(name) {
	case "truncate":
		return chunk.TruncatePolicy, nil
	case "fail":
		return chunk.FailPolicy, nil
	default:
		return 0, fmt.Errorf("unknown oversize policy %q (want truncate or fail)", name)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}
