// Package main is the command-line entry point: it reads meeting notes from a
// file or stdin and prints the extracted tasks and follow-up as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"meeting-task-extractor/config"
	"meeting-task-extractor/internal/bootstrap"
	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file     string
		strategy string
		pretty   bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract action items from meeting notes",
		Long: `extract reads meeting notes from --file or stdin and prints a JSON object
with the tasks found and a follow-up message listing them.

The strategy comes from extraction.strategy in config.yaml unless --strategy
is given. "model" requires an LLM provider with an API key.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := extraction.ParseStrategy(strategy); !ok {
				return fmt.Errorf("--strategy must be auto, heuristic or model, got %q", strategy)
			}

			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open notes: %w", err)
				}
				defer f.Close()
				in = f
			}

			return run(cmd.Context(), in, cmd.OutOrStdout(), strategy, pretty, verbose)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read notes from this file instead of stdin")
	cmd.Flags().StringVar(&strategy, "strategy", "", "extraction strategy: auto, heuristic or model")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	return cmd
}

func run(ctx context.Context, in io.Reader, out io.Writer, strategy string, pretty, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:    level,
		Mode:     cfg.Logger.Mode,
		Encoding: log.EncodingConsole,
	})

	uc, err := bootstrap.NewExtractionUseCase(ctx, cfg, logger, strategy)
	if err != nil {
		return err
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read notes: %w", err)
	}

	res, err := uc.Extract(ctx, extraction.ExtractInput{Text: string(text)})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
