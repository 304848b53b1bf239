package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"chatsearch/internal/config"
	"chatsearch/internal/logging"
	"chatsearch/internal/repository"
	"chatsearch/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "searchctl",
	Short: "Query the property dataset from the command line",
	Long: `searchctl runs the same free-text search pipeline as the HTTP service
against a local CSV directory or the configured PostgreSQL database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "CSV data directory (overrides DATASET_SOURCE and DATA_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:       level,
		Format:      "console",
		Output:      os.Stderr,
		ServiceName: "searchctl",
	})
}

// loadService builds a search service over the configured dataset
func loadService(ctx context.Context, log zerolog.Logger) (*service.SearchService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}
	if dataDir != "" {
		cfg.Dataset.Source = config.SourceCSV
		cfg.Dataset.DataDir = dataDir
	}

	src, closeSource, err := repository.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset source: %w", err)
	}
	defer closeSource()

	ds, err := repository.LoadDataset(ctx, src, cfg.DatasetRules())
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Int("records", ds.Len()).Str("source", cfg.Dataset.Source).Msg("dataset loaded")

	return service.NewSearchService(ds, service.NewQueryParser(), nil, log), cfg, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
