package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fandomtools/ao3list/internal/config"
	"github.com/fandomtools/ao3list/internal/log"
	"github.com/fandomtools/ao3list/internal/model"
	"github.com/fandomtools/ao3list/internal/report"
	"github.com/fandomtools/ao3list/internal/scraper"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch fandom lists from the archive's category indexes",
		Long: `Fetch scrapes one index page per selected category, merges the results
into a single deduplicated list, drops fandoms below the minimum work
count, and renders the remainder sorted by work count descending.

When no category is selected, all known categories are scraped.
Run "ao3list categories" to see the available category names.

Examples:
  # Scrape everything, print one line per fandom
  ao3list fetch

  # Anime and TV fandoms with at least 100 works, as an aligned table
  ao3list fetch -c anime -c tv -m 100 -o table

  # Full scrape as pretty-printed JSON written to a file
  ao3list fetch -o json -f fandoms.json

  # Verbose progress on stderr, compact JSON on stdout
  ao3list fetch -v -o json-compact`,
		Args: cobra.NoArgs,
		RunE: runFetchCmd,
	}

	cmd.Flags().StringP("output", "o", string(report.FormatText),
		fmt.Sprintf("Output format (one of %v)", report.FormatNames()))
	cmd.Flags().StringArrayP("category", "c", nil,
		"Category to scrape (repeatable; default: all categories)")
	cmd.Flags().BoolP("verbose", "v", false,
		"Report item counts and merge/filter statistics")
	cmd.Flags().BoolP("quiet", "q", false,
		"Suppress all progress output (overrides --verbose)")
	cmd.Flags().IntP("min-works", "m", config.DefaultMinWorks,
		"Minimum number of works a fandom must have to be listed")
	cmd.Flags().StringP("file", "f", "",
		"Write results to this file instead of stdout")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .ao3list in current, XDG config, or home directory)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout per index page request")

	return cmd
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Reject an unknown output format before any fetching begins.
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := log.NewLogger(cfg.Verbosity, cmd.ErrOrStderr())

	// Cancel in-flight fetches on interrupt.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	segments := make([]string, 0, len(cfg.ResolvedCategories()))
	for _, name := range cfg.ResolvedCategories() {
		segment, ok := config.PathSegment(name)
		if !ok {
			// Validate already checked the names; keep the guard anyway.
			return fmt.Errorf("%w: %s", config.ErrUnknownCategory, name)
		}
		segments = append(segments, segment)
	}

	fetcher := scraper.NewFetcher(cfg.BaseURL, cfg.MediaPath,
		scraper.WithLogger(logger),
		scraper.WithTimeout(cfg.Timeout),
	)

	fandoms, err := fetcher.FetchAll(ctx, segments, cfg.MinWorks)
	if err != nil {
		return fmt.Errorf("failed to fetch fandoms: %w", err)
	}

	// Nothing is written to the output sink until the full list is final.
	return writeResults(cmd, cfg, format, fandoms)
}

// writeResults renders the final list to stdout or the configured file.
// The file handle is released even when rendering fails.
func writeResults(cmd *cobra.Command, cfg *config.Config, format report.Format, fandoms []model.Fandom) (err error) {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.OutputFile != "" {
		f, openErr := os.Create(cfg.OutputFile)
		if openErr != nil {
			return fmt.Errorf("could not open file %s for writing: %w", cfg.OutputFile, openErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("could not close file %s: %w", cfg.OutputFile, closeErr))
			}
		}()
		output = f
	}

	writer, err := report.NewWriter(format, output)
	if err != nil {
		return err
	}
	if _, err := writer.Write(fandoms); err != nil {
		return fmt.Errorf("could not write results: %w", err)
	}
	return nil
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Explicitly set flags win over file overrides.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not
	// found. Otherwise silently continue without one.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Format, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Categories, err = cmd.Flags().GetStringArray("category")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("min-works") {
		cfg.MinWorks, err = cmd.Flags().GetInt("min-works")
		if err != nil {
			return nil, err
		}
	}

	cfg.OutputFile, err = cmd.Flags().GetString("file")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	switch {
	case quiet:
		cfg.Verbosity = config.VerbosityQuiet
	case verbose:
		cfg.Verbosity = config.VerbosityVerbose
	default:
		cfg.Verbosity = config.DefaultVerbosity
	}

	return cfg, nil
}
