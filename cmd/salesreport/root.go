package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/salesreport/internal/config"
	"github.com/gyeh/salesreport/internal/render"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "salesreport <file>",
	Short: "Sales report from a CSV or Parquet file",
	Long: "Reads a sales file (produto, quantidade, preco_unitario and an optional date column),\n" +
		"validates and filters it, and prints revenue per product, total revenue and the best seller.",
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runReport,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json (or set "+config.EnvLogFormat+")")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error (or set "+config.EnvLogLevel+")")
	pf.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&cfg.Delimiter, "delimiter", "", `CSV delimiter, e.g. ";" or "tab" (default: detect from header)`)

	f := rootCmd.Flags()
	f.StringVar(&cfg.StartDate, "start-date", "", "Start date, inclusive (YYYY-MM-DD)")
	f.StringVar(&cfg.EndDate, "end-date", "", "End date, inclusive (YYYY-MM-DD)")
	f.StringVar(&cfg.Format, "format", "text", "Output format: "+strings.Join(render.Formats(), " or "))
	f.BoolVar(&cfg.SkipValidation, "skip-validation", false, "Skip data validation")
}

// loadConfig layers .env, environment and the YAML file under explicit flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	explicit := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	return cfg.Load(explicit)
}
