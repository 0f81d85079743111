package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/salesreport/internal/exitcode"
	"github.com/gyeh/salesreport/internal/logging"
	"github.com/gyeh/salesreport/internal/normalize"
	"github.com/gyeh/salesreport/internal/reader"
	"github.com/gyeh/salesreport/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Dry-run schema detection (no validation or aggregation)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	path := args[0]

	delim, err := cfg.DelimiterRune()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	records, err := reader.Open(path, reader.Options{Delimiter: delim}, log).Read(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to read data")
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data read.")
		os.Exit(exitcode.NoData)
	}

	sha, err := normalize.FileHash(path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to hash file")
	}

	info := schema.Detector{DateColumns: cfg.DateColumns}.Detect(records, log)
	dateCol := info.DateColumn
	if dateCol == "" {
		dateCol = "(none)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== salesreport schema ===")
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "SHA-256:     %s\n", sha)
	fmt.Fprintf(out, "Rows:        %d\n", len(records))
	fmt.Fprintf(out, "Columns:     %s\n", strings.Join(info.AvailableColumns, ", "))
	fmt.Fprintf(out, "Date column: %s\n", dateCol)
	fmt.Fprintf(out, "Required:    %s\n", strings.Join(info.RequiredColumns, ", "))

	if !info.IsValidSalesData {
		fmt.Fprintf(out, "Schema validation: FAILED (missing %s)\n", strings.Join(info.MissingRequired(), ", "))
		os.Exit(exitcode.InvalidSchema)
	}
	fmt.Fprintln(out, "Schema validation: OK")
	return nil
}
