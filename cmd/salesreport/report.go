package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/salesreport/internal/config"
	"github.com/gyeh/salesreport/internal/exitcode"
	"github.com/gyeh/salesreport/internal/filter"
	"github.com/gyeh/salesreport/internal/logging"
	"github.com/gyeh/salesreport/internal/reader"
	"github.com/gyeh/salesreport/internal/render"
	"github.com/gyeh/salesreport/internal/report"
	"github.com/gyeh/salesreport/internal/schema"
)

func runReport(cmd *cobra.Command, args []string) error {
	cfg.FilePath = args[0]
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	opts, readOpts, err := buildOptions(&cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid options")
		os.Exit(exitcode.UsageError)
	}

	src := reader.Open(cfg.FilePath, readOpts, log)
	res, err := report.Run(cmd.Context(), log, src, opts)
	if err != nil {
		log.Error().Err(err).Msg("report failed")
		os.Exit(exitcode.RenderError)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	if res.Status != report.StatusOK {
		os.Exit(res.Status.ExitCode())
	}
	return nil
}

// buildOptions turns a validated Config into pipeline and reader options.
// The date filter is only added when at least one bound is set.
func buildOptions(c *config.Config, log zerolog.Logger) (report.Options, reader.Options, error) {
	renderer, err := render.New(c.Format)
	if err != nil {
		return report.Options{}, reader.Options{}, err
	}
	delim, err := c.DelimiterRune()
	if err != nil {
		return report.Options{}, reader.Options{}, err
	}
	start, end, err := c.Bounds()
	if err != nil {
		return report.Options{}, reader.Options{}, err
	}

	var filters []filter.Filter
	if start != nil || end != nil {
		filters = append(filters, filter.NewDateFilter(start, end, log))
	}

	return report.Options{
		SkipValidation: c.SkipValidation,
		Filters:        filters,
		Renderer:       renderer,
		Detector:       schema.Detector{DateColumns: c.DateColumns},
		FilePath:       c.FilePath,
	}, reader.Options{Delimiter: delim}, nil
}
