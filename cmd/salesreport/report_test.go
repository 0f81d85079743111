package main

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/config"
	"github.com/gyeh/salesreport/internal/filter"
	"github.com/gyeh/salesreport/internal/render"
)

func TestBuildOptions_NoBounds(t *testing.T) {
	c := &config.Config{Format: "json", Delimiter: ";", SkipValidation: true, DateColumns: []string{"emitido_em"}}
	opts, readOpts, err := buildOptions(c, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	if len(opts.Filters) != 0 {
		t.Errorf("expected no filters without bounds, got %d", len(opts.Filters))
	}
	if _, ok := opts.Renderer.(render.JSON); !ok {
		t.Errorf("expected JSON renderer, got %T", opts.Renderer)
	}
	if readOpts.Delimiter != ';' {
		t.Errorf("delimiter = %q", readOpts.Delimiter)
	}
	if !opts.SkipValidation || opts.Detector.DateColumns[0] != "emitido_em" {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestBuildOptions_DateFilter(t *testing.T) {
	c := &config.Config{Format: "text", StartDate: "2025-06-01"}
	opts, _, err := buildOptions(c, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	if len(opts.Filters) != 1 {
		t.Fatalf("expected one filter, got %d", len(opts.Filters))
	}
	df, ok := opts.Filters[0].(*filter.DateFilter)
	if !ok {
		t.Fatalf("expected *filter.DateFilter, got %T", opts.Filters[0])
	}
	if df.Start == nil || df.End != nil {
		t.Errorf("unexpected bounds: start=%v end=%v", df.Start, df.End)
	}
}

func TestBuildOptions_Invalid(t *testing.T) {
	for _, c := range []*config.Config{
		{Format: "xml"},
		{Format: "text", Delimiter: "::"},
		{Format: "text", EndDate: "tomorrow"},
	} {
		if _, _, err := buildOptions(c, zerolog.Nop()); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
}
