// Package reader loads sales records from local files. Every reader turns a
// file into a slice of model.Record; failures are returned as errors for the
// caller to report as "no data".
package reader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
)

// contextCheckInterval is how often, in rows, readers check for cancellation.
const contextCheckInterval = 100

// Source produces the records of one input file.
type Source interface {
	Read(ctx context.Context) ([]model.Record, error)
}

// Options controls how a file is opened.
type Options struct {
	// Delimiter for CSV input. Zero means sniff it from the header line.
	Delimiter rune
}

// Open picks a Source by file extension: .parquet files are read as Parquet,
// everything else as delimited text.
func Open(path string, opts Options, log zerolog.Logger) Source {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return &ParquetSource{Path: path, log: log}
	}
	return &CSVSource{Path: path, Delimiter: opts.Delimiter, log: log}
}
