// Package schema decides whether a batch of records is sales data and which
// column, if any, carries the sale date.
package schema

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
)

// Detector inspects record batches. The zero value uses model.DefaultDateColumns.
type Detector struct {
	// DateColumns is the date-column priority list, checked in order.
	DateColumns []string
}

// Detect runs a default Detector over records.
func Detect(records []model.Record, log zerolog.Logger) model.SchemaInfo {
	return Detector{}.Detect(records, log)
}

// Detect derives the SchemaInfo of records from the first record's columns.
// Rows are assumed to share one header; homogeneity is not checked.
func (d Detector) Detect(records []model.Record, log zerolog.Logger) model.SchemaInfo {
	if len(records) == 0 {
		log.Warn().Msg("no records supplied for schema detection")
		return model.SchemaInfo{AvailableColumns: []string{}}
	}

	available := records[0].Columns()
	log.Info().Strs("columns", available).Msg("columns detected")

	info := model.SchemaInfo{AvailableColumns: available}

	missing := info.MissingRequired()
	if len(missing) > 0 {
		log.Warn().Strs("missing", missing).Msg("required sales columns missing")
	}
	info.IsValidSalesData = len(missing) == 0

	for _, col := range model.RequiredColumns {
		if info.HasColumn(col) {
			info.RequiredColumns = append(info.RequiredColumns, col)
		}
	}

	info.DateColumn = d.detectDateColumn(available, log)
	info.HasDateColumn = info.DateColumn != ""
	if info.HasDateColumn {
		info.RequiredColumns = append(info.RequiredColumns, info.DateColumn)
	}

	log.Debug().
		Bool("valid", info.IsValidSalesData).
		Str("date_column", info.DateColumn).
		Strs("required", info.RequiredColumns).
		Msg("schema detected")
	return info
}

// detectDateColumn checks the priority list first, then falls back to the
// first column, in header order, whose name contains "data" or "date".
func (d Detector) detectDateColumn(columns []string, log zerolog.Logger) string {
	candidates := d.DateColumns
	if len(candidates) == 0 {
		candidates = model.DefaultDateColumns
	}
	for _, candidate := range candidates {
		if slices.Contains(columns, candidate) {
			log.Info().Str("column", candidate).Msg("date column detected")
			return candidate
		}
	}

	var matches []string
	for _, col := range columns {
		if normalize.LooksLikeDateColumn(col) {
			matches = append(matches, col)
		}
	}
	switch len(matches) {
	case 0:
		log.Info().Msg("no date column detected")
		return ""
	case 1:
		log.Info().Str("column", matches[0]).Msg("possible date column detected")
	default:
		log.Warn().
			Strs("candidates", matches).
			Str("column", matches[0]).
			Msg("several date-like columns, using the first in header order")
	}
	return matches[0]
}
