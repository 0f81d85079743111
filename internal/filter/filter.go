// Package filter holds the ordered filter chain applied to validated records.
package filter

import (
	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
)

// Filter transforms a record slice. Implementations must not modify their input.
type Filter interface {
	Name() string
	Apply(records []model.Record) []model.Record
}

// DateColumnFilter is a Filter that reads the sale-date column. It is applied
// only when the schema has a date column, rebound to that column first.
type DateColumnFilter interface {
	Filter
	WithDateColumn(column string) Filter
}

// Resolution is the outcome of matching a chain against a schema.
type Resolution struct {
	Applicable []Filter
	Skipped    []Filter
}

// Resolve keeps chain order, dropping date filters when the schema has no date
// column and rebinding the rest to the detected column.
func Resolve(filters []Filter, schema model.SchemaInfo, log zerolog.Logger) Resolution {
	var res Resolution
	for _, f := range filters {
		df, ok := f.(DateColumnFilter)
		if !ok {
			res.Applicable = append(res.Applicable, f)
			continue
		}
		if !schema.HasDateColumn {
			log.Info().Str("filter", f.Name()).Msg("date filter skipped: data has no date column")
			res.Skipped = append(res.Skipped, f)
			continue
		}
		res.Applicable = append(res.Applicable, df.WithDateColumn(schema.DateColumn))
	}
	return res
}

// Chain pipes records through filters in order.
func Chain(records []model.Record, filters []Filter, log zerolog.Logger) []model.Record {
	for _, f := range filters {
		log.Info().Str("filter", f.Name()).Int("rows_in", len(records)).Msg("applying filter")
		records = f.Apply(records)
	}
	return records
}

// Names returns the names of filters, in order.
func Names(filters []Filter) []string {
	names := make([]string, len(filters))
	for i, f := range filters {
		names[i] = f.Name()
	}
	return names
}
