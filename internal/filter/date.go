package filter

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
)

// DateFilter keeps records whose date lies within [Start, End]. Either bound
// may be nil. Rows with a blank date are kept; rows whose date does not parse
// are dropped.
type DateFilter struct {
	Start  *time.Time
	End    *time.Time
	Column string
	log    zerolog.Logger
}

// NewDateFilter returns a DateFilter reading model.ColSaleDate.
func NewDateFilter(start, end *time.Time, log zerolog.Logger) *DateFilter {
	return &DateFilter{Start: start, End: end, Column: model.ColSaleDate, log: log}
}

func (f *DateFilter) Name() string { return "DateFilter" }

// WithDateColumn returns a copy of f reading column.
func (f *DateFilter) WithDateColumn(column string) Filter {
	c := *f
	c.Column = column
	return &c
}

// Apply filters records by date. Without bounds it is the identity.
func (f *DateFilter) Apply(records []model.Record) []model.Record {
	if f.Start == nil && f.End == nil {
		return records
	}
	if len(records) == 0 || !records[0].Has(f.Column) {
		f.log.Warn().Str("column", f.Column).Msg("date column not found in data, date filter ignored")
		return records
	}

	kept := make([]model.Record, 0, len(records))
	for _, rec := range records {
		raw := strings.TrimSpace(rec.Value(f.Column))
		if raw == "" {
			f.log.Debug().Msg("row without date kept")
			kept = append(kept, rec)
			continue
		}
		d := normalize.ParseDate(raw)
		if d == nil {
			f.log.Warn().Str("date", raw).Msg("row dropped: date in invalid format")
			continue
		}
		if f.inRange(*d) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func (f *DateFilter) inRange(d time.Time) bool {
	if f.Start != nil && d.Before(*f.Start) {
		return false
	}
	if f.End != nil && d.After(*f.End) {
		return false
	}
	return true
}

var _ DateColumnFilter = (*DateFilter)(nil)
