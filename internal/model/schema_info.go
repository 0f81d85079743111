package model

import "slices"

// SchemaInfo describes which columns a batch of records carries.
// It is derived once per run from the first record and never mutated.
type SchemaInfo struct {
	// AvailableColumns holds the column names in header order.
	AvailableColumns []string
	// RequiredColumns is RequiredColumns ∩ AvailableColumns, plus the date
	// column when one was detected.
	RequiredColumns []string
	// IsValidSalesData is true iff all of RequiredColumns are available.
	IsValidSalesData bool
	// DateColumn is the detected sale-date column, or "" when none.
	DateColumn    string
	HasDateColumn bool
}

// HasColumn reports whether name is among the available columns.
func (s SchemaInfo) HasColumn(name string) bool {
	return slices.Contains(s.AvailableColumns, name)
}

// MissingRequired returns the mandatory sales columns absent from the schema.
func (s SchemaInfo) MissingRequired() []string {
	var missing []string
	for _, col := range RequiredColumns {
		if !s.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
