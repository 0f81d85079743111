// Package validate checks sales records row by row, separating valid rows
// from per-row diagnostics. A bad row never aborts validation.
package validate

import (
	"fmt"
	"strings"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
)

// RowError is one failed check on one row. Row is 1-based over data rows.
type RowError struct {
	Row    int
	Column string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Linha %d: %s", e.Row, e.Reason)
}

// Validator checks records against a detected schema.
type Validator struct {
	required   []string
	dateColumn string
}

// New builds a Validator from the schema detected for the current batch.
func New(schema model.SchemaInfo) *Validator {
	v := &Validator{required: schema.RequiredColumns}
	if schema.HasDateColumn {
		v.dateColumn = schema.DateColumn
	}
	return v
}

// Validate returns the rows that passed every check, in input order, and one
// message per failed check, in row order.
func (v *Validator) Validate(records []model.Record) ([]model.Record, []string) {
	valid, rowErrs := v.ValidateRows(records)
	msgs := make([]string, len(rowErrs))
	for i, e := range rowErrs {
		msgs[i] = e.Error()
	}
	return valid, msgs
}

// ValidateRows is Validate with structured errors.
func (v *Validator) ValidateRows(records []model.Record) ([]model.Record, []RowError) {
	valid := make([]model.Record, 0, len(records))
	var errs []RowError
	for i, rec := range records {
		rowErrs := v.checkRow(rec, i+1)
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, errs
}

func (v *Validator) checkRow(rec model.Record, row int) []RowError {
	var errs []RowError

	for _, col := range v.required {
		if val, ok := rec.Get(col); !ok || strings.TrimSpace(val) == "" {
			errs = append(errs, RowError{
				Row:    row,
				Column: col,
				Reason: fmt.Sprintf("Coluna %q está faltando ou vazia", col),
			})
		}
	}

	var qty int
	var price float64
	qtyOK, priceOK := false, false

	if raw, ok := present(rec, model.ColQuantity); ok {
		q, err := normalize.ParseQuantity(raw)
		switch {
		case err != nil:
			errs = append(errs, RowError{Row: row, Column: model.ColQuantity, Reason: "Quantidade deve ser um número inteiro"})
		case q <= 0:
			errs = append(errs, RowError{Row: row, Column: model.ColQuantity, Reason: "Quantidade deve ser maior que zero"})
		default:
			qty, qtyOK = q, true
		}
	}

	if raw, ok := present(rec, model.ColUnitPrice); ok {
		p, err := normalize.ParsePrice(raw)
		switch {
		case err != nil:
			errs = append(errs, RowError{Row: row, Column: model.ColUnitPrice, Reason: "Preço deve ser um número válido"})
		case p <= 0:
			errs = append(errs, RowError{Row: row, Column: model.ColUnitPrice, Reason: "Preço deve ser maior que zero"})
		default:
			price, priceOK = p, true
		}
	}

	if qtyOK && priceOK {
		if _, err := normalize.Revenue(qty, price); err != nil {
			errs = append(errs, RowError{Row: row, Column: model.ColUnitPrice, Reason: "Valor da venda excede o limite numérico"})
		}
	}

	// Blank dates are accepted.
	if v.dateColumn != "" {
		if raw, ok := present(rec, v.dateColumn); ok && !normalize.IsDate(raw) {
			errs = append(errs, RowError{
				Row:    row,
				Column: v.dateColumn,
				Reason: fmt.Sprintf("Data %q em formato inválido. Esperado YYYY-MM-DD", strings.TrimSpace(raw)),
			})
		}
	}

	return errs
}

// present returns the value of column when it exists and is not blank.
func present(rec model.Record, column string) (string, bool) {
	val, ok := rec.Get(column)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return val, true
}
