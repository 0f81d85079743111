package model

import "slices"

// Column names of the sales file.
const (
	ColProduct   = "produto"
	ColQuantity  = "quantidade"
	ColUnitPrice = "preco_unitario"
	ColSaleDate  = "data_venda"
)

// RequiredColumns lists the columns every sales file must carry, in canonical order.
var RequiredColumns = []string{ColProduct, ColQuantity, ColUnitPrice}

// DefaultDateColumns is the priority list used to find the sale-date column.
var DefaultDateColumns = []string{
	"data_venda",
	"data",
	"date",
	"data_pedido",
	"data_compra",
	"timestamp",
	"created_at",
}

// Record is one input row keyed by column name. Values stay text until a
// stage needs a typed value. A Record is never mutated after construction.
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord pairs header names with row fields. Fields beyond the header are
// dropped; header columns without a field are absent from the record.
// A repeated header name keeps its first position and its last value.
func NewRecord(header, fields []string) Record {
	r := Record{
		columns: make([]string, 0, len(header)),
		values:  make(map[string]string, len(header)),
	}
	for i, name := range header {
		if i >= len(fields) {
			break
		}
		if _, dup := r.values[name]; !dup {
			r.columns = append(r.columns, name)
		}
		r.values[name] = fields[i]
	}
	return r
}

// RecordOf builds a Record from alternating column/value pairs.
// It panics on an odd number of arguments.
func RecordOf(pairs ...string) Record {
	if len(pairs)%2 != 0 {
		panic("model.RecordOf: odd number of arguments")
	}
	header := make([]string, 0, len(pairs)/2)
	fields := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		header = append(header, pairs[i])
		fields = append(fields, pairs[i+1])
	}
	return NewRecord(header, fields)
}

// Get returns the raw value of column and whether the column is present.
func (r Record) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Value returns the raw value of column, or "" when absent.
func (r Record) Value(column string) string {
	return r.values[column]
}

// Has reports whether column is present in the record.
func (r Record) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// Columns returns the record's column names in header order.
func (r Record) Columns() []string {
	return slices.Clone(r.columns)
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.columns)
}
