package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/salesreport/internal/model"
)

var salesSchema = model.SchemaInfo{
	AvailableColumns: []string{"produto", "quantidade", "preco_unitario"},
	RequiredColumns:  []string{"produto", "quantidade", "preco_unitario"},
	IsValidSalesData: true,
}

var datedSchema = model.SchemaInfo{
	AvailableColumns: []string{"produto", "quantidade", "preco_unitario", "data_venda"},
	RequiredColumns:  []string{"produto", "quantidade", "preco_unitario", "data_venda"},
	IsValidSalesData: true,
	DateColumn:       "data_venda",
	HasDateColumn:    true,
}

func sale(produto, quantidade, preco string) model.Record {
	return model.RecordOf("produto", produto, "quantidade", quantidade, "preco_unitario", preco)
}

func datedSale(produto, quantidade, preco, data string) model.Record {
	return model.RecordOf("produto", produto, "quantidade", quantidade, "preco_unitario", preco, "data_venda", data)
}

func TestValidate_AllValid(t *testing.T) {
	records := []model.Record{sale("Camiseta", "3", "49.9"), sale("Calça", "2", "99.9")}
	valid, errs := New(salesSchema).Validate(records)

	assert.Equal(t, records, valid)
	assert.Empty(t, errs)
}

func TestValidate_RowChecks(t *testing.T) {
	tests := []struct {
		name   string
		rec    model.Record
		schema model.SchemaInfo
		want   []string
	}{
		{"zero quantity", sale("Camiseta", "0", "49.9"), salesSchema,
			[]string{"Linha 1: Quantidade deve ser maior que zero"}},
		{"negative quantity", sale("Camiseta", "-2", "49.9"), salesSchema,
			[]string{"Linha 1: Quantidade deve ser maior que zero"}},
		{"fractional quantity", sale("Camiseta", "1.5", "49.9"), salesSchema,
			[]string{"Linha 1: Quantidade deve ser um número inteiro"}},
		{"non-numeric price", sale("Camiseta", "1", "abc"), salesSchema,
			[]string{"Linha 1: Preço deve ser um número válido"}},
		{"NaN price", sale("Camiseta", "1", "NaN"), salesSchema,
			[]string{"Linha 1: Preço deve ser um número válido"}},
		{"zero price", sale("Camiseta", "1", "0"), salesSchema,
			[]string{"Linha 1: Preço deve ser maior que zero"}},
		{"hex price", sale("Camiseta", "1", "0x1p-2"), salesSchema,
			[]string{"Linha 1: Preço deve ser um número válido"}},
		{"revenue overflows", sale("Camiseta", "10", "1e308"), salesSchema,
			[]string{"Linha 1: Valor da venda excede o limite numérico"}},
		{"blank product", sale("  ", "1", "10"), salesSchema,
			[]string{`Linha 1: Coluna "produto" está faltando ou vazia`}},
		{"missing price column", model.RecordOf("produto", "Meia", "quantidade", "1"), salesSchema,
			[]string{`Linha 1: Coluna "preco_unitario" está faltando ou vazia`}},
		{"bad date", datedSale("Meia", "1", "10", "01/06/2025"), datedSchema,
			[]string{`Linha 1: Data "01/06/2025" em formato inválido. Esperado YYYY-MM-DD`}},
		{"several failures on one row", sale("", "x", "-1"), salesSchema,
			[]string{
				`Linha 1: Coluna "produto" está faltando ou vazia`,
				"Linha 1: Quantidade deve ser um número inteiro",
				"Linha 1: Preço deve ser maior que zero",
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := New(tt.schema).Validate([]model.Record{tt.rec})
			assert.Empty(t, valid)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidate_BlankDateRequiredByDetectedSchema(t *testing.T) {
	// The detected date column is part of the required set, so a blank date
	// fails the presence check even though the format check accepts blanks.
	valid, errs := New(datedSchema).Validate([]model.Record{datedSale("Meia", "1", "10", " ")})
	assert.Empty(t, valid)
	assert.Equal(t, []string{`Linha 1: Coluna "data_venda" está faltando ou vazia`}, errs)
}

func TestValidate_BlankDateAcceptedWhenNotRequired(t *testing.T) {
	schema := datedSchema
	schema.RequiredColumns = model.RequiredColumns
	valid, errs := New(schema).Validate([]model.Record{datedSale("Meia", "1", "10", "")})
	assert.Len(t, valid, 1)
	assert.Empty(t, errs)
}

func TestValidate_PartialFailureKeepsOrder(t *testing.T) {
	records := []model.Record{
		sale("A", "1", "10"),
		sale("B", "0", "10"),
		sale("C", "2", "abc"),
		sale("D", "3", "5"),
	}
	valid, errs := New(salesSchema).Validate(records)

	require.Len(t, valid, 2)
	assert.Equal(t, "A", valid[0].Value("produto"))
	assert.Equal(t, "D", valid[1].Value("produto"))
	assert.Equal(t, []string{
		"Linha 2: Quantidade deve ser maior que zero",
		"Linha 3: Preço deve ser um número válido",
	}, errs)
}

func TestValidateRows_Structured(t *testing.T) {
	_, errs := New(salesSchema).ValidateRows([]model.Record{sale("A", "1", "10"), sale("B", "0", "10")})
	require.Len(t, errs, 1)
	assert.Equal(t, RowError{Row: 2, Column: "quantidade", Reason: "Quantidade deve ser maior que zero"}, errs[0])
}
