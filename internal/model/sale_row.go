package model

// ParquetSaleRow mirrors the Parquet layout written by mkfixture. Every column
// is text so that a round trip through Parquet yields the same Records as the
// source CSV.
type ParquetSaleRow struct {
	Produto       string  `parquet:"produto"`
	Quantidade    string  `parquet:"quantidade"`
	PrecoUnitario string  `parquet:"preco_unitario"`
	DataVenda     *string `parquet:"data_venda,optional"`
}

// ParquetSaleRowFromRecord converts a Record into its Parquet form.
// A record without a sale-date column yields a null DataVenda.
func ParquetSaleRowFromRecord(r Record) ParquetSaleRow {
	row := ParquetSaleRow{
		Produto:       r.Value(ColProduct),
		Quantidade:    r.Value(ColQuantity),
		PrecoUnitario: r.Value(ColUnitPrice),
	}
	if v, ok := r.Get(ColSaleDate); ok {
		row.DataVenda = &v
	}
	return row
}
