// mkfixture converts a sales CSV into a Parquet fixture with text columns.
// Usage: go run ./cmd/mkfixture --in testdata/vendas.csv --out testdata/vendas.parquet
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/reader"
)

func main() {
	in := flag.String("in", "testdata/vendas.csv", "input csv")
	out := flag.String("out", "testdata/vendas.parquet", "output parquet")
	maxRows := flag.Int("rows", 0, "max rows to output (0 = all)")
	checkOnly := flag.Bool("check", false, "only print stats of --out, don't write")
	flag.Parse()

	ctx := context.Background()
	log := zerolog.Nop()

	if *checkOnly {
		records, err := reader.NewParquetSource(*out, log).Read(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read parquet: %v\n", err)
			os.Exit(1)
		}
		printStats(*out, records)
		return
	}

	records, err := reader.NewCSVSource(*in, 0, log).Read(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read csv: %v\n", err)
		os.Exit(1)
	}
	if *maxRows > 0 && len(records) > *maxRows {
		records = records[:*maxRows]
	}

	rows := make([]model.ParquetSaleRow, len(records))
	for i, rec := range records {
		rows[i] = model.ParquetSaleRowFromRecord(rec)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.ParquetSaleRow](outFile)
	if _, err := writer.Write(rows); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
	printStats(*out, records)
}

func printStats(path string, records []model.Record) {
	products := make(map[string]int)
	dated := 0
	for _, rec := range records {
		products[rec.Value(model.ColProduct)]++
		if rec.Value(model.ColSaleDate) != "" {
			dated++
		}
	}
	fmt.Printf("File:     %s\n", path)
	fmt.Printf("Rows:     %d\n", len(records))
	fmt.Printf("Products: %d\n", len(products))
	fmt.Printf("Dated:    %d\n", dated)
}
