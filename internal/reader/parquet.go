package reader

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
)

const readBatchSize = 256

// ParquetSource reads a flat Parquet file, rendering every value as text.
type ParquetSource struct {
	Path string
	log  zerolog.Logger
}

// NewParquetSource creates a ParquetSource.
func NewParquetSource(path string, log zerolog.Logger) *ParquetSource {
	return &ParquetSource{Path: path, log: log}
}

// Read returns one Record per Parquet row. Column names are the dotted leaf
// paths of the file schema; null values become blank strings.
func (s *ParquetSource) Read(ctx context.Context) ([]model.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewReader(pf)
	defer r.Close()

	var header []string
	for _, path := range r.Schema().Columns() {
		header = append(header, strings.Join(path, "."))
	}
	s.log.Debug().
		Str("file", s.Path).
		Int64("rows", r.NumRows()).
		Strs("columns", header).
		Msg("reading parquet")

	records := make([]model.Record, 0, r.NumRows())
	buf := make([]parquet.Row, readBatchSize)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("read parquet: %w", err)
		}
		n, readErr := r.ReadRows(buf)
		for i := 0; i < n; i++ {
			fields := make([]string, len(header))
			for _, v := range buf[i] {
				if c := v.Column(); c >= 0 && c < len(fields) {
					fields[c] = valueText(v)
				}
			}
			records = append(records, model.NewRecord(header, fields))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read parquet rows at row %d: %w", len(records), readErr)
		}
	}
	return records, nil
}

func valueText(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return fmt.Sprint(v)
	}
}
