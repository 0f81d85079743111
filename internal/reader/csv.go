package reader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"github.com/gyeh/salesreport/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidateDelimiters are tried, in order, when sniffing the header line.
var candidateDelimiters = []rune{',', ';', '\t'}

// CSVSource reads a delimited file with a header row.
type CSVSource struct {
	Path      string
	Delimiter rune
	log       zerolog.Logger
}

// NewCSVSource creates a CSVSource. A zero delimiter is sniffed from the header.
func NewCSVSource(path string, delimiter rune, log zerolog.Logger) *CSVSource {
	return &CSVSource{Path: path, Delimiter: delimiter, log: log}
}

// Read decodes the file as UTF-8, retrying once as Windows-1252 when the bytes
// are not valid UTF-8, and returns one Record per data row.
func (s *CSVSource) Read(ctx context.Context) ([]model.Record, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", s.Path)
		}
		return nil, fmt.Errorf("read csv: %w", err)
	}

	data, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		s.log.Debug().Str("file", s.Path).Msg("input is not UTF-8, decoded as cp1252")
	} else {
		s.log.Debug().Str("file", s.Path).Msg("reading csv")
	}

	delim := s.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(data)
	}
	return parseCSV(ctx, bytes.NewReader(data), delim)
}

// decode returns the file content as UTF-8 with any BOM removed.
func decode(raw []byte) ([]byte, error) {
	data := raw
	if !utf8.Valid(raw) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("read csv with cp1252 fallback: %w", err)
		}
		data = decoded
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// sniffDelimiter picks the candidate that occurs most often on the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := candidateDelimiters[0], 0
	for _, d := range candidateDelimiters {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func parseCSV(ctx context.Context, r io.Reader, delim rune) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []model.Record
	for {
		if len(records)%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read csv: %w", err)
			}
		}
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv at row %d: %w", len(records)+1, err)
		}
		records = append(records, model.NewRecord(header, fields))
	}
	return records, nil
}
