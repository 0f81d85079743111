package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gyeh/salesreport/internal/model"
)

// JSON renders the aggregate as indented JSON with sorted keys.
type JSON struct{}

func (JSON) Render(s model.SalesSummary) (string, error) {
	if s.RevenueByProduct == nil {
		s.RevenueByProduct = map[string]float64{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
