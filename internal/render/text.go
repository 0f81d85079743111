package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gyeh/salesreport/internal/model"
)

// NoSalesMessage is the text rendering of an empty aggregate.
const NoSalesMessage = "Nenhum dado de vendas disponível para exibição."

const (
	productHeader = "Produto"
	totalHeader   = "Total (R$)"
	// headerPadding is the minimum gap between a header and its column edge.
	headerPadding = 2
)

// Text renders a two-column product/revenue table followed by the grand total
// and, when there is one, the best seller.
type Text struct{}

func (Text) Render(s model.SalesSummary) (string, error) {
	if s.IsEmpty() {
		return NoSalesMessage, nil
	}

	products := orderedProducts(s)
	totals := make([]string, len(products))
	nameWidth := utf8.RuneCountInString(productHeader) + headerPadding
	totalWidth := utf8.RuneCountInString(totalHeader) + headerPadding
	for i, p := range products {
		totals[i] = fmt.Sprintf("%.2f", s.RevenueByProduct[p])
		nameWidth = max(nameWidth, utf8.RuneCountInString(p))
		totalWidth = max(totalWidth, len(totals[i]))
	}

	var b strings.Builder
	b.WriteString("Total de vendas por produto:\n")
	fmt.Fprintf(&b, "%-*s  %*s\n", nameWidth, productHeader, totalWidth, totalHeader)
	fmt.Fprintf(&b, "%s  %s\n", strings.Repeat("-", nameWidth), strings.Repeat("-", totalWidth))
	for i, p := range products {
		fmt.Fprintf(&b, "%-*s  %*s\n", nameWidth, p, totalWidth, totals[i])
	}
	fmt.Fprintf(&b, "\nValor total de todas as vendas: R$ %.2f", s.TotalRevenue)
	if s.BestSeller.Name != "" {
		fmt.Fprintf(&b, "\nProduto mais vendido: %s (%d unidades)", s.BestSeller.Name, s.BestSeller.Quantity)
	}
	return b.String(), nil
}

// orderedProducts returns products in first-seen order, appending any that
// exist only in the revenue map.
func orderedProducts(s model.SalesSummary) []string {
	out := make([]string, 0, len(s.RevenueByProduct))
	seen := make(map[string]bool, len(s.RevenueByProduct))
	for _, p := range s.Products {
		if _, ok := s.RevenueByProduct[p]; ok && !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}
	var rest []string
	for p := range s.RevenueByProduct {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
