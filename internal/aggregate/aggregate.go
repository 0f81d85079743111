// Package aggregate folds sales records into per-product totals.
package aggregate

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
)

// Aggregate sums revenue and quantity per product and picks the best seller.
// Rows that are missing a field, fail to parse or would overflow the totals
// are logged and skipped.
// With no usable rows it returns model.EmptySummary().
func Aggregate(records []model.Record, log zerolog.Logger) model.SalesSummary {
	if len(records) == 0 {
		log.Warn().Msg("no records supplied for aggregation")
		return model.EmptySummary()
	}

	s := model.EmptySummary()
	for i, rec := range records {
		product, qty, price, ok := parseRow(rec, i+1, log)
		if !ok {
			continue
		}
		revenue, err := normalize.Revenue(qty, price)
		if err == nil && (!finite(s.TotalRevenue+revenue) || !finite(s.RevenueByProduct[product]+revenue)) {
			err = normalize.ErrNotFinite
		}
		if err != nil {
			log.Error().Err(err).Int("row", i+1).Msg("error processing row: revenue")
			continue
		}
		if _, seen := s.QuantityByProduct[product]; !seen {
			s.Products = append(s.Products, product)
		}
		s.RevenueByProduct[product] += revenue
		s.QuantityByProduct[product] += qty
		s.TotalRevenue += revenue
	}

	if len(s.Products) == 0 {
		log.Warn().Msg("no valid sales left after aggregation")
		return model.EmptySummary()
	}

	s.BestSeller = bestSeller(s.Products, s.QuantityByProduct)
	return s
}

// bestSeller returns the product with the highest quantity; the first product
// in order wins a tie.
func bestSeller(order []string, qty map[string]int) model.BestSeller {
	var best model.BestSeller
	for i, name := range order {
		if i == 0 || qty[name] > best.Quantity {
			best = model.BestSeller{Name: name, Quantity: qty[name]}
		}
	}
	return best
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func parseRow(rec model.Record, row int, log zerolog.Logger) (string, int, float64, bool) {
	product, ok := rec.Get(model.ColProduct)
	if !ok {
		log.Error().Int("row", row).Str("column", model.ColProduct).Msg("error processing row: missing column")
		return "", 0, 0, false
	}
	rawQty, ok := rec.Get(model.ColQuantity)
	if !ok {
		log.Error().Int("row", row).Str("column", model.ColQuantity).Msg("error processing row: missing column")
		return "", 0, 0, false
	}
	rawPrice, ok := rec.Get(model.ColUnitPrice)
	if !ok {
		log.Error().Int("row", row).Str("column", model.ColUnitPrice).Msg("error processing row: missing column")
		return "", 0, 0, false
	}

	qty, err := normalize.ParseQuantity(rawQty)
	if err != nil {
		log.Error().Err(err).Int("row", row).Msg("error processing row: quantity")
		return "", 0, 0, false
	}
	price, err := normalize.ParsePrice(rawPrice)
	if err != nil {
		log.Error().Err(err).Int("row", row).Msg("error processing row: unit price")
		return "", 0, 0, false
	}
	return product, qty, price, true
}
