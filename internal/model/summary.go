package model

import "time"

// BestSeller names the product with the highest accumulated quantity.
// An empty Name with zero Quantity means there were no sales.
type BestSeller struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
}

// SalesSummary is the aggregate produced from validated, filtered records.
// It is the only value handed to the renderers.
type SalesSummary struct {
	RevenueByProduct map[string]float64 `json:"vendas_por_produto"`
	TotalRevenue     float64            `json:"total_vendas"`
	BestSeller       BestSeller         `json:"produto_mais_vendido"`

	// Products lists product names in first-seen order.
	Products []string `json:"-"`
	// QuantityByProduct holds the summed quantity per product.
	QuantityByProduct map[string]int `json:"-"`
}

// EmptySummary returns the canonical "no sales" aggregate.
func EmptySummary() SalesSummary {
	return SalesSummary{
		RevenueByProduct:  map[string]float64{},
		QuantityByProduct: map[string]int{},
	}
}

// IsEmpty reports whether the summary holds no products.
func (s SalesSummary) IsEmpty() bool {
	return len(s.RevenueByProduct) == 0
}

// RunSummary captures metrics from a single report run.
type RunSummary struct {
	RunID            string
	FilePath         string
	DateColumn       string
	RowsRead         int
	RowsValid        int
	RowsRejected     int
	RowsAfterFilter  int
	FiltersApplied   []string
	FiltersSkipped   []string
	Products         int
	DurationRead     time.Duration
	DurationValidate time.Duration
	DurationFilter   time.Duration
	DurationTotal    time.Duration
}
