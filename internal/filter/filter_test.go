package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/normalize"
)

func day(s string) *time.Time { return normalize.ParseDate(s) }

func dated(product, date string) model.Record {
	return model.RecordOf("produto", product, "quantidade", "1", "preco_unitario", "1", "data_venda", date)
}

func products(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Value("produto")
	}
	return out
}

func TestDateFilter_InclusiveRange(t *testing.T) {
	records := []model.Record{dated("A", "2025-06-01"), dated("B", "2025-06-05"), dated("C", "2025-06-03")}
	f := NewDateFilter(day("2025-06-01"), day("2025-06-03"), zerolog.Nop())

	assert.Equal(t, []string{"A", "C"}, products(f.Apply(records)))
}

func TestDateFilter_OpenBounds(t *testing.T) {
	records := []model.Record{dated("A", "2025-05-31"), dated("B", "2025-06-01"), dated("C", "2025-07-01")}

	onlyStart := NewDateFilter(day("2025-06-01"), nil, zerolog.Nop())
	assert.Equal(t, []string{"B", "C"}, products(onlyStart.Apply(records)))

	onlyEnd := NewDateFilter(nil, day("2025-06-01"), zerolog.Nop())
	assert.Equal(t, []string{"A", "B"}, products(onlyEnd.Apply(records)))
}

func TestDateFilter_IdentityWithoutBounds(t *testing.T) {
	records := []model.Record{dated("A", "garbage"), dated("B", ""), model.RecordOf("produto", "C")}
	f := NewDateFilter(nil, nil, zerolog.Nop())
	assert.Equal(t, records, f.Apply(records))
}

func TestDateFilter_BlankKeptMalformedDropped(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)
	records := []model.Record{dated("A", " "), dated("B", "06/02/2025"), dated("C", "2025-06-02")}
	f := NewDateFilter(day("2025-06-01"), day("2025-06-30"), log)

	assert.Equal(t, []string{"A", "C"}, products(f.Apply(records)))
	assert.Contains(t, buf.String(), "06/02/2025")
}

func TestDateFilter_MissingColumnIsNoop(t *testing.T) {
	records := []model.Record{model.RecordOf("produto", "A", "quantidade", "1", "preco_unitario", "1")}
	f := NewDateFilter(day("2025-06-01"), nil, zerolog.Nop())
	assert.Equal(t, records, f.Apply(records))
}

func TestDateFilter_Idempotent(t *testing.T) {
	records := []model.Record{
		dated("A", "2025-06-01"), dated("B", "bad"), dated("C", ""), dated("D", "2025-08-01"), dated("E", "2025-06-15"),
	}
	f := NewDateFilter(day("2025-06-01"), day("2025-06-30"), zerolog.Nop())
	once := f.Apply(records)
	assert.Equal(t, once, f.Apply(once))
}

func TestDateFilter_WithDateColumnReturnsCopy(t *testing.T) {
	f := NewDateFilter(day("2025-06-01"), nil, zerolog.Nop())
	rebound := f.WithDateColumn("created_at")

	assert.Equal(t, "data_venda", f.Column)
	require.IsType(t, &DateFilter{}, rebound)
	assert.Equal(t, "created_at", rebound.(*DateFilter).Column)
}

type upperFilter struct{}

func (upperFilter) Name() string { return "upper" }
func (upperFilter) Apply(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	for i, r := range records {
		out[i] = model.RecordOf("produto", strings.ToUpper(r.Value("produto")), "data_venda", r.Value("data_venda"))
	}
	return out
}

func TestResolve(t *testing.T) {
	date := NewDateFilter(day("2025-06-01"), nil, zerolog.Nop())
	chain := []Filter{upperFilter{}, date}

	withDate := model.SchemaInfo{HasDateColumn: true, DateColumn: "data"}
	res := Resolve(chain, withDate, zerolog.Nop())
	require.Len(t, res.Applicable, 2)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, "upper", res.Applicable[0].Name())
	assert.Equal(t, "data", res.Applicable[1].(*DateFilter).Column)

	res = Resolve(chain, model.SchemaInfo{}, zerolog.Nop())
	assert.Equal(t, []string{"upper"}, Names(res.Applicable))
	assert.Equal(t, []string{"DateFilter"}, Names(res.Skipped))
}

func TestChain_AppliesInOrder(t *testing.T) {
	records := []model.Record{dated("a", "2025-05-01"), dated("b", "2025-06-10")}
	chain := []Filter{upperFilter{}, NewDateFilter(day("2025-06-01"), nil, zerolog.Nop())}

	assert.Equal(t, []string{"B"}, products(Chain(records, chain, zerolog.Nop())))
	assert.Equal(t, records, Chain(records, nil, zerolog.Nop()))
}
