// Package report runs the sales pipeline: read → detect schema → validate →
// filter → aggregate → render. Each stage may end the run early with a
// terminal message; no stage is retried.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/salesreport/internal/aggregate"
	"github.com/gyeh/salesreport/internal/exitcode"
	"github.com/gyeh/salesreport/internal/filter"
	"github.com/gyeh/salesreport/internal/model"
	"github.com/gyeh/salesreport/internal/reader"
	"github.com/gyeh/salesreport/internal/render"
	"github.com/gyeh/salesreport/internal/schema"
	"github.com/gyeh/salesreport/internal/validate"
)

// Terminal messages returned as Result.Output when a run stops early.
const (
	MsgNoData           = "Erro: Nenhum dado disponível para processar."
	MsgInvalidSchema    = "Erro: Dados não possuem as colunas mínimas necessárias (produto, quantidade, preco_unitario)."
	MsgNoValidRows      = "Erro: Nenhum dado válido encontrado após validação."
	MsgEmptyAfterFilter = "Nenhum dado encontrado após aplicação dos filtros."
)

// Status is the state a run finished in.
type Status int

const (
	StatusOK Status = iota
	StatusNoData
	StatusInvalidSchema
	StatusNoValidRows
	StatusEmptyAfterFilter
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no_data"
	case StatusInvalidSchema:
		return "invalid_schema"
	case StatusNoValidRows:
		return "no_valid_rows"
	case StatusEmptyAfterFilter:
		return "empty_after_filter"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ExitCode maps a status to the process exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK:
		return exitcode.Success
	case StatusNoData:
		return exitcode.NoData
	case StatusInvalidSchema:
		return exitcode.InvalidSchema
	case StatusNoValidRows:
		return exitcode.NoValidRows
	case StatusEmptyAfterFilter:
		return exitcode.EmptyAfterFilter
	default:
		return exitcode.RenderError
	}
}

// StageError wraps an error with the stage where it occurred.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Options configures one run.
type Options struct {
	// SkipValidation bypasses the validation stage.
	SkipValidation bool
	// Filters are applied in order after validation.
	Filters []filter.Filter
	// Renderer formats the final aggregate. Nil means text.
	Renderer render.Renderer
	// Detector finds the schema; the zero value uses the default date columns.
	Detector schema.Detector
	// FilePath is only used for logging and the run summary.
	FilePath string
}

// Result is the outcome of a run. Output is either the rendered report or the
// terminal message for Status.
type Result struct {
	Status  Status
	Output  string
	Summary model.RunSummary
}

// Run executes the pipeline over the records produced by src. Read failures
// become StatusNoData. A non-nil error is only returned when rendering fails.
func Run(ctx context.Context, log zerolog.Logger, src reader.Source, opts Options) (*Result, error) {
	totalStart := time.Now()
	sum := model.RunSummary{RunID: uuid.NewString(), FilePath: opts.FilePath}
	log = log.With().Str("run_id", sum.RunID).Logger()

	finish := func(status Status, output string) *Result {
		sum.DurationTotal = time.Since(totalStart)
		logSummary(log, status, sum)
		return &Result{Status: status, Output: output, Summary: sum}
	}

	// Stage 1: Read
	log.Debug().Str("file", opts.FilePath).Msg("reading data")
	start := time.Now()
	records, err := src.Read(ctx)
	sum.DurationRead = time.Since(start)
	if err != nil {
		log.Error().Err(err).Msg("failed to read data")
		records = nil
	}
	sum.RowsRead = len(records)
	if len(records) == 0 {
		log.Error().Msg("no data was read")
		return finish(StatusNoData, MsgNoData), nil
	}
	log.Debug().Int("rows", len(records)).Msg("records read")

	// Stage 2: Detect schema
	info := opts.Detector.Detect(records, log)
	sum.DateColumn = info.DateColumn
	if !info.IsValidSalesData {
		log.Error().Strs("missing", info.MissingRequired()).Msg("data lacks the required sales columns")
		return finish(StatusInvalidSchema, MsgInvalidSchema), nil
	}

	// Stage 3: Validate
	data := records
	if opts.SkipValidation {
		log.Info().Msg("validation skipped")
	} else {
		start = time.Now()
		valid, errs := validate.New(info).Validate(records)
		sum.DurationValidate = time.Since(start)
		for _, msg := range errs {
			log.Warn().Msg(msg)
		}
		sum.RowsRejected = len(records) - len(valid)
		if len(valid) == 0 {
			log.Error().Msg("no valid data found")
			return finish(StatusNoValidRows, MsgNoValidRows), nil
		}
		log.Debug().Int("valid", len(valid)).Int("total", len(records)).Msg("validation complete")
		data = valid
	}
	sum.RowsValid = len(data)

	// Stage 4: Filter
	start = time.Now()
	resolved := filter.Resolve(opts.Filters, info, log)
	sum.FiltersApplied = filter.Names(resolved.Applicable)
	sum.FiltersSkipped = filter.Names(resolved.Skipped)
	data = filter.Chain(data, resolved.Applicable, log)
	sum.DurationFilter = time.Since(start)
	sum.RowsAfterFilter = len(data)
	if len(data) == 0 {
		log.Warn().Msg("no data left after filtering")
		return finish(StatusEmptyAfterFilter, MsgEmptyAfterFilter), nil
	}

	// Stage 5: Aggregate
	log.Info().Int("rows", len(data)).Msg("aggregating sales")
	summary := aggregate.Aggregate(data, log)
	sum.Products = len(summary.RevenueByProduct)

	// Stage 6: Render
	r := opts.Renderer
	if r == nil {
		r = render.Text{}
	}
	out, err := r.Render(summary)
	if err != nil {
		return nil, &StageError{Stage: "render", Err: err}
	}

	return finish(StatusOK, out), nil
}

func logSummary(log zerolog.Logger, status Status, sum model.RunSummary) {
	ev := log.Info()
	if status != StatusOK {
		ev = log.Debug()
	}
	ev.
		Str("status", status.String()).
		Int("rows_read", sum.RowsRead).
		Int("rows_valid", sum.RowsValid).
		Int("rows_rejected", sum.RowsRejected).
		Int("rows_after_filter", sum.RowsAfterFilter).
		Int("products", sum.Products).
		Strs("filters_applied", sum.FiltersApplied).
		Strs("filters_skipped", sum.FiltersSkipped).
		Str("total_duration", sum.DurationTotal.String()).
		Msg("report run complete")
}
