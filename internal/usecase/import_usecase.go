//go:generate mockgen -source=import_usecase.go -destination=../adapter/http/handlers/mocks/import_usecase_mock.go -package=mocks
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"settlement_console/internal/usecase/ingest"
	"settlement_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrEmptyPayload        = errors.New("empty payload")
	ErrInvalidBatchContext = ingest.ErrInvalidBatchContext
	ErrDecodeFailed        = errors.New("could not decode upload")
)

// ImportRequest carries the raw batch selectors. Category holds the order
// type, settlement category or part type depending on Kind; Metric is only
// read for KPI batches.
type ImportRequest struct {
	Kind     string
	Month    string
	Category string
	Metric   string
}

// IImportUseCase is the batch import surface. Every variant reports per-row
// outcomes and never aborts on a bad row.
type IImportUseCase interface {
	ImportText(ctx context.Context, req ImportRequest, text string) (ingest.Report, error)
	ImportGrid(ctx context.Context, req ImportRequest, grid [][]any) (ingest.Report, error)
	ImportFile(ctx context.Context, req ImportRequest, r io.Reader) (ingest.Report, error)
}

// ImportPolicy holds the date and technician choices applied to batch rows.
type ImportPolicy struct {
	Dates    ingest.DatePicker
	Assigner ingest.TechnicianAssigner
}

type ImportUseCase struct {
	store   interfaces.IDomainStore
	ids     interfaces.IIDGenerator
	decoder interfaces.ISheetDecoder
	policy  ImportPolicy
	metrics interfaces.IIngestMetrics
	logger  *zap.Logger

	// one batch at a time, so rows of two batches never interleave
	batchMu sync.Mutex
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(
	store interfaces.IDomainStore,
	ids interfaces.IIDGenerator,
	decoder interfaces.ISheetDecoder,
	policy ImportPolicy,
	metrics interfaces.IIngestMetrics,
	logger *zap.Logger,
) *ImportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if policy.Assigner == nil {
		policy.Assigner = &ingest.RoundRobinAssigner{}
	}
	if policy.Dates == nil {
		policy.Dates = ingest.NewRandomDayPicker(nil)
	}
	return &ImportUseCase{
		store:   store,
		ids:     ids,
		decoder: decoder,
		policy:  policy,
		metrics: metrics,
		logger:  logger,
	}
}

func (u *ImportUseCase) ImportText(ctx context.Context, req ImportRequest, text string) (ingest.Report, error) {
	rows := ingest.NormalizeText(text)
	if len(rows) == 0 {
		u.metrics.ObserveBatch(req.Kind, "empty")
		return ingest.Report{}, ErrEmptyPayload
	}
	kind, bc, err := u.batchContext(req)
	if err != nil {
		return ingest.Report{}, err
	}
	return u.run(kind, bc, rows)
}

func (u *ImportUseCase) ImportGrid(ctx context.Context, req ImportRequest, grid [][]any) (ingest.Report, error) {
	rows := ingest.NormalizeGrid(grid)
	if len(rows) == 0 {
		u.metrics.ObserveBatch(req.Kind, "empty")
		return ingest.Report{}, ErrEmptyPayload
	}
	kind, bc, err := u.batchContext(req)
	if err != nil {
		return ingest.Report{}, err
	}
	return u.run(kind, bc, rows)
}

// ImportFile decodes the first sheet of an uploaded file and imports it like
// pasted text. A decoding failure imports nothing.
func (u *ImportUseCase) ImportFile(ctx context.Context, req ImportRequest, r io.Reader) (ingest.Report, error) {
	kind, bc, err := u.batchContext(req)
	if err != nil {
		return ingest.Report{}, err
	}
	if u.decoder == nil {
		return ingest.Report{}, fmt.Errorf("%w: no decoder configured", ErrDecodeFailed)
	}

	grid, err := u.decoder.Decode(ctx, r)
	if err != nil {
		u.metrics.ObserveBatch(string(kind), "decode_failed")
		u.logger.Warn("[import][usecase] decode failed", zap.String("kind", string(kind)), zap.Error(err))
		return ingest.Report{}, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	rows := ingest.NormalizeStrings(grid)
	if len(rows) == 0 {
		u.metrics.ObserveBatch(string(kind), "empty")
		return ingest.Report{}, ErrEmptyPayload
	}
	return u.run(kind, bc, rows)
}

func (u *ImportUseCase) batchContext(req ImportRequest) (ingest.RecordKind, ingest.BatchContext, error) {
	kind, ok := ingest.ParseRecordKind(req.Kind)
	if !ok {
		u.metrics.ObserveBatch(req.Kind, "rejected")
		return "", ingest.BatchContext{}, fmt.Errorf("%w: unknown record kind %q", ErrInvalidBatchContext, req.Kind)
	}
	bc, err := ingest.NewBatchContext(kind, req.Month, req.Category, req.Metric)
	if err != nil {
		u.metrics.ObserveBatch(string(kind), "rejected")
		return "", ingest.BatchContext{}, err
	}
	return kind, bc, nil
}

func (u *ImportUseCase) run(kind ingest.RecordKind, bc ingest.BatchContext, rows []ingest.Row) (ingest.Report, error) {
	u.batchMu.Lock()
	defer u.batchMu.Unlock()

	builder, err := ingest.NewRecordBuilder(kind, ingest.Env{
		Technicians: u.store.Technicians(),
		IDs:         u.ids,
		Dates:       u.policy.Dates,
		Assigner:    u.policy.Assigner,
	})
	if err != nil {
		return ingest.Report{}, err
	}

	start := time.Now()
	report := ingest.NewImporter(builder).Run(rows, bc, u.store)

	u.metrics.ObserveBatch(string(kind), "ok")
	u.metrics.ObserveRows(string(kind), string(ingest.OutcomeImported), report.Imported)
	u.metrics.ObserveRows(string(kind), string(ingest.OutcomeSkippedHeader), report.SkippedHeader)
	u.metrics.ObserveRows(string(kind), string(ingest.OutcomeSkippedInvalid), report.SkippedInvalid)
	u.metrics.ObserveRows(string(kind), string(ingest.OutcomeSkippedUnresolved), report.SkippedUnresolved)

	u.logger.Info("[import][usecase] batch done",
		zap.String("kind", string(kind)),
		zap.String("month", bc.Month),
		zap.Int("total", report.Total),
		zap.Int("imported", report.Imported),
		zap.Int("skipped_header", report.SkippedHeader),
		zap.Int("skipped_invalid", report.SkippedInvalid),
		zap.Int("errors", report.ErrorCount()),
		zap.Duration("took", time.Since(start)),
	)
	return report, nil
}

type nopMetrics struct{}

func (nopMetrics) ObserveRows(string, string, int) {}
func (nopMetrics) ObserveBatch(string, string)     {}
func (nopMetrics) ObserveSummary(string, string)   {}
