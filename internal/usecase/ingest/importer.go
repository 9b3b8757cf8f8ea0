package ingest

import (
	"errors"
)

// Outcome tags what happened to a single input row.
type Outcome string

const (
	OutcomeImported          Outcome = "imported"
	OutcomeSkippedHeader     Outcome = "skipped_header"
	OutcomeSkippedInvalid    Outcome = "skipped_invalid"
	OutcomeSkippedUnresolved Outcome = "skipped_unresolved_reference"
)

// OutcomeOf classifies a builder error. Anything unrecognised counts as an
// invalid row so a single bad row can never abort a batch.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeImported
	case errors.Is(err, ErrHeaderRow):
		return OutcomeSkippedHeader
	case errors.Is(err, ErrUnresolvedTechnician):
		return OutcomeSkippedUnresolved
	default:
		return OutcomeSkippedInvalid
	}
}

// RowResult is the per-row diagnostic kept in a Report. Line is 1-based over
// the normalized (non-blank) rows.
type RowResult struct {
	Line     int     `json:"line"`
	Outcome  Outcome `json:"outcome"`
	RecordID string  `json:"record_id,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

// Report summarises a batch. Total always equals the sum of the four counters.
type Report struct {
	Kind              RecordKind  `json:"kind"`
	Total             int         `json:"total"`
	Imported          int         `json:"imported"`
	SkippedHeader     int         `json:"skipped_header"`
	SkippedInvalid    int         `json:"skipped_invalid"`
	SkippedUnresolved int         `json:"skipped_unresolved"`
	Rows              []RowResult `json:"rows"`
}

// ErrorCount is the number of rows that could not be matched to a
// technician, reported separately from silent skips.
func (r Report) ErrorCount() int {
	return r.SkippedUnresolved
}

func (r *Report) add(res RowResult) {
	r.Total++
	switch res.Outcome {
	case OutcomeImported:
		r.Imported++
	case OutcomeSkippedHeader:
		r.SkippedHeader++
	case OutcomeSkippedUnresolved:
		r.SkippedUnresolved++
	default:
		r.SkippedInvalid++
	}
	r.Rows = append(r.Rows, res)
}

// Importer runs rows through one builder and writes every valid record to
// the sink, one store call per record, in input order.
type Importer struct {
	builder RecordBuilder
}

func NewImporter(builder RecordBuilder) *Importer {
	return &Importer{builder: builder}
}

// Run never fails: every row problem ends up as a counted outcome.
func (im *Importer) Run(rows []Row, bc BatchContext, sink Sink) Report {
	report := Report{Kind: im.builder.Kind(), Rows: make([]RowResult, 0, len(rows))}
	for i, row := range rows {
		res := RowResult{Line: i + 1}
		rec, err := im.builder.ParseRow(row, bc)
		res.Outcome = OutcomeOf(err)
		if err != nil {
			res.Reason = err.Error()
		} else {
			res.RecordID = rec.ApplyTo(sink)
		}
		report.add(res)
	}
	return report
}
