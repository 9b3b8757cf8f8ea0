package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DailyFallback  = "AI Analysis temporarily unavailable."
	DailyEmpty     = "No insights available."
	ReportFallback = "Unable to generate report analysis."
	ReportEmpty    = "Analysis failed."
)

const dailyInstruction = `As a data analyst for the field-service settlement console, analyze this daily snapshot.
Provide a concise 3-bullet point summary of the operational health, highlighting any backlog in settlements or KPI trends.
Keep it professional and encouraging. Format as markdown.`

const reportInstruction = `Analyze this %s dataset for the field-service settlement console.
Identify:
1. Top performing segment.
2. Any concerning downward trends.
3. One actionable recommendation for management.
Keep it brief (max 150 words).`

// DailySummary is the payload sent for the daily insight.
type DailySummary struct {
	TotalOrders        int                 `json:"totalOrders"`
	PendingSettlements int                 `json:"pendingSettlements"`
	AvgSatisfaction    float64             `json:"avgSatisfaction"`
	RecentPartSales    []entities.PartSale `json:"recentPartsSales"`
}

func BuildDailySummary(s entities.Snapshot) DailySummary {
	d := DailySummary{TotalOrders: len(s.Orders)}
	for _, st := range s.Settlements {
		if st.Status == entities.SettlementStatusPending {
			d.PendingSettlements++
		}
	}
	if len(s.KPIs) > 0 {
		var sum float64
		for _, k := range s.KPIs {
			sum += k.SatisfactionScore
		}
		d.AvgSatisfaction = sum / float64(len(s.KPIs))
	}
	d.RecentPartSales = append([]entities.PartSale{}, s.PartSales[:min(recentLimit, len(s.PartSales))]...)
	return d
}

type reportPayload struct {
	SettlementData []categoryTotal `json:"settlementData"`
	KPIData        []kpiPoint      `json:"kpiData"`
	OrderData      []typeCount     `json:"orderData"`
}

type categoryTotal struct {
	Category string `json:"name"`
	Total    string `json:"value"`
}

type kpiPoint struct {
	Technician   string  `json:"technician"`
	Period       string  `json:"name"`
	Satisfaction float64 `json:"satisfaction"`
	Completion   float64 `json:"completion"`
	Timeliness   float64 `json:"timeliness"`
}

type typeCount struct {
	Type  string `json:"name"`
	Count int    `json:"value"`
}

func buildReportPayload(r Reports) reportPayload {
	p := reportPayload{
		SettlementData: []categoryTotal{
			{Category: string(entities.SettlementCategory3C), Total: r.SettlementTotals[entities.SettlementCategory3C].String()},
			{Category: string(entities.SettlementCategoryAppliance), Total: r.SettlementTotals[entities.SettlementCategoryAppliance].String()},
		},
		OrderData: []typeCount{
			{Type: string(entities.OrderTypeInstallation), Count: r.OrderCounts[entities.OrderTypeInstallation]},
			{Type: string(entities.OrderTypeRepair), Count: r.OrderCounts[entities.OrderTypeRepair]},
		},
	}
	for _, k := range r.KPIs {
		p.KPIData = append(p.KPIData, kpiPoint{
			Technician:   k.TechnicianName,
			Period:       k.Period,
			Satisfaction: k.SatisfactionScore,
			Completion:   k.CompletionRate,
			Timeliness:   k.TimelinessRate,
		})
	}
	return p
}

// IInsightUseCase produces advisory text. It never returns an error; any
// summarizer failure becomes a fixed fallback string.
type IInsightUseCase interface {
	DailyInsight(ctx context.Context) string
	ReportAnalysis(ctx context.Context, reportType string) string
}

type InsightUseCase struct {
	store      interfaces.IDomainStore
	summarizer interfaces.ISummarizer
	metrics    interfaces.IIngestMetrics
	logger     *zap.Logger
	timeout    time.Duration
}

var _ IInsightUseCase = (*InsightUseCase)(nil)

func NewInsightUseCase(store interfaces.IDomainStore, summarizer interfaces.ISummarizer, metrics interfaces.IIngestMetrics, timeout time.Duration, logger *zap.Logger) *InsightUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &InsightUseCase{store: store, summarizer: summarizer, metrics: metrics, logger: logger, timeout: timeout}
}

func (u *InsightUseCase) DailyInsight(ctx context.Context) string {
	payload := BuildDailySummary(u.store.Snapshot())
	return u.summarize(ctx, "daily", dailyInstruction, payload, DailyEmpty, DailyFallback)
}

func (u *InsightUseCase) ReportAnalysis(ctx context.Context, reportType string) string {
	reportType = strings.TrimSpace(reportType)
	if reportType == "" {
		reportType = "monthly KPI"
	}
	payload := buildReportPayload(BuildReports(u.store.Snapshot()))
	return u.summarize(ctx, "report", fmt.Sprintf(reportInstruction, reportType), payload, ReportEmpty, ReportFallback)
}

func (u *InsightUseCase) summarize(ctx context.Context, kind, instruction string, payload any, empty, fallback string) string {
	if u.summarizer == nil {
		u.metrics.ObserveSummary(kind, "unavailable")
		return fallback
	}
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	text, err := u.summarizer.Summarize(ctx, instruction, payload)
	if err != nil {
		u.metrics.ObserveSummary(kind, "failed")
		u.logger.Warn("[insight][usecase] summarizer failed", zap.String("kind", kind), zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		u.metrics.ObserveSummary(kind, "empty")
		return empty
	}
	u.metrics.ObserveSummary(kind, "ok")
	return text
}

// InsightBoard runs insight requests in the background and keeps the result
// of the most recent one. Starting a new request cancels the one in flight,
// and a superseded result is dropped even if it arrives late.
type InsightBoard struct {
	mu      sync.Mutex
	seq     uint64
	text    string
	loading bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewInsightBoard() *InsightBoard {
	return &InsightBoard{}
}

func (b *InsightBoard) Refresh(ctx context.Context, fetch func(context.Context) string) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	if b.cancel != nil {
		b.cancel()
	}
	cctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.loading = true
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		defer cancel()
		text := fetch(cctx)

		b.mu.Lock()
		defer b.mu.Unlock()
		if id != b.seq {
			return
		}
		b.text = text
		b.loading = false
		b.cancel = nil
	}()
}

// Current returns the latest accepted text and whether a request is pending.
func (b *InsightBoard) Current() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, b.loading
}

// Wait blocks until every started request has returned.
func (b *InsightBoard) Wait() {
	b.wg.Wait()
}

// Close cancels the request in flight and waits for it.
func (b *InsightBoard) Close() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()
	b.wg.Wait()
}

// WatchStore refreshes the board through fetch whenever orders or
// settlements change. The returned func stops watching.
func (b *InsightBoard) WatchStore(ctx context.Context, store interfaces.IDomainStore, fetch func(context.Context) string) func() {
	return store.Subscribe(func(collection string, _ entities.Snapshot) {
		if collection == interfaces.CollectionOrders || collection == interfaces.CollectionSettlements {
			b.Refresh(ctx, fetch)
		}
	})
}
