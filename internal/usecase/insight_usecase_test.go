package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"settlement_console/internal/domain/entities"
	mock_interfaces "settlement_console/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBuildDailySummary(t *testing.T) {
	s := BuildDailySummary(seedSnapshot())
	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, 2, s.PendingSettlements)
	assert.InDelta(t, 9.1666, s.AvgSatisfaction, 0.001)
	require.Len(t, s.RecentPartSales, 2)
	assert.Equal(t, "P001", s.RecentPartSales[0].ID)

	empty := BuildDailySummary(entities.Snapshot{})
	assert.Zero(t, empty.AvgSatisfaction)
	assert.NotNil(t, empty.RecentPartSales)
}

func TestInsightUseCase_DailyInsight(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		text   string
		err    error
		result string
		want   string
	}{
		{name: "ok", text: "- all good", result: "ok", want: "- all good"},
		{name: "failure", err: errors.New("quota"), result: "failed", want: DailyFallback},
		{name: "blank", text: "  \n", result: "empty", want: DailyEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			summarizer := mock_interfaces.NewMockISummarizer(ctrl)
			metrics := mock_interfaces.NewMockIIngestMetrics(ctrl)
			uc := NewInsightUseCase(newTestStore(), summarizer, metrics, time.Second, nil)

			summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(DailySummary{})).
				DoAndReturn(func(ctx context.Context, instruction string, payload any) (string, error) {
					if _, ok := ctx.Deadline(); !ok {
						t.Fatalf("expected a deadline on the summarizer context")
					}
					if !strings.Contains(instruction, "3-bullet") {
						t.Fatalf("unexpected instruction %q", instruction)
					}
					if payload.(DailySummary).TotalOrders != 4 {
						t.Fatalf("unexpected payload %+v", payload)
					}
					return tc.text, tc.err
				})
			metrics.EXPECT().ObserveSummary("daily", tc.result)

			assert.Equal(t, tc.want, uc.DailyInsight(ctx))
		})
	}
}

func TestInsightUseCase_ReportAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("payload and instruction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summarizer := mock_interfaces.NewMockISummarizer(ctrl)
		uc := NewInsightUseCase(newTestStore(), summarizer, nil, 0, nil)

		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instruction string, payload any) (string, error) {
				if !strings.Contains(instruction, "monthly KPI dataset") {
					t.Fatalf("unexpected instruction %q", instruction)
				}
				p := payload.(reportPayload)
				if len(p.KPIData) != 3 || p.SettlementData[1].Total != "350" || p.OrderData[0].Count != 2 {
					t.Fatalf("unexpected payload %+v", p)
				}
				return "analysis", nil
			})

		assert.Equal(t, "analysis", uc.ReportAnalysis(ctx, ""))
	})

	t.Run("fallbacks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		summarizer := mock_interfaces.NewMockISummarizer(ctrl)
		uc := NewInsightUseCase(newTestStore(), summarizer, nil, 0, nil)

		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
		assert.Equal(t, ReportFallback, uc.ReportAnalysis(ctx, "settlement"))

		summarizer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)
		assert.Equal(t, ReportEmpty, uc.ReportAnalysis(ctx, "settlement"))
	})

	t.Run("no summarizer", func(t *testing.T) {
		uc := NewInsightUseCase(newTestStore(), nil, nil, 0, nil)
		assert.Equal(t, ReportFallback, uc.ReportAnalysis(ctx, "x"))
		assert.Equal(t, DailyFallback, uc.DailyInsight(ctx))
	})
}

func TestInsightBoard_LatestWins(t *testing.T) {
	b := NewInsightBoard()
	defer b.Close()

	release := make(chan struct{})
	var firstCancelled bool
	var mu sync.Mutex

	b.Refresh(context.Background(), func(ctx context.Context) string {
		<-release
		mu.Lock()
		firstCancelled = ctx.Err() != nil
		mu.Unlock()
		return "stale"
	})
	_, loading := b.Current()
	assert.True(t, loading)

	b.Refresh(context.Background(), func(context.Context) string { return "fresh" })
	close(release)
	b.Wait()

	text, loading := b.Current()
	assert.Equal(t, "fresh", text)
	assert.False(t, loading)
	mu.Lock()
	assert.True(t, firstCancelled)
	mu.Unlock()
}

func TestInsightBoard_CloseCancelsInFlight(t *testing.T) {
	b := NewInsightBoard()
	b.Refresh(context.Background(), func(ctx context.Context) string {
		<-ctx.Done()
		return "cancelled"
	})
	b.Close()

	text, _ := b.Current()
	assert.Equal(t, "cancelled", text)
}

func TestInsightBoard_WatchStore(t *testing.T) {
	store := newTestStore()
	b := NewInsightBoard()
	defer b.Close()

	var mu sync.Mutex
	calls := 0
	stop := b.WatchStore(context.Background(), store, func(context.Context) string {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return "refreshed"
	})

	store.AddPartSale(entities.PartSale{ID: "P9"})
	store.AddOrder(entities.Order{ID: "O9"})
	b.Wait()

	text, _ := b.Current()
	assert.Equal(t, "refreshed", text)
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()

	stop()
	store.AddSettlement(entities.Settlement{ID: "S9"})
	b.Wait()
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}
