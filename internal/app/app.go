package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"settlement_console/internal/adapter/persistence/memory"
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/infrastructure/config"
	"settlement_console/internal/infrastructure/idgen"
	"settlement_console/internal/infrastructure/metrics"
	"settlement_console/internal/infrastructure/seed"
	"settlement_console/internal/infrastructure/sheets"
	"settlement_console/internal/infrastructure/summarizer"
	"settlement_console/internal/usecase"
	"settlement_console/internal/usecase/ingest"
	"settlement_console/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const serviceName = "settlement-console"

// App holds the wired use cases shared by the HTTP server and the CLI.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Store   *memory.Store
	Metrics *metrics.IngestMetrics

	Entry   *usecase.EntryUseCase
	Import  *usecase.ImportUseCase
	Report  *usecase.ReportUseCase
	Insight *usecase.InsightUseCase
}

// New builds the store from the seed data and wires every use case on top
// of it. A missing Gemini key is not fatal: insights fall back to fixed text.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	snapshot, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	ids, err := idgen.New(cfg.IDStrategy, cfg.SnowflakeNode)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}
	store := memory.NewStore(snapshot, ids)

	assigner, err := ingest.NewAssigner(cfg.AssignmentStrategy, cfg.AssignmentFixedTechnician, newRand(cfg.RandomSeed, 0))
	if err != nil {
		return nil, fmt.Errorf("assignment: %w", err)
	}
	if fixed, ok := assigner.(ingest.FixedAssigner); ok {
		if _, found := snapshot.FindTechnician(fixed.TechnicianID); !found {
			return nil, fmt.Errorf("assignment: fixed technician %q is not in the registry", fixed.TechnicianID)
		}
	}

	m := metrics.NewIngestMetrics(metrics.Config{ServiceName: serviceName, Environment: cfg.Environment})

	var sum interfaces.ISummarizer
	gemini, err := summarizer.NewGeminiSummarizer(ctx, summarizer.Config{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		Mock:       cfg.SummarizerMock,
		MaxRetries: cfg.SummarizerMaxRetries,
	}, logger)
	if err != nil {
		logger.Warn("[app][bootstrap] summarizer disabled", zap.Error(err))
	} else {
		sum = gemini
	}

	importer := usecase.NewImportUseCase(store, ids, sheets.NewDecoder(logger), usecase.ImportPolicy{
		Dates:    ingest.NewRandomDayPicker(newRand(cfg.RandomSeed, 1)),
		Assigner: assigner,
	}, m, logger)

	a := &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Metrics: m,
		Entry:   usecase.NewEntryUseCase(store, ids, logger),
		Import:  importer,
		Report:  usecase.NewReportUseCase(store),
		Insight: usecase.NewInsightUseCase(store, sum, m, cfg.SummarizerTimeout, logger),
	}
	logger.Info("[app][bootstrap] ready",
		zap.Int("technicians", len(snapshot.Technicians)),
		zap.Int("orders", len(snapshot.Orders)),
		zap.String("id_strategy", cfg.IDStrategy),
		zap.String("assignment", cfg.AssignmentStrategy),
	)
	return a, nil
}

func loadSeed(path string) (entities.Snapshot, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.Load(path)
}

// newRand returns a reproducible source when seed is set. Each consumer gets
// its own stream.
func newRand(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, stream))
}
