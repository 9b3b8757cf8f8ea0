package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrSummarizerNotConfigured = errors.New("summarizer not configured")

const DefaultModel = "gemini-2.5-flash"

type Config struct {
	APIKey     string
	Model      string
	Mock       bool
	MaxRetries int
	RetryDelay time.Duration
}

// generator is the slice of the Gemini client the summarizer needs.
type generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type genaiGenerator struct {
	client *genai.Client
}

func (g genaiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GeminiSummarizer turns an instruction plus a JSON payload into text through
// the Gemini API. In mock mode it answers locally without any network call.
type GeminiSummarizer struct {
	gen        generator
	model      string
	maxRetries uint64
	retryDelay time.Duration
	mockMode   bool
	logger     *zap.Logger
}

func NewGeminiSummarizer(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiSummarizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &GeminiSummarizer{
		model:      strings.TrimSpace(cfg.Model),
		maxRetries: uint64(max(cfg.MaxRetries, 0)),
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
	if s.model == "" {
		s.model = DefaultModel
	}
	if s.retryDelay <= 0 {
		s.retryDelay = 200 * time.Millisecond
	}

	if cfg.Mock {
		logger.Info("[insight][summarizer] mock mode enabled")
		s.mockMode = true
		return s, nil
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn("[insight][summarizer] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.Error("[insight][summarizer] failed creating client", zap.Error(err))
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	logger.Info("[insight][summarizer] Gemini client initialized", zap.String("model", s.model))

	s.gen = genaiGenerator{client: client}
	return s, nil
}

// BuildPrompt places the JSON-encoded payload between the instruction lines
// the way the analyst prompts expect it.
func BuildPrompt(instruction string, payload any) (string, error) {
	data, err := sonic.ConfigStd.MarshalToString(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	first, rest, _ := strings.Cut(instruction, "\n")
	var b strings.Builder
	b.WriteString(first)
	b.WriteString("\n")
	b.WriteString(data)
	b.WriteString("\n")
	b.WriteString(rest)
	return strings.TrimSpace(b.String()), nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, instruction string, payload any) (string, error) {
	if s == nil || (!s.mockMode && s.gen == nil) {
		return "", ErrSummarizerNotConfigured
	}
	prompt, err := BuildPrompt(instruction, payload)
	if err != nil {
		s.logger.Warn("[insight][summarizer] prompt build failed", zap.Error(err))
		return "", err
	}

	if s.mockMode {
		s.logger.Debug("[insight][summarizer] mock summarize", zap.Int("prompt_len", len(prompt)))
		return mockSummary(prompt), nil
	}

	var text string
	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			var genErr error
			text, genErr = s.gen.Generate(ctx, s.model, prompt)
			if genErr != nil {
				s.logger.Warn("[insight][summarizer] generate failed", zap.Int("attempt", attempt), zap.Error(genErr))
				return fmt.Errorf("generate content: %w", genErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryDelay), s.maxRetries),
			ctx,
		),
	)
	if err != nil {
		return "", err
	}
	s.logger.Info("[insight][summarizer] generate success", zap.Int("attempts", attempt), zap.Int("text_len", len(text)))
	return text, nil
}

func mockSummary(prompt string) string {
	return fmt.Sprintf("- Mock insight generated offline.\n- Prompt size: %d bytes.\n- Configure GEMINI_API_KEY for real analysis.", len(prompt))
}
