// Package llm は外部の文章生成サービスへの接続を提供します。
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/socratic"

	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("llm: gemini api key is required")
	ErrBlocked       = errors.New("llm: response blocked")
	ErrNoCandidates  = errors.New("llm: no candidates returned")
)

// GeminiGenerator は Gemini API を使う socratic.Generator
type GeminiGenerator struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	logger          *slog.Logger
}

var _ socratic.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator は設定からクライアントを作成します。
func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm.NewGeminiGenerator: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultAIModel
	}
	return &GeminiGenerator{
		client:          client,
		model:           model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
		logger:          logger,
	}, nil
}

// Generate はシステム指示付きで1回だけ生成します。リトライは呼び出し側 (Pipeline) の責務。
func (g *GeminiGenerator) Generate(ctx context.Context, p socratic.Prompt) (string, error) {
	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		[]*genai.Content{genai.NewContentFromText(p.User, genai.RoleUser)},
		g.contentConfig(p),
	)
	if err != nil {
		return "", fmt.Errorf("GeminiGenerator.Generate: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", fmt.Errorf("GeminiGenerator.Generate: %w", err)
	}
	g.logger.DebugContext(ctx, "gemini response received",
		slog.String("model", g.model),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

func (g *GeminiGenerator) contentConfig(p socratic.Prompt) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxOutputTokens,
	}
	if p.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}
	return cfg
}

// responseText は最初の候補のテキスト部分を連結します。思考部分は除く。
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	c := resp.Candidates[0]
	switch c.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return "", fmt.Errorf("%w: %s", ErrBlocked, c.FinishReason)
	}
	if c.Content == nil {
		return "", ErrNoCandidates
	}
	var b strings.Builder
	for _, part := range c.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return strings.TrimSpace(b.String()), nil
}

// NewGenerator は設定に応じた Generator を返します。
// provider が "static" の場合や API キーが無い場合は nil を返し、Pipeline は定型応答に進みます。
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (socratic.Generator, error) {
	switch cfg.Provider {
	case "", "gemini":
		if cfg.APIKey == "" {
			logger.Warn("GEMINI_API_KEY is not set, AI responses fall back to static questions")
			return nil, nil
		}
		g, err := NewGeminiGenerator(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "static":
		return nil, nil
	default:
		return nil, fmt.Errorf("llm.NewGenerator: unknown provider %q", cfg.Provider)
	}
}
