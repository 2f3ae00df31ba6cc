package socratic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"scribe_tree_writer/internal/model"
)

// Generator は外部の文章生成サービス
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// GeneratorFunc は関数を Generator として使うためのアダプタ
type GeneratorFunc func(ctx context.Context, p Prompt) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, p Prompt) (string, error) {
	return f(ctx, p)
}

// Tier は応答を生成した段階
type Tier string

const (
	TierContext Tier = "with_context"
	TierPlain   Tier = "without_context"
	TierStatic  Tier = "static_default"
)

// ErrGenerationUnavailable はすべての段階が失敗したときに返る
var ErrGenerationUnavailable = fmt.Errorf("socratic: all generation tiers failed: %w", model.ErrServiceUnavailable)

// TierFailure は失敗した段階とその理由
type TierFailure struct {
	Tier   Tier
	Reason string
}

// Result はパイプラインの出力。Text は常に境界チェック済み。
type Result struct {
	Text         string
	QuestionType model.QuestionType
	Tier         Tier
	Failures     []TierFailure
}

// Pipeline は 文脈付き生成 → 文脈なし生成 → 定型応答 の順に試します。
// 生成エラーか境界チェック不合格でその段階は失敗とみなします。
type Pipeline struct {
	Generator      Generator
	Validator      *Validator
	StaticFallback bool
	// Timeout は1段階あたりの上限 (0 なら無制限)
	Timeout time.Duration
	Logger  *slog.Logger
}

// Respond は入力に対する問いかけを返します。
func (p *Pipeline) Respond(ctx context.Context, in PromptInput) (Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	validator := p.Validator
	if validator == nil {
		validator = DefaultValidator()
	}

	res := Result{QuestionType: model.QuestionTypeFor(in.Level)}

	tiers := []struct {
		tier  Tier
		build func(PromptInput) Prompt
	}{
		{TierContext, BuildPrompt},
		{TierPlain, BuildPlainPrompt},
	}
	for _, t := range tiers {
		if p.Generator == nil {
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: "no generator configured"})
			continue
		}
		text, err := p.generate(ctx, t.build(in))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, fmt.Errorf("Pipeline.Respond: %w", ctxErr)
			}
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: err.Error()})
			logger.WarnContext(ctx, "generation tier failed", "tier", t.tier, "error", err)
			continue
		}
		if v := validator.Validate(text); !v.IsValid {
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: v.Reason})
			logger.WarnContext(ctx, "generated response rejected", "tier", t.tier, "reason", v.Reason)
			continue
		}
		res.Text = text
		res.Tier = t.tier
		return res, nil
	}

	if !p.StaticFallback {
		logger.ErrorContext(ctx, "no generation tier succeeded", "failures", len(res.Failures))
		return res, ErrGenerationUnavailable
	}
	res.Text = StaticResponse(in.Level)
	res.Tier = TierStatic
	logger.InfoContext(ctx, "using static response", "level", in.Level, "failures", len(res.Failures))
	return res, nil
}

func (p *Pipeline) generate(ctx context.Context, prompt Prompt) (string, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	text, err := p.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errors.New("empty response")
	}
	return text, nil
}
