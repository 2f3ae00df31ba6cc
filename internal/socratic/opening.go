package socratic

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"scribe_tree_writer/internal/model"
)

// MaxInitialQuestions は振り返り通過時に返す質問の上限
const MaxInitialQuestions = 3

// 生成器に例として渡す問いの型
var questionTemplates = map[model.AILevel][]string{
	model.LevelBasic: {
		"What is the main point you're trying to make?",
		"Can you explain why you think that?",
		"What examples could support this idea?",
		"How did you come to this conclusion?",
		"What do you mean when you say...?",
		"Can you tell me more about...?",
		"What makes this important to you?",
		"How does this relate to your topic?",
	},
	model.LevelStandard: {
		"What evidence do you have for this claim?",
		"How does this connect to your main argument?",
		"What might someone who disagrees say?",
		"Can you think of any counterexamples?",
		"How does this paragraph support your thesis?",
		"What assumptions are you making here?",
		"Why is this the best way to organize these ideas?",
		"What's the relationship between these two points?",
	},
	model.LevelAdvanced: {
		"What are the broader implications of this argument?",
		"How does this challenge or confirm existing perspectives?",
		"What philosophical or ethical considerations arise here?",
		"How might this argument change in different contexts?",
		"What are the limits of this reasoning?",
		"How does your personal perspective influence this analysis?",
		"What paradoxes or tensions exist in your argument?",
		"How might future developments affect this position?",
	},
}

const questionRules = `Remember:
- Ask questions that prompt thinking, not questions that can be answered with facts
- Focus on their reasoning, assumptions, and approach
- Help them discover insights themselves
- Never provide direct answers or write content for them
Write each question on its own line.`

// 行頭の番号や箇条書き記号
var listMarker = regexp.MustCompile(`^(?:\d+[.)]|[-*•])\s*`)

// QuestionTemplates はレベル別の問いの型。未知のレベルは advanced 扱い。
func QuestionTemplates(level model.AILevel) []string {
	return copyFor(questionTemplates, level)
}

// QuestionInput は最初の質問を作るための入力
type QuestionInput struct {
	Reflection string
	Level      model.AILevel
	Versions   []VersionSnapshot
	// 0 以下なら既定値
	VersionWindow int
}

// QuestionResult は生成された最初の質問
type QuestionResult struct {
	Questions []string
	Tier      Tier
	Failures  []TierFailure
}

// BuildQuestionPrompt は振り返りと直近の版から質問生成用のプロンプトを組み立てます。
func BuildQuestionPrompt(in QuestionInput) Prompt {
	var b strings.Builder
	writeReflection(&b, in.Reflection)
	if versions := recentVersions(in.Versions, windowOr(in.VersionWindow, DefaultVersionWindow)); len(versions) > 0 {
		b.WriteString("Recent drafts of the document:\n")
		for _, v := range versions {
			fmt.Fprintf(&b, "Version %d: %s\n", v.VersionNumber, Excerpt(v.Content, VersionExcerptRunes))
		}
		b.WriteString("\n")
	}
	writeQuestionRequest(&b, in.Level)
	return Prompt{System: SystemPrompt, User: b.String(), QuestionType: model.QuestionTypeFor(in.Level)}
}

// BuildPlainQuestionPrompt は版を含まないプロンプト
func BuildPlainQuestionPrompt(in QuestionInput) Prompt {
	var b strings.Builder
	writeReflection(&b, in.Reflection)
	writeQuestionRequest(&b, in.Level)
	return Prompt{System: SystemPrompt, User: b.String(), QuestionType: model.QuestionTypeFor(in.Level)}
}

func writeReflection(b *strings.Builder, reflection string) {
	fmt.Fprintf(b, "Based on this student reflection about their writing:\n\"%s\"\n\n", reflection)
}

func writeQuestionRequest(b *strings.Builder, level model.AILevel) {
	fmt.Fprintf(b, "Generate %d Socratic questions that will help them think deeper about their topic.\n", MaxInitialQuestions)
	b.WriteString("Use these types of questions as inspiration:\n")
	for _, t := range QuestionTemplates(level) {
		fmt.Fprintf(b, "- %s\n", t)
	}
	b.WriteString("\n")
	b.WriteString(questionRules)
}

// ParseQuestions は生成テキストから "?" で終わる行を先頭から最大3件取り出します。
// 番号や箇条書き記号、囲みの引用符は取り除きます。
func ParseQuestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = listMarker.ReplaceAllString(line, "")
		line = strings.Trim(line, "\"*` ")
		if line == "" || !strings.HasSuffix(line, "?") {
			continue
		}
		out = append(out, line)
		if len(out) == MaxInitialQuestions {
			break
		}
	}
	return out
}

// Questions は 版付き生成 → 版なし生成 → 定型の質問 の順に最初の質問を作ります。
// 生成エラーか、使える質問が1つも残らないときにその段階は失敗とみなします。
// 禁止パターンに当たる質問は個別に捨てます。
func (p *Pipeline) Questions(ctx context.Context, in QuestionInput) (QuestionResult, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	validator := p.Validator
	if validator == nil {
		validator = DefaultValidator()
	}

	var res QuestionResult
	tiers := []struct {
		tier  Tier
		build func(QuestionInput) Prompt
	}{
		{TierContext, BuildQuestionPrompt},
		{TierPlain, BuildPlainQuestionPrompt},
	}
	for _, t := range tiers {
		if p.Generator == nil {
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: "no generator configured"})
			continue
		}
		text, err := p.generate(ctx, t.build(in))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, fmt.Errorf("Pipeline.Questions: %w", ctxErr)
			}
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: err.Error()})
			logger.WarnContext(ctx, "question tier failed", "tier", t.tier, "error", err)
			continue
		}

		var questions []string
		for _, q := range ParseQuestions(text) {
			if pattern, bad := validator.ProhibitedMatch(q); bad {
				logger.WarnContext(ctx, "generated question dropped", "tier", t.tier, "pattern", pattern)
				continue
			}
			questions = append(questions, q)
		}
		if len(questions) == 0 {
			res.Failures = append(res.Failures, TierFailure{Tier: t.tier, Reason: "no usable questions"})
			logger.WarnContext(ctx, "no usable questions generated", "tier", t.tier)
			continue
		}
		res.Questions = questions
		res.Tier = t.tier
		return res, nil
	}

	if !p.StaticFallback {
		return res, ErrGenerationUnavailable
	}
	res.Questions = InitialQuestions(in.Level)
	res.Tier = TierStatic
	logger.InfoContext(ctx, "using static initial questions", "level", in.Level, "failures", len(res.Failures))
	return res, nil
}
