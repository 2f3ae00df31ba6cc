// Package socratic は振り返りの品質評価、AIレベルの判定・適応、
// 生成テキストのソクラテス境界チェック、プロンプト組み立てを行います。
// すべて副作用のない純粋な処理で、文章生成そのものは Generator に委譲します。
package socratic

import (
	"regexp"
	"strings"
)

// markerTier は1段階分のマーカー語彙。Score はその段階に一致したときの点数。
type markerTier struct {
	Name    string
	Score   int
	Markers []string
}

// 振り返りの深さ (上位の段階が優先)
var depthTiers = []markerTier{
	{Name: "sophisticated", Score: 4, Markers: []string{
		"Upon reflection",
		"I've analyzed",
		"The complexity lies in",
		"I'm grappling with",
		"My hypothesis is",
	}},
	{Name: "thoughtful", Score: 3, Markers: []string{
		"I'm considering",
		"The challenge is",
		"I've noticed that",
		"My approach is",
		"I'm exploring",
	}},
	{Name: "developing", Score: 2, Markers: []string{
		"I think",
		"Maybe",
		"It seems",
		"I'm trying to",
		"I want to",
	}},
	{Name: "surface_level", Score: 1, Markers: []string{
		"I need help",
		"I don't know",
		"This is hard",
		"I'm stuck",
		"Can you help",
	}},
}

var selfAwarenessTiers = []markerTier{
	{Name: "high", Score: 3, Markers: []string{
		"I recognize that I",
		"My tendency is to",
		"I'm aware that my",
		"I've noticed I often",
	}},
	{Name: "moderate", Score: 2, Markers: []string{
		"I'm struggling with",
		"I need to work on",
		"My weakness is",
	}},
	{Name: "low", Score: 1, Markers: []string{
		"I don't understand",
		"This doesn't make sense",
		"Why is this so hard",
	}},
}

// 批判的思考はカテゴリ単位で加算する (段階ではない)
var criticalThinkingCategories = []markerTier{
	{Name: "questioning", Score: 1, Markers: []string{
		"What if",
		"How might",
		"Could it be",
		"Why does",
		"What causes",
	}},
	{Name: "analyzing", Score: 1, Markers: []string{
		"This connects to",
		"The relationship between",
		"This implies",
		"This suggests",
		"This demonstrates",
	}},
	{Name: "evaluating", Score: 1, Markers: []string{
		"The strength of",
		"The weakness in",
		"This assumes",
		"The evidence shows",
		"This contradicts",
	}},
	{Name: "synthesizing", Score: 1, Markers: []string{
		"Bringing together",
		"This combines",
		"Integrating these ideas",
		"The pattern here",
		"The overall picture",
	}},
}

var growthMindsetTiers = []markerTier{
	{Name: "growth", Score: 3, Markers: []string{
		"I'm learning to",
		"I can improve by",
		"Next time I'll",
		"I'm developing",
		"This challenge will help me",
	}},
	{Name: "mixed", Score: 2, Markers: []string{
		"This is difficult but",
		"I haven't figured out yet",
		"I need more practice",
		"I'm working on",
	}},
	{Name: "fixed", Score: 1, Markers: []string{
		"I can't",
		"I'm not good at",
		"This is too hard",
		"I give up",
		"I'll never understand",
	}},
}

// ProhibitedPatterns は直接答えや内容を与える表現 (1つでも一致したら不合格)
var ProhibitedPatterns = []string{
	// 内容の直接生成
	`Here's a (thesis|paragraph|sentence) for you`,
	`You could write:`,
	`Try this (opening|conclusion|transition):`,
	`Your (thesis|topic sentence) should be:`,

	// 答えの提示
	`The answer is`,
	`You should (write|say|argue)`,
	`The best way to`,
	`Here's what to do:`,

	// 考える作業の代行
	`Your main argument is`,
	`The evidence shows that`,
	`This means that`,
	`In conclusion,`,

	// 生産的な試行錯誤を奪う表現
	`Let me (write|create|draft) that for you`,
	`I'll (help|do|complete) that`,
	`Here's the (solution|answer|fix)`,
}

// EnhancementPatterns は思考を促す問いかけ (最低1つ必要)
var EnhancementPatterns = []string{
	`What (do you think|might|could)`,
	`How (might|could|would)`,
	`Why (do you think|might)`,
	`Consider (what|how|why)`,

	`What if`,
	`Have you considered`,
	`Think about`,
	`Explore (how|what|why)`,

	`You mentioned.*what about`,
	`Building on your idea`,
	`Your point about.*suggests`,
	`That's interesting.*why`,
}

// IndependenceBuilders は学生自身の視点を引き出す言い回し (部分一致、最低1つ必要)
var IndependenceBuilders = []string{
	"What's your perspective on",
	"How do you see",
	"What matters to you about",
	"From your experience",
	"In your view",
	"What strikes you about",
	"How would you approach",
	"What questions do you have",
}

// compilePatterns は大文字小文字を区別しない正規表現に変換する。不正なパターンは panic。
func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func lowerTiers(tiers []markerTier) []markerTier {
	out := make([]markerTier, len(tiers))
	for i, t := range tiers {
		out[i] = markerTier{Name: t.Name, Score: t.Score, Markers: lowerAll(t.Markers)}
	}
	return out
}

// 照合は小文字化したテキストに対して行うため、マーカーも小文字化しておく
var (
	lowerDepthTiers    = lowerTiers(depthTiers)
	lowerSelfAwareness = lowerTiers(selfAwarenessTiers)
	lowerCritical      = lowerTiers(criticalThinkingCategories)
	lowerGrowthMindset = lowerTiers(growthMindsetTiers)
)
