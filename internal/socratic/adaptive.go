package socratic

import (
	"time"

	"scribe_tree_writer/internal/model"
)

const (
	trendWindow          = 3
	engagementWindow     = 5
	minEngagementSamples = 2

	improvingToStandardAvg = 4.5
	improvingToAdvancedAvg = 7.5
	decliningToStandardAvg = 7.0
	decliningToBasicAvg    = 4.0

	engagedBasicWords    = 15.0
	engagedStandardWords = 25.0
)

// ReflectionSample は履歴上の振り返り1件 (古い順に渡す)
type ReflectionSample struct {
	QualityScore float64
	CreatedAt    time.Time
}

// InteractionSample は履歴上の質問1件 (古い順に渡す)
type InteractionSample struct {
	UserMessage string
	CreatedAt   time.Time
}

// Adjustment は適応レベル計算で発生した変更
type Adjustment struct {
	Rule string
	From model.AILevel
	To   model.AILevel
}

// AdaptiveTrace は計算過程。ログとAPIレスポンス用。
type AdaptiveTrace struct {
	Base        model.AILevel
	Final       model.AILevel
	Trend       string // "improving" / "declining" / "mixed" / "insufficient_data"
	TrendAvg    float64
	AvgWords    float64
	Adjustments []Adjustment
}

// ComputeLevel は現在の品質スコアと履歴からAIレベルを求めます。
// 履歴が足りないルールは単に飛ばします。
func ComputeLevel(current float64, reflections []ReflectionSample, interactions []InteractionSample) model.AILevel {
	return TraceLevel(current, reflections, interactions).Final
}

// TraceLevel は ComputeLevel と同じ計算を行い、途中経過も返します。
func TraceLevel(current float64, reflections []ReflectionSample, interactions []InteractionSample) AdaptiveTrace {
	trace := AdaptiveTrace{Base: LevelForQuality(current), Trend: "insufficient_data"}
	level := trace.Base

	// 1. 直近3件の推移
	if len(reflections) >= trendWindow {
		recent := reflections[len(reflections)-trendWindow:]
		scores := make([]float64, len(recent))
		for i, r := range recent {
			scores[i] = r.QualityScore
		}
		avg := mean(scores)
		trace.TrendAvg = avg

		switch {
		case nonDecreasing(scores):
			trace.Trend = "improving"
			if level == model.LevelBasic && avg >= improvingToStandardAvg {
				level = trace.step(level, model.LevelStandard, "improving_trend")
			} else if level == model.LevelStandard && avg >= improvingToAdvancedAvg {
				level = trace.step(level, model.LevelAdvanced, "improving_trend")
			}
		case nonIncreasing(scores):
			trace.Trend = "declining"
			if level == model.LevelAdvanced && avg < decliningToStandardAvg {
				level = trace.step(level, model.LevelStandard, "declining_trend")
			} else if level == model.LevelStandard && avg < decliningToBasicAvg {
				level = trace.step(level, model.LevelBasic, "declining_trend")
			}
		default:
			trace.Trend = "mixed"
		}
	}

	// 2. 質問の長さ (上げるだけで下げない)
	if len(interactions) >= minEngagementSamples {
		start := max(0, len(interactions)-engagementWindow)
		recent := interactions[start:]
		words := make([]float64, len(recent))
		for i, in := range recent {
			words[i] = float64(WordCount(in.UserMessage))
		}
		avgWords := mean(words)
		trace.AvgWords = avgWords

		if avgWords > engagedBasicWords && level == model.LevelBasic {
			level = trace.step(level, model.LevelStandard, "engagement")
		} else if avgWords > engagedStandardWords && level == model.LevelStandard {
			level = trace.step(level, model.LevelAdvanced, "engagement")
		}
	}

	trace.Final = level
	return trace
}

func (t *AdaptiveTrace) step(from, to model.AILevel, rule string) model.AILevel {
	t.Adjustments = append(t.Adjustments, Adjustment{Rule: rule, From: from, To: to})
	return to
}

func nonDecreasing(xs []float64) bool {
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] > xs[i+1] {
			return false
		}
	}
	return true
}

func nonIncreasing(xs []float64) bool {
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] < xs[i+1] {
			return false
		}
	}
	return true
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
