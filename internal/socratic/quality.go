package socratic

import (
	"math"
	"strings"
)

const (
	MinQualityScore = 1.0
	MaxQualityScore = 10.0

	weightDepth            = 0.3
	weightSelfAwareness    = 0.2
	weightCriticalThinking = 0.3
	weightGrowthMindset    = 0.2

	// 長さボーナスの閾値 (語数)
	longReflectionWords   = 150
	mediumReflectionWords = 50
	longReflectionBonus   = 1.0
	mediumReflectionBonus = 0.5
)

// WordCount は空白区切りの語数
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// LengthBonus は 150語以上で +1.0、50語以上で +0.5
func LengthBonus(words int) float64 {
	switch {
	case words >= longReflectionWords:
		return longReflectionBonus
	case words >= mediumReflectionWords:
		return mediumReflectionBonus
	default:
		return 0
	}
}

// WeightedScore は次元スコアの加重和 (長さボーナスを含まない)
func WeightedScore(d DimensionScores) float64 {
	return weightDepth*float64(d.Depth) +
		weightSelfAwareness*float64(d.SelfAwareness) +
		weightCriticalThinking*float64(d.CriticalThinking) +
		weightGrowthMindset*float64(d.GrowthMindset)
}

// ScoreQuality は振り返りの品質を 1.0〜10.0 で返します。どんな文字列でも失敗しません。
func ScoreQuality(text string) float64 {
	return QualityFromDimensions(ScoreDimensions(text), WordCount(text))
}

// QualityFromDimensions は (加重和 + 長さボーナス) / 4 * 9 + 1 を [1, 10] に収めた値
func QualityFromDimensions(d DimensionScores, words int) float64 {
	weighted := WeightedScore(d) + LengthBonus(words)
	score := (weighted/4)*9 + 1
	return math.Max(MinQualityScore, math.Min(score, MaxQualityScore))
}
