package socratic

import "strings"

// 各次元の下限値 (マーカーが1つも無い場合)
const (
	floorDepth            = 1
	floorSelfAwareness    = 1
	floorCriticalThinking = 0
	floorGrowthMindset    = 1

	maxCriticalThinking = 4
)

// DimensionScores は振り返り1件の4次元スコア。保存はせず品質スコアの計算にだけ使う。
type DimensionScores struct {
	Depth            int // 1..4
	SelfAwareness    int // 1..3
	CriticalThinking int // 0..4
	GrowthMindset    int // 1..3
}

// Total は4次元の単純合計
func (d DimensionScores) Total() int {
	return d.Depth + d.SelfAwareness + d.CriticalThinking + d.GrowthMindset
}

// ScoreDimensions は語彙マーカーの部分一致で4次元スコアを求めます。
// 深さ・自己認識・成長志向は一致した最上位の段階、批判的思考は一致したカテゴリ数 (上限4)。
func ScoreDimensions(text string) DimensionScores {
	lower := strings.ToLower(text)
	return DimensionScores{
		Depth:            highestTier(lower, lowerDepthTiers, floorDepth),
		SelfAwareness:    highestTier(lower, lowerSelfAwareness, floorSelfAwareness),
		CriticalThinking: countCategories(lower, lowerCritical, maxCriticalThinking),
		GrowthMindset:    highestTier(lower, lowerGrowthMindset, floorGrowthMindset),
	}
}

// highestTier の tiers は点数の高い順に並んでいること
func highestTier(lower string, tiers []markerTier, floor int) int {
	for _, tier := range tiers {
		if containsAny(lower, tier.Markers) {
			if tier.Score < floor {
				return floor
			}
			return tier.Score
		}
	}
	return floor
}

func countCategories(lower string, categories []markerTier, limit int) int {
	n := floorCriticalThinking
	for _, c := range categories {
		if containsAny(lower, c.Markers) {
			n++
		}
	}
	return min(n, limit)
}

func containsAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// DimensionFeedback は次元スコアの合計から短い講評を返します。
func DimensionFeedback(d DimensionScores) string {
	total := d.Total()
	switch {
	case total >= 12:
		return "Excellent reflection! Your thoughtful analysis shows you're ready for advanced AI assistance."
	case total >= 8:
		return "Good reflection. You're thinking carefully about your writing process."
	case total >= 5:
		return "You're starting to reflect on your process. Try to be more specific about your challenges and goals."
	default:
		return "Take a moment to think deeper. What specifically are you trying to accomplish? What challenges are you facing?"
	}
}
