package socratic

import (
	"strings"
	"testing"
	"time"

	"scribe_tree_writer/internal/model"

	"github.com/stretchr/testify/assert"
)

func reflectionsOf(scores ...float64) []ReflectionSample {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]ReflectionSample, len(scores))
	for i, s := range scores {
		out[i] = ReflectionSample{QualityScore: s, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	return out
}

func interactionsOf(wordCounts ...int) []InteractionSample {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]InteractionSample, len(wordCounts))
	for i, n := range wordCounts {
		out[i] = InteractionSample{UserMessage: strings.Repeat("w ", n), CreatedAt: base.Add(time.Duration(i) * time.Minute)}
	}
	return out
}

func TestComputeLevel(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		reflections  []ReflectionSample
		interactions []InteractionSample
		want         model.AILevel
	}{
		{name: "正常系: 履歴なしは基本レベル", current: 6.0, want: model.LevelStandard},
		{name: "正常系: 上昇傾向で basic → standard", current: 4.0, reflections: reflectionsOf(5, 6, 7), want: model.LevelStandard},
		{name: "正常系: 下降傾向で advanced → standard", current: 9.0, reflections: reflectionsOf(7, 6, 5), want: model.LevelStandard},
		{name: "正常系: 一定値は上昇扱い", current: 4.0, reflections: reflectionsOf(5, 5, 5), want: model.LevelStandard},
		{name: "正常系: 上昇傾向で standard → advanced", current: 6.0, reflections: reflectionsOf(7, 8, 9), want: model.LevelAdvanced},
		{name: "正常系: 上昇でも平均が足りなければ据え置き", current: 6.0, reflections: reflectionsOf(6, 7, 7), want: model.LevelStandard},
		{name: "正常系: 下降傾向で standard → basic", current: 6.0, reflections: reflectionsOf(4, 3, 2), want: model.LevelBasic},
		{name: "正常系: 下降でも平均が高ければ据え置き", current: 9.0, reflections: reflectionsOf(9, 8, 7.5), want: model.LevelAdvanced},
		{name: "正常系: 増減が混在すれば据え置き", current: 4.0, reflections: reflectionsOf(3, 8, 4), want: model.LevelBasic},
		{name: "正常系: 直近3件だけを見る", current: 4.0, reflections: reflectionsOf(9, 1, 5, 6, 7), want: model.LevelStandard},
		{name: "境界値: 2件では傾向を判定しない", current: 4.0, reflections: reflectionsOf(8, 9), want: model.LevelBasic},
		{name: "正常系: 長い質問で basic → standard", current: 4.0, interactions: interactionsOf(20, 20), want: model.LevelStandard},
		{name: "正常系: 長い質問で standard → advanced", current: 6.0, interactions: interactionsOf(30, 30, 30), want: model.LevelAdvanced},
		{name: "正常系: 1段階だけ上げる", current: 4.0, interactions: interactionsOf(40, 40), want: model.LevelStandard},
		{name: "境界値: 1件では判定しない", current: 4.0, interactions: interactionsOf(40), want: model.LevelBasic},
		{name: "正常系: 直近5件だけを見る", current: 4.0, interactions: interactionsOf(100, 100, 3, 3, 3, 3, 3), want: model.LevelBasic},
		{name: "正常系: 傾向と質問の両方で2段階上がる", current: 4.0, reflections: reflectionsOf(5, 6, 7), interactions: interactionsOf(30, 30), want: model.LevelAdvanced},
		{name: "正常系: 下降のあと質問で戻る", current: 9.0, reflections: reflectionsOf(7, 6, 5), interactions: interactionsOf(30, 30), want: model.LevelAdvanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLevel(tt.current, tt.reflections, tt.interactions))
		})
	}
}

func TestTraceLevel(t *testing.T) {
	trace := TraceLevel(4.0, reflectionsOf(5, 6, 7), interactionsOf(30, 30))

	assert.Equal(t, model.LevelBasic, trace.Base)
	assert.Equal(t, model.LevelAdvanced, trace.Final)
	assert.Equal(t, "improving", trace.Trend)
	assert.InDelta(t, 6.0, trace.TrendAvg, 1e-9)
	assert.InDelta(t, 30.0, trace.AvgWords, 1e-9)
	assert.Equal(t, []Adjustment{
		{Rule: "improving_trend", From: model.LevelBasic, To: model.LevelStandard},
		{Rule: "engagement", From: model.LevelStandard, To: model.LevelAdvanced},
	}, trace.Adjustments)

	mixed := TraceLevel(6.0, reflectionsOf(3, 8, 4), nil)
	assert.Equal(t, "mixed", mixed.Trend)
	assert.Empty(t, mixed.Adjustments)

	none := TraceLevel(6.0, nil, nil)
	assert.Equal(t, "insufficient_data", none.Trend)
	assert.Equal(t, model.LevelStandard, none.Final)
}
