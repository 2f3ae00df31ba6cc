package model

import (
	"time"

	"github.com/google/uuid"
)

// DateRange は作成日時での絞り込み。nil の端は制限なし。
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ReflectionQualityQuery は振り返り分析の絞り込み条件
type ReflectionQualityQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int // 0 はページングなし
	Offset    int
}

func (q ReflectionQualityQuery) Range() DateRange {
	return DateRange{StartDate: q.StartDate, EndDate: q.EndDate}
}

type ReflectionQualityPoint struct {
	ReflectionID uuid.UUID `json:"id"`
	Date         time.Time `json:"date"`
	QualityScore float64   `json:"quality_score"`
	WordCount    int       `json:"word_count"`
	AILevel      AILevel   `json:"ai_level"`
}

type ReflectionQualityResponse struct {
	Data             []ReflectionQualityPoint `json:"data"`
	AverageQuality   float64                  `json:"average_quality"`
	TotalReflections int64                    `json:"total_reflections"`
	HasMore          *bool                    `json:"has_more,omitempty"`
	Limit            *int                     `json:"limit,omitempty"`
	Offset           *int                     `json:"offset,omitempty"`
}

type ReflectionHistoryEntry struct {
	QualityScore float64   `json:"quality_score"`
	AILevel      AILevel   `json:"ai_level"`
	CreatedAt    time.Time `json:"created_at"`
}

type DocumentAnalyticsResponse struct {
	DocumentID            uuid.UUID                `json:"document_id"`
	TotalAIInteractions   int64                    `json:"total_ai_interactions"`
	ReflectionCount       int                      `json:"reflection_count"`
	LatestReflectionScore *float64                 `json:"latest_reflection_score"`
	ReflectionHistory     []ReflectionHistoryEntry `json:"reflection_history"`
}

// QuestionTypeStat は質問タイプ別の集計行
type QuestionTypeStat struct {
	QuestionType      QuestionType `json:"-"`
	Count             int64        `json:"count"`
	AvgResponseTimeMs float64      `json:"avg_response_time_ms"`
}

type LearningMetricsResponse struct {
	ReflectionQualityTrend string                      `json:"reflection_quality_trend"`
	AverageReflectionScore float64                     `json:"average_reflection_score"`
	TotalReflections       int                         `json:"total_reflections"`
	AIDependencyRatio      float64                     `json:"ai_dependency_ratio"`
	InteractionBreakdown   map[string]QuestionTypeStat `json:"interaction_breakdown"`
	TotalAIInteractions    int64                       `json:"total_ai_interactions"`
	IndependenceScore      float64                     `json:"independence_score"`
}

// WritingTotals は期間内に作成した文書の件数と語数の合計
type WritingTotals struct {
	Documents int64
	Words     int64
}

// DailyProgress は作成日 (UTC) ごとの集計
type DailyProgress struct {
	Date      string `json:"date"`
	Documents int    `json:"documents"`
	Words     int    `json:"words"`
}

type WritingProgressResponse struct {
	DocumentsCreated        int64           `json:"documents_created"`
	TotalWords              int64           `json:"total_words"`
	AverageWordsPerDocument float64         `json:"average_words_per_document"`
	DailyProgress           []DailyProgress `json:"daily_progress"`
}

// AILevelStat はAIレベル別の件数
type AILevelStat struct {
	AILevel AILevel
	Count   int64
}

type InteractionPattern struct {
	Date           time.Time `json:"date"`
	AILevel        AILevel   `json:"ai_level"`
	ResponseLength int       `json:"response_length"`
}

type AIInteractionsResponse struct {
	TotalInteractions   int64                `json:"total_interactions"`
	AILevelDistribution map[string]int64     `json:"ai_level_distribution"`
	InteractionPatterns []InteractionPattern `json:"interaction_patterns"`
}

type LearningInsightsResponse struct {
	ReflectionQualityTrend   string   `json:"reflection_quality_trend"`
	EngagementLevel          string   `json:"engagement_level"`
	Strengths                []string `json:"strengths"`
	AreasForGrowth           []string `json:"areas_for_growth"`
	AverageReflectionQuality float64  `json:"average_reflection_quality"`
	TotalReflections         int      `json:"total_reflections"`
	TotalAIInteractions      int64    `json:"total_ai_interactions"`
}
