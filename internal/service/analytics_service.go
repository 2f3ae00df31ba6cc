//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
// internal/service/analytics_service.go
package service

import (
	"context"
	"math"
	"strings"
	"time"

	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	maxAnalyticsLimit = 100
	// maxInteractionPatterns は ai-interactions で返す直近のやり取りの件数
	maxInteractionPatterns = 50

	TrendImproving        = "improving"
	TrendStable           = "stable"
	TrendDeclining        = "declining"
	TrendInsufficientData = "insufficient_data"
	TrendNoData           = "no_data"

	EngagementHigh   = "high"
	EngagementMedium = "medium"
	EngagementLow    = "low"
)

// learning-insights の強みと伸びしろ
const (
	InsightDeepReflections    = "Deep, thoughtful reflections"
	InsightComprehensive      = "Comprehensive written responses"
	InsightConsistent         = "Consistent engagement with the platform"
	InsightActiveAIUse        = "Active use of AI guidance"
	GrowthFirstReflection     = "Begin by writing your first reflection"
	GrowthDeeperReflection    = "Develop deeper reflection practices"
	GrowthExpandThoughts      = "Expand on your thoughts in more detail"
	GrowthReflectMoreFrequent = "Increase frequency of reflections"
)

const (
	insightQualityThreshold = 7.0
	insightLengthThreshold  = 150
	insightTrendMargin      = 0.5
	insightTrendWindow      = 3
	engagementHighDays      = 5
	engagementMediumDays    = 3
	// やり取りが振り返りの2倍を超えたら積極的に使っているとみなす
	activeAIUseReflectionRatio = 2
)

type AnalyticsService interface {
	ReflectionQuality(ctx context.Context, userID uuid.UUID, q model.ReflectionQualityQuery) (*model.ReflectionQualityResponse, error)
	DocumentAnalytics(ctx context.Context, userID, documentID uuid.UUID) (*model.DocumentAnalyticsResponse, error)
	LearningMetrics(ctx context.Context, userID uuid.UUID) (*model.LearningMetricsResponse, error)
	WritingProgress(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.WritingProgressResponse, error)
	AIInteractions(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.AIInteractionsResponse, error)
	LearningInsights(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.LearningInsightsResponse, error)
}

type analyticsService struct {
	db              *gorm.DB
	docRepo         repository.DocumentRepository
	reflectionRepo  repository.ReflectionRepository
	interactionRepo repository.InteractionRepository
}

func NewAnalyticsService(
	db *gorm.DB,
	docRepo repository.DocumentRepository,
	reflectionRepo repository.ReflectionRepository,
	interactionRepo repository.InteractionRepository,
) AnalyticsService {
	return &analyticsService{
		db:              db,
		docRepo:         docRepo,
		reflectionRepo:  reflectionRepo,
		interactionRepo: interactionRepo,
	}
}

// ReflectionQuality は期間内の振り返りスコアを新しい順に返します。Limit が 0 ならページングしません。
func (s *analyticsService) ReflectionQuality(ctx context.Context, userID uuid.UUID, q model.ReflectionQualityQuery) (*model.ReflectionQualityResponse, error) {
	if err := validateDateRange(q.Range()); err != nil {
		return nil, err
	}
	if q.Limit < 0 || q.Limit > maxAnalyticsLimit {
		return nil, model.NewAppError("VALIDATION_ERROR", "limit must be between 1 and 100", "limit", model.ErrInvalidInput)
	}
	if q.Offset < 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "offset must not be negative", "offset", model.ErrInvalidInput)
	}

	var (
		reflections []*model.Reflection
		total       int64
		avg         float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, avg, err = s.reflectionRepo.SummarizeByUser(gctx, s.db, userID, q)
		return err
	})
	g.Go(func() error {
		var err error
		reflections, err = s.reflectionRepo.FindByUser(gctx, s.db, userID, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	data := make([]model.ReflectionQualityPoint, 0, len(reflections))
	for _, r := range reflections {
		data = append(data, model.ReflectionQualityPoint{
			ReflectionID: r.ReflectionID,
			Date:         r.CreatedAt,
			QualityScore: r.QualityScore,
			WordCount:    r.WordCount,
			AILevel:      r.AILevelGranted,
		})
	}
	resp := &model.ReflectionQualityResponse{
		Data:             data,
		AverageQuality:   round2(avg),
		TotalReflections: total,
	}
	if q.Limit > 0 {
		hasMore := int64(q.Offset+q.Limit) < total
		limit, offset := q.Limit, q.Offset
		resp.HasMore = &hasMore
		resp.Limit = &limit
		resp.Offset = &offset
	}
	return resp, nil
}

func (s *analyticsService) DocumentAnalytics(ctx context.Context, userID, documentID uuid.UUID) (*model.DocumentAnalyticsResponse, error) {
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, documentID); err != nil {
		return nil, ownershipError(err)
	}

	var (
		count       int64
		reflections []*model.Reflection
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.interactionRepo.CountByDocument(gctx, s.db, userID, documentID)
		return err
	})
	g.Go(func() error {
		var err error
		reflections, err = s.reflectionRepo.FindRecentByDocument(gctx, s.db, userID, documentID, -1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	resp := &model.DocumentAnalyticsResponse{
		DocumentID:          documentID,
		TotalAIInteractions: count,
		ReflectionCount:     len(reflections),
		ReflectionHistory:   make([]model.ReflectionHistoryEntry, 0, len(reflections)),
	}
	if len(reflections) > 0 {
		latest := reflections[0].QualityScore
		resp.LatestReflectionScore = &latest
	}
	for _, r := range reflections {
		resp.ReflectionHistory = append(resp.ReflectionHistory, model.ReflectionHistoryEntry{
			QualityScore: r.QualityScore,
			AILevel:      r.AILevelGranted,
			CreatedAt:    r.CreatedAt,
		})
	}
	return resp, nil
}

// LearningMetrics は振り返りの推移とAIへの依存度をまとめます。
func (s *analyticsService) LearningMetrics(ctx context.Context, userID uuid.UUID) (*model.LearningMetricsResponse, error) {
	var (
		reflections   []*model.Reflection
		stats         []model.QuestionTypeStat
		totalDocs     int64
		docsWithAIUse int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reflections, err = s.reflectionRepo.FindScoresByUser(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.interactionRepo.StatsByQuestionType(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalDocs, err = s.docRepo.CountByUser(gctx, s.db, userID)
		return err
	})
	g.Go(func() error {
		var err error
		docsWithAIUse, err = s.interactionRepo.CountDistinctDocuments(gctx, s.db, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	scores := make([]float64, len(reflections))
	for i, r := range reflections {
		scores[i] = r.QualityScore
	}

	var ratio float64
	if totalDocs > 0 {
		ratio = float64(docsWithAIUse) / float64(totalDocs)
	}

	breakdown := make(map[string]model.QuestionTypeStat, len(stats))
	var totalInteractions int64
	for _, st := range stats {
		breakdown[string(st.QuestionType)] = st
		totalInteractions += st.Count
	}

	return &model.LearningMetricsResponse{
		ReflectionQualityTrend: qualityTrend(scores),
		AverageReflectionScore: average(scores),
		TotalReflections:       len(scores),
		AIDependencyRatio:      ratio,
		InteractionBreakdown:   breakdown,
		TotalAIInteractions:    totalInteractions,
		IndependenceScore:      math.Max(0, 1-ratio) * 10,
	}, nil
}

// WritingProgress は期間内に作成した文書の件数と語数を日別にまとめます。
func (s *analyticsService) WritingProgress(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.WritingProgressResponse, error) {
	if err := validateDateRange(r); err != nil {
		return nil, err
	}

	var (
		totals model.WritingTotals
		docs   []*model.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.docRepo.SummarizeByUser(gctx, s.db, userID, r)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.docRepo.FindCreatedByUser(gctx, s.db, userID, r)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	resp := &model.WritingProgressResponse{
		DocumentsCreated: totals.Documents,
		TotalWords:       totals.Words,
		DailyProgress:    dailyProgress(docs),
	}
	if totals.Documents > 0 {
		resp.AverageWordsPerDocument = round2(float64(totals.Words) / float64(totals.Documents))
	}
	return resp, nil
}

// AIInteractions は期間内のやり取りをAIレベル別に数え、直近のやり取りの応答語数を返します。
func (s *analyticsService) AIInteractions(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.AIInteractionsResponse, error) {
	if err := validateDateRange(r); err != nil {
		return nil, err
	}

	var (
		total        int64
		levels       []model.AILevelStat
		interactions []*model.Interaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.interactionRepo.CountByUser(gctx, s.db, userID, r)
		return err
	})
	g.Go(func() error {
		var err error
		levels, err = s.interactionRepo.LevelDistributionByUser(gctx, s.db, userID, r)
		return err
	})
	g.Go(func() error {
		var err error
		interactions, err = s.interactionRepo.FindRecentByUser(gctx, s.db, userID, r, maxInteractionPatterns)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	// 3レベルは 0 件でも必ず返す
	distribution := map[string]int64{
		string(model.LevelBasic):    0,
		string(model.LevelStandard): 0,
		string(model.LevelAdvanced): 0,
	}
	for _, l := range levels {
		if _, ok := distribution[string(l.AILevel)]; ok {
			distribution[string(l.AILevel)] = l.Count
		}
	}

	patterns := make([]model.InteractionPattern, 0, len(interactions))
	for _, in := range interactions {
		patterns = append(patterns, model.InteractionPattern{
			Date:           in.CreatedAt,
			AILevel:        in.AILevel,
			ResponseLength: len(strings.Fields(in.AIResponse)),
		})
	}

	return &model.AIInteractionsResponse{
		TotalInteractions:   total,
		AILevelDistribution: distribution,
		InteractionPatterns: patterns,
	}, nil
}

// LearningInsights は期間内の振り返りから傾向と取り組み度合いを判定し、強みと伸びしろを挙げます。
// やり取りの件数は期間に関係なく全件で数えます。
func (s *analyticsService) LearningInsights(ctx context.Context, userID uuid.UUID, r model.DateRange) (*model.LearningInsightsResponse, error) {
	if err := validateDateRange(r); err != nil {
		return nil, err
	}

	var (
		reflections []*model.Reflection
		aiCount     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reflections, err = s.reflectionRepo.FindInRange(gctx, s.db, userID, r)
		return err
	})
	g.Go(func() error {
		var err error
		aiCount, err = s.interactionRepo.CountByUser(gctx, s.db, userID, model.DateRange{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, model.ErrInternalServer
	}

	resp := &model.LearningInsightsResponse{
		Strengths:           []string{},
		AreasForGrowth:      []string{},
		TotalReflections:    len(reflections),
		TotalAIInteractions: aiCount,
	}
	if len(reflections) == 0 {
		resp.ReflectionQualityTrend = TrendNoData
		resp.EngagementLevel = EngagementLow
		resp.AreasForGrowth = append(resp.AreasForGrowth, GrowthFirstReflection)
		return resp, nil
	}

	scores := make([]float64, len(reflections))
	lengths := make([]float64, len(reflections))
	days := make(map[string]struct{})
	for i, ref := range reflections {
		scores[i] = ref.QualityScore
		lengths[i] = float64(ref.WordCount)
		days[ref.CreatedAt.UTC().Format(time.DateOnly)] = struct{}{}
	}

	avgQuality := average(scores)
	resp.AverageReflectionQuality = round2(avgQuality)
	resp.ReflectionQualityTrend = insightTrend(scores)
	resp.EngagementLevel = engagementLevel(len(days))

	if avgQuality >= insightQualityThreshold {
		resp.Strengths = append(resp.Strengths, InsightDeepReflections)
	} else {
		resp.AreasForGrowth = append(resp.AreasForGrowth, GrowthDeeperReflection)
	}
	if average(lengths) >= insightLengthThreshold {
		resp.Strengths = append(resp.Strengths, InsightComprehensive)
	} else {
		resp.AreasForGrowth = append(resp.AreasForGrowth, GrowthExpandThoughts)
	}
	if resp.EngagementLevel == EngagementHigh {
		resp.Strengths = append(resp.Strengths, InsightConsistent)
	} else {
		resp.AreasForGrowth = append(resp.AreasForGrowth, GrowthReflectMoreFrequent)
	}
	if aiCount > int64(len(reflections)*activeAIUseReflectionRatio) {
		resp.Strengths = append(resp.Strengths, InsightActiveAIUse)
	}
	return resp, nil
}

// validateDateRange は終了日が開始日より前の範囲を拒否する
func validateDateRange(r model.DateRange) error {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return model.NewAppError("VALIDATION_ERROR", "End date must be after start date", "end_date", model.ErrInvalidInput)
	}
	return nil
}

// dailyProgress は作成日 (UTC) ごとに件数と語数をまとめる。docs は古い順。
func dailyProgress(docs []*model.Document) []model.DailyProgress {
	out := make([]model.DailyProgress, 0)
	for _, d := range docs {
		day := d.CreatedAt.UTC().Format(time.DateOnly)
		if n := len(out); n > 0 && out[n-1].Date == day {
			out[n-1].Documents++
			out[n-1].Words += d.WordCount
			continue
		}
		out = append(out, model.DailyProgress{Date: day, Documents: 1, Words: d.WordCount})
	}
	return out
}

// insightTrend は古い側と新しい側の平均を 0.5 の幅で比べる。
// 6件以下は半分に分け、それより多いときは先頭3件と末尾3件を使う。scores は古い順。
func insightTrend(scores []float64) string {
	n := len(scores)
	if n < insightTrendWindow {
		return TrendInsufficientData
	}
	older, recent := scores[:n/2], scores[n/2:]
	if n > 2*insightTrendWindow {
		older, recent = scores[:insightTrendWindow], scores[n-insightTrendWindow:]
	}
	o, r := average(older), average(recent)
	switch {
	case r > o+insightTrendMargin:
		return TrendImproving
	case r < o-insightTrendMargin:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func engagementLevel(activeDays int) string {
	switch {
	case activeDays >= engagementHighDays:
		return EngagementHigh
	case activeDays >= engagementMediumDays:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// qualityTrend は前半と後半の平均を比べる。scores は古い順。
func qualityTrend(scores []float64) string {
	if len(scores) < 2 {
		return TrendInsufficientData
	}
	mid := len(scores) / 2
	if average(scores[mid:]) > average(scores[:mid]) {
		return TrendImproving
	}
	return TrendStable
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
