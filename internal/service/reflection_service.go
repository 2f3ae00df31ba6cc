//go:generate mockery --name ReflectionService --output ./mocks --outpkg mocks --case=underscore
// internal/service/reflection_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository"
	"scribe_tree_writer/internal/socratic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const maxReflectionChars = 10000

// 振り返り本文に含まれてはいけない文字列 (小文字で比較)
var unsafeReflectionMarkers = []string{"<script", "<iframe", "javascript:", "onerror="}

type ReflectionService interface {
	SubmitReflection(ctx context.Context, userID uuid.UUID, req *model.SubmitReflectionRequest) (*model.ReflectionResponse, error)
	ComputeAdaptiveLevel(ctx context.Context, userID, documentID uuid.UUID, quality *float64) (*model.AdaptiveLevelResponse, error)
}

// Questioner は振り返りから最初の質問を生成する (socratic.Pipeline が実装)
type Questioner interface {
	Questions(ctx context.Context, in socratic.QuestionInput) (socratic.QuestionResult, error)
}

// scoreFunc は振り返りの採点。テストで差し替える。
type scoreFunc func(text string) (dims socratic.DimensionScores, words int, quality float64)

func scoreReflection(text string) (socratic.DimensionScores, int, float64) {
	dims := socratic.ScoreDimensions(text)
	words := socratic.WordCount(text)
	return dims, words, socratic.QualityFromDimensions(dims, words)
}

type reflectionService struct {
	score           scoreFunc
	db              *gorm.DB
	docRepo         repository.DocumentRepository
	reflectionRepo  repository.ReflectionRepository
	interactionRepo repository.InteractionRepository
	questioner      Questioner
	cfg             config.AppConfig
}

// NewReflectionService は questioner が nil なら定型の質問だけを返すサービスを作ります。
func NewReflectionService(
	db *gorm.DB,
	docRepo repository.DocumentRepository,
	reflectionRepo repository.ReflectionRepository,
	interactionRepo repository.InteractionRepository,
	questioner Questioner,
	cfg config.AppConfig,
) ReflectionService {
	return &reflectionService{
		score:           scoreReflection,
		db:              db,
		docRepo:         docRepo,
		reflectionRepo:  reflectionRepo,
		interactionRepo: interactionRepo,
		questioner:      questioner,
		cfg:             cfg,
	}
}

// ValidateReflectionText は空白のみ・長すぎる・危険なマークアップを含む振り返りを拒否します。
func ValidateReflectionText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.NewAppError("VALIDATION_ERROR", "Reflection cannot be empty", "reflection", model.ErrInvalidInput)
	}
	if utf8.RuneCountInString(trimmed) > maxReflectionChars {
		return model.NewAppError("VALIDATION_ERROR",
			fmt.Sprintf("Reflection must be at most %d characters", maxReflectionChars), "reflection", model.ErrInvalidInput)
	}
	lower := strings.ToLower(trimmed)
	for _, m := range unsafeReflectionMarkers {
		if strings.Contains(lower, m) {
			return model.NewAppError("VALIDATION_ERROR", "Reflection contains invalid content", "reflection", model.ErrInvalidInput)
		}
	}
	return nil
}

// SubmitReflection は振り返りを採点し、アクセス可否を判定します。
// 拒否された場合は何も保存しません。
func (s *reflectionService) SubmitReflection(ctx context.Context, userID uuid.UUID, req *model.SubmitReflectionRequest) (*model.ReflectionResponse, error) {
	logger := middleware.GetLogger(ctx)

	if err := ValidateReflectionText(req.Reflection); err != nil {
		return nil, err
	}
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, req.DocumentID); err != nil {
		return nil, ownershipError(err)
	}

	text := strings.TrimSpace(req.Reflection)
	dims, words, quality := s.score(text)
	decision := socratic.Decide(words, quality)

	if !decision.Granted {
		logger.Info("Reflection denied",
			"document_id", req.DocumentID.String(),
			"reason", string(decision.Reason),
			"quality_score", quality,
			"word_count", words,
		)
		return &model.ReflectionResponse{
			AccessGranted: false,
			QualityScore:  decision.QualityScore,
			Feedback:      decision.Feedback,
			Suggestions:   decision.Suggestions,
		}, nil
	}

	level := decision.Level
	reflections, interactions, err := s.loadHistory(ctx, userID, req.DocumentID)
	if err != nil {
		logger.Warn("Failed to load history, using base level", "error", err, "document_id", req.DocumentID.String())
	} else {
		trace := socratic.TraceLevel(quality, reflections, interactions)
		level = trace.Final
		if len(trace.Adjustments) > 0 {
			logger.Info("Adaptive level adjusted",
				"base", string(trace.Base),
				"final", string(trace.Final),
				"trend", trace.Trend,
				"adjustments", describeAdjustments(trace.Adjustments),
			)
		}
	}

	reflection := &model.Reflection{
		ReflectionID:   uuid.New(),
		UserID:         userID,
		DocumentID:     req.DocumentID,
		Content:        text,
		WordCount:      words,
		QualityScore:   quality,
		AILevelGranted: level,
	}
	if err := s.reflectionRepo.Create(ctx, s.db, reflection); err != nil {
		return nil, model.ErrInternalServer
	}

	questions := s.initialQuestions(ctx, req.DocumentID, text, level)

	logger.Info("Reflection granted",
		"document_id", req.DocumentID.String(),
		"quality_score", quality,
		"ai_level", string(level),
	)
	return &model.ReflectionResponse{
		AccessGranted:    true,
		QualityScore:     quality,
		AILevel:          &level,
		Feedback:         decision.Feedback,
		Suggestions:      []string{},
		InitialQuestions: questions,
		Dimensions: &model.DimensionScoresResponse{
			Depth:            dims.Depth,
			SelfAwareness:    dims.SelfAwareness,
			CriticalThinking: dims.CriticalThinking,
			GrowthMindset:    dims.GrowthMindset,
		},
		DimensionFeedback: socratic.DimensionFeedback(dims),
		ReflectionID:      &reflection.ReflectionID,
	}, nil
}

// ComputeAdaptiveLevel は履歴からAIレベルを再計算します。quality が nil なら最新の振り返りのスコアを使います。
func (s *reflectionService) ComputeAdaptiveLevel(ctx context.Context, userID, documentID uuid.UUID, quality *float64) (*model.AdaptiveLevelResponse, error) {
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, documentID); err != nil {
		return nil, ownershipError(err)
	}

	var current float64
	if quality != nil {
		// NaN は比較が常に false になるので明示的に弾く
		if q := *quality; math.IsNaN(q) || q < socratic.MinQualityScore || q > socratic.MaxQualityScore {
			return nil, model.NewAppError("VALIDATION_ERROR", "quality must be between 1.0 and 10.0", "quality", model.ErrInvalidInput)
		}
		current = *quality
	} else {
		latest, err := s.reflectionRepo.FindLatestByDocument(ctx, s.db, userID, documentID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, model.NewAppError("NO_REFLECTION", "Submit a reflection for this document first", "quality", model.ErrInvalidInput)
			}
			return nil, model.ErrInternalServer
		}
		current = latest.QualityScore
	}

	reflections, interactions, err := s.loadHistory(ctx, userID, documentID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	trace := socratic.TraceLevel(current, reflections, interactions)

	return &model.AdaptiveLevelResponse{
		DocumentID:     documentID,
		CurrentQuality: current,
		BaseLevel:      trace.Base,
		AILevel:        trace.Final,
		Adjustments:    describeAdjustments(trace.Adjustments),
	}, nil
}

// initialQuestions は振り返りと直近の版から最初の質問を生成します。
// 生成できなければレベル別の定型の質問を返します。
func (s *reflectionService) initialQuestions(ctx context.Context, documentID uuid.UUID, reflection string, level model.AILevel) []string {
	if s.questioner == nil {
		return socratic.InitialQuestions(level)
	}
	logger := middleware.GetLogger(ctx)

	in := socratic.QuestionInput{Reflection: reflection, Level: level, VersionWindow: s.cfg.VersionWindow}
	versions, err := s.docRepo.FindVersions(ctx, s.db, documentID, s.cfg.VersionWindow)
	if err != nil {
		logger.Warn("Failed to load versions for initial questions", "error", err, "document_id", documentID.String())
	} else {
		in.Versions = toVersionSnapshots(versions)
	}

	res, err := s.questioner.Questions(ctx, in)
	if err != nil || len(res.Questions) == 0 {
		logger.Warn("Falling back to static initial questions", "error", err, "document_id", documentID.String())
		return socratic.InitialQuestions(level)
	}
	logger.Debug("Initial questions generated", "tier", string(res.Tier), "failures", len(res.Failures))
	return res.Questions
}

// loadHistory は直近の振り返りと質問を並行して読み込み、古い順に並べて返します。
func (s *reflectionService) loadHistory(ctx context.Context, userID, documentID uuid.UUID) ([]socratic.ReflectionSample, []socratic.InteractionSample, error) {
	var (
		reflections  []*model.Reflection
		interactions []*model.Interaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reflections, err = s.reflectionRepo.FindRecentByDocument(gctx, s.db, userID, documentID, s.cfg.ReflectionHistoryLimit)
		return err
	})
	g.Go(func() error {
		var err error
		interactions, err = s.interactionRepo.FindRecentByDocument(gctx, s.db, userID, documentID, s.cfg.InteractionHistoryLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// リポジトリは新しい順で返すので反転する
	rs := make([]socratic.ReflectionSample, len(reflections))
	for i, r := range reflections {
		rs[len(reflections)-1-i] = socratic.ReflectionSample{QualityScore: r.QualityScore, CreatedAt: r.CreatedAt}
	}
	is := make([]socratic.InteractionSample, len(interactions))
	for i, in := range interactions {
		is[len(interactions)-1-i] = socratic.InteractionSample{UserMessage: in.UserMessage, CreatedAt: in.CreatedAt}
	}
	return rs, is, nil
}

func describeAdjustments(adjs []socratic.Adjustment) []string {
	out := make([]string, 0, len(adjs))
	for _, a := range adjs {
		out = append(out, fmt.Sprintf("%s: %s -> %s", a.Rule, a.From, a.To))
	}
	return out
}

// ownershipError は所有確認の失敗を NotFound か内部エラーに揃える
func ownershipError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("DOCUMENT_NOT_FOUND", "Document not found", "document_id", model.ErrNotFound)
	}
	return model.ErrInternalServer
}
