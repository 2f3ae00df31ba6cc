//go:generate mockery --name PartnerService --output ./mocks --outpkg mocks --case=underscore
// internal/service/partner_service.go
package service

import (
	"context"
	"errors"
	"time"

	"scribe_tree_writer/internal/config"
	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository"
	"scribe_tree_writer/internal/socratic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MsgServiceUnavailable は生成が全段階で失敗したときに学生へ見せる文言
const MsgServiceUnavailable = "AI service is temporarily unavailable. Please try again later."

// Responder は問いかけを生成する (socratic.Pipeline が実装)
type Responder interface {
	Respond(ctx context.Context, in socratic.PromptInput) (socratic.Result, error)
}

type PartnerService interface {
	AskQuestion(ctx context.Context, userID uuid.UUID, req *model.AskRequest) (*model.AskResponse, error)
	ConversationHistory(ctx context.Context, userID, documentID uuid.UUID) (*model.ConversationResponse, error)
	ValidateResponse(ctx context.Context, text string) model.ValidateResponseResult
}

type partnerService struct {
	db              *gorm.DB
	docRepo         repository.DocumentRepository
	reflectionRepo  repository.ReflectionRepository
	interactionRepo repository.InteractionRepository
	responder       Responder
	validator       *socratic.Validator
	cfg             config.AppConfig
}

func NewPartnerService(
	db *gorm.DB,
	docRepo repository.DocumentRepository,
	reflectionRepo repository.ReflectionRepository,
	interactionRepo repository.InteractionRepository,
	responder Responder,
	validator *socratic.Validator,
	cfg config.AppConfig,
) PartnerService {
	if validator == nil {
		validator = socratic.DefaultValidator()
	}
	return &partnerService{
		db:              db,
		docRepo:         docRepo,
		reflectionRepo:  reflectionRepo,
		interactionRepo: interactionRepo,
		responder:       responder,
		validator:       validator,
		cfg:             cfg,
	}
}

// AskQuestion は会話履歴と文書の版を添えて問いかけを生成し、やり取りを記録します。
func (s *partnerService) AskQuestion(ctx context.Context, userID uuid.UUID, req *model.AskRequest) (*model.AskResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !req.AILevel.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "ai_level must be one of basic, standard, advanced", "ai_level", model.ErrInvalidInput)
	}
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, req.DocumentID); err != nil {
		return nil, ownershipError(err)
	}

	var (
		history      []*model.Interaction
		versions     []*model.DocumentVersion
		reflectionID *uuid.UUID
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.interactionRepo.FindRecentByDocument(gctx, s.db, userID, req.DocumentID, s.cfg.ConversationWindow)
		return err
	})
	g.Go(func() error {
		var err error
		versions, err = s.docRepo.FindVersions(gctx, s.db, req.DocumentID, s.cfg.VersionWindow)
		return err
	})
	g.Go(func() error {
		latest, err := s.reflectionRepo.FindLatestByDocument(gctx, s.db, userID, req.DocumentID)
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		reflectionID = &latest.ReflectionID
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("Failed to load conversation context", "error", err, "document_id", req.DocumentID.String())
		return nil, model.ErrInternalServer
	}

	in := socratic.PromptInput{
		Question:           req.Question,
		Context:            req.Context,
		Level:              req.AILevel,
		History:            toHistoryTurns(history),
		Versions:           toVersionSnapshots(versions),
		ConversationWindow: s.cfg.ConversationWindow,
		VersionWindow:      s.cfg.VersionWindow,
	}

	start := time.Now()
	result, err := s.responder.Respond(ctx, in)
	elapsed := time.Since(start)
	if err != nil {
		if !errors.Is(err, model.ErrServiceUnavailable) {
			logger.Error("Failed to generate response", "error", err)
		}
		return nil, model.NewAppError("AI_SERVICE_UNAVAILABLE", MsgServiceUnavailable, "", model.ErrServiceUnavailable)
	}
	if len(result.Failures) > 0 {
		logger.Warn("Response generated after fallback",
			"tier", string(result.Tier),
			"failed_tiers", len(result.Failures),
		)
	}

	followUps := socratic.FollowUpPrompts(req.AILevel)
	interaction := &model.Interaction{
		InteractionID:   uuid.New(),
		UserID:          userID,
		DocumentID:      req.DocumentID,
		ReflectionID:    reflectionID,
		UserMessage:     req.Question,
		AIResponse:      result.Text,
		AILevel:         req.AILevel,
		QuestionType:    result.QuestionType,
		ResponseTimeMs:  int(elapsed.Milliseconds()),
		GenerationTier:  string(result.Tier),
		FollowUpPrompts: followUps,
	}
	if err := s.interactionRepo.Create(ctx, s.db, interaction); err != nil {
		return nil, model.ErrInternalServer
	}

	logger.Info("AI interaction recorded",
		"document_id", req.DocumentID.String(),
		"question_type", string(result.QuestionType),
		"tier", string(result.Tier),
		"response_time_ms", interaction.ResponseTimeMs,
	)
	return &model.AskResponse{
		Response:        result.Text,
		FollowUpPrompts: followUps,
		QuestionType:    result.QuestionType,
	}, nil
}

func (s *partnerService) ConversationHistory(ctx context.Context, userID, documentID uuid.UUID) (*model.ConversationResponse, error) {
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, documentID); err != nil {
		return nil, ownershipError(err)
	}
	interactions, err := s.interactionRepo.FindByDocument(ctx, s.db, userID, documentID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	if interactions == nil {
		interactions = []*model.Interaction{}
	}
	return &model.ConversationResponse{DocumentID: documentID, Conversations: interactions}, nil
}

func (s *partnerService) ValidateResponse(_ context.Context, text string) model.ValidateResponseResult {
	v := s.validator.Validate(text)
	return model.ValidateResponseResult{IsValid: v.IsValid, Reason: v.Reason}
}

func toHistoryTurns(interactions []*model.Interaction) []socratic.HistoryTurn {
	turns := make([]socratic.HistoryTurn, 0, len(interactions))
	for _, in := range interactions {
		turns = append(turns, socratic.HistoryTurn{
			UserMessage: in.UserMessage,
			AIResponse:  in.AIResponse,
			CreatedAt:   in.CreatedAt,
		})
	}
	return turns
}

func toVersionSnapshots(versions []*model.DocumentVersion) []socratic.VersionSnapshot {
	out := make([]socratic.VersionSnapshot, 0, len(versions))
	for _, v := range versions {
		out = append(out, socratic.VersionSnapshot{
			VersionNumber: v.VersionNumber,
			Content:       v.Content,
			CreatedAt:     v.CreatedAt,
		})
	}
	return out
}
