//go:generate mockery --name InteractionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionRepository は質問と応答の履歴を扱います。
type InteractionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, interaction *model.Interaction) error
	// FindRecentByDocument は新しい順に最大 limit 件。limit が負なら全件。
	FindRecentByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID, limit int) ([]*model.Interaction, error)
	// FindByDocument は古い順の全件
	FindByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) ([]*model.Interaction, error)
	CountByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (int64, error)
	StatsByQuestionType(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.QuestionTypeStat, error)
	CountDistinctDocuments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	// CountByUser は期間内の件数。範囲が空なら全期間。
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) (int64, error)
	LevelDistributionByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) ([]model.AILevelStat, error)
	// FindRecentByUser は期間内を新しい順に最大 limit 件
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange, limit int) ([]*model.Interaction, error)
}

type gormInteractionRepository struct{}

func NewGormInteractionRepository() InteractionRepository {
	return &gormInteractionRepository{}
}

func (r *gormInteractionRepository) Create(ctx context.Context, tx *gorm.DB, interaction *model.Interaction) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(interaction)
	if result.Error != nil {
		logger.Error("Error creating interaction in DB",
			"error", result.Error,
			"user_id", interaction.UserID.String(),
			"document_id", interaction.DocumentID.String(),
		)
		return fmt.Errorf("gormInteractionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormInteractionRepository) FindRecentByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID, limit int) ([]*model.Interaction, error) {
	logger := middleware.GetLogger(ctx)
	var interactions []*model.Interaction
	result := db.WithContext(ctx).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions)
	if result.Error != nil {
		logger.Error("Error finding recent interactions in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormInteractionRepository.FindRecentByDocument: %w", result.Error)
	}
	return interactions, nil
}

func (r *gormInteractionRepository) FindByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) ([]*model.Interaction, error) {
	logger := middleware.GetLogger(ctx)
	var interactions []*model.Interaction
	result := db.WithContext(ctx).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Order("created_at ASC").
		Find(&interactions)
	if result.Error != nil {
		logger.Error("Error finding interactions by document in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormInteractionRepository.FindByDocument: %w", result.Error)
	}
	return interactions, nil
}

func (r *gormInteractionRepository) CountByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting interactions in DB",
			"error", result.Error,
			"document_id", documentID.String(),
		)
		return 0, fmt.Errorf("gormInteractionRepository.CountByDocument: %w", result.Error)
	}
	return count, nil
}

func (r *gormInteractionRepository) StatsByQuestionType(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.QuestionTypeStat, error) {
	logger := middleware.GetLogger(ctx)
	var stats []model.QuestionTypeStat
	result := db.WithContext(ctx).Model(&model.Interaction{}).
		Select("question_type, COUNT(*) AS count, COALESCE(AVG(response_time_ms), 0) AS avg_response_time_ms").
		Where("user_id = ?", userID).
		Group("question_type").
		Order("question_type").
		Scan(&stats)
	if result.Error != nil {
		logger.Error("Error aggregating interactions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormInteractionRepository.StatsByQuestionType: %w", result.Error)
	}
	return stats, nil
}

func (r *gormInteractionRepository) CountDistinctDocuments(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Interaction{}).
		Where("user_id = ?", userID).
		Distinct("document_id").
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting documents with interactions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormInteractionRepository.CountDistinctDocuments: %w", result.Error)
	}
	return count, nil
}

func (r *gormInteractionRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := createdWithin(db.WithContext(ctx).Model(&model.Interaction{}).Where("user_id = ?", userID), dr).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting user interactions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormInteractionRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormInteractionRepository) LevelDistributionByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) ([]model.AILevelStat, error) {
	logger := middleware.GetLogger(ctx)
	var stats []model.AILevelStat
	result := createdWithin(db.WithContext(ctx).Model(&model.Interaction{}).Where("user_id = ?", userID), dr).
		Select("ai_level, COUNT(*) AS count").
		Group("ai_level").
		Order("ai_level").
		Scan(&stats)
	if result.Error != nil {
		logger.Error("Error aggregating interaction levels in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormInteractionRepository.LevelDistributionByUser: %w", result.Error)
	}
	return stats, nil
}

func (r *gormInteractionRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange, limit int) ([]*model.Interaction, error) {
	logger := middleware.GetLogger(ctx)
	var interactions []*model.Interaction
	result := createdWithin(db.WithContext(ctx).Where("user_id = ?", userID), dr).
		Select("interaction_id", "document_id", "ai_level", "ai_response", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions)
	if result.Error != nil {
		logger.Error("Error finding recent user interactions in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormInteractionRepository.FindRecentByUser: %w", result.Error)
	}
	return interactions, nil
}
