//go:generate mockery --name ReflectionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReflectionRepository は振り返りの永続化。振り返りは作成のみで更新しない。
type ReflectionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reflection *model.Reflection) error
	// FindRecentByDocument は新しい順に最大 limit 件。limit が負なら全件。
	FindRecentByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID, limit int) ([]*model.Reflection, error)
	FindLatestByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (*model.Reflection, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, q model.ReflectionQualityQuery) ([]*model.Reflection, error)
	SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, q model.ReflectionQualityQuery) (count int64, avg float64, err error)
	// FindScoresByUser は古い順の全件
	FindScoresByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reflection, error)
	// FindInRange は期間内の振り返りを古い順に返す。本文は読み込まない。
	FindInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, r model.DateRange) ([]*model.Reflection, error)
}

type gormReflectionRepository struct{}

func NewGormReflectionRepository() ReflectionRepository {
	return &gormReflectionRepository{}
}

func (r *gormReflectionRepository) Create(ctx context.Context, tx *gorm.DB, reflection *model.Reflection) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(reflection)
	if result.Error != nil {
		logger.Error("Error creating reflection in DB",
			"error", result.Error,
			"user_id", reflection.UserID.String(),
			"document_id", reflection.DocumentID.String(),
		)
		return fmt.Errorf("gormReflectionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReflectionRepository) FindRecentByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID, limit int) ([]*model.Reflection, error) {
	logger := middleware.GetLogger(ctx)
	var reflections []*model.Reflection
	result := db.WithContext(ctx).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reflections)
	if result.Error != nil {
		logger.Error("Error finding recent reflections in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormReflectionRepository.FindRecentByDocument: %w", result.Error)
	}
	return reflections, nil
}

func (r *gormReflectionRepository) FindLatestByDocument(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (*model.Reflection, error) {
	logger := middleware.GetLogger(ctx)
	var reflection model.Reflection
	result := db.WithContext(ctx).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Order("created_at DESC").
		First(&reflection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding latest reflection in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormReflectionRepository.FindLatestByDocument: %w", result.Error)
	}
	return &reflection, nil
}

func (r *gormReflectionRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, q model.ReflectionQualityQuery) ([]*model.Reflection, error) {
	logger := middleware.GetLogger(ctx)
	var reflections []*model.Reflection
	query := userReflections(db.WithContext(ctx), userID, q.Range()).Order("created_at DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}
	if result := query.Find(&reflections); result.Error != nil {
		logger.Error("Error finding reflections by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormReflectionRepository.FindByUser: %w", result.Error)
	}
	return reflections, nil
}

func (r *gormReflectionRepository) SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, q model.ReflectionQualityQuery) (int64, float64, error) {
	logger := middleware.GetLogger(ctx)
	var row struct {
		Total   int64
		Average float64
	}
	result := userReflections(db.WithContext(ctx).Model(&model.Reflection{}), userID, q.Range()).
		Select("COUNT(*) AS total, COALESCE(AVG(quality_score), 0) AS average").
		Scan(&row)
	if result.Error != nil {
		logger.Error("Error summarizing reflections in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, 0, fmt.Errorf("gormReflectionRepository.SummarizeByUser: %w", result.Error)
	}
	return row.Total, row.Average, nil
}

func (r *gormReflectionRepository) FindScoresByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reflection, error) {
	logger := middleware.GetLogger(ctx)
	var reflections []*model.Reflection
	result := db.WithContext(ctx).
		Select("reflection_id", "document_id", "quality_score", "ai_level_granted", "created_at").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&reflections)
	if result.Error != nil {
		logger.Error("Error finding reflection scores in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormReflectionRepository.FindScoresByUser: %w", result.Error)
	}
	return reflections, nil
}

func (r *gormReflectionRepository) FindInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) ([]*model.Reflection, error) {
	logger := middleware.GetLogger(ctx)
	var reflections []*model.Reflection
	result := userReflections(db.WithContext(ctx), userID, dr).
		Select("reflection_id", "document_id", "word_count", "quality_score", "ai_level_granted", "created_at").
		Order("created_at ASC").
		Find(&reflections)
	if result.Error != nil {
		logger.Error("Error finding reflections in range in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormReflectionRepository.FindInRange: %w", result.Error)
	}
	return reflections, nil
}

// userReflections は所有者と期間の条件を付ける
func userReflections(db *gorm.DB, userID uuid.UUID, dr model.DateRange) *gorm.DB {
	return createdWithin(db.Where("user_id = ?", userID), dr)
}

// createdWithin は created_at の範囲条件を付ける
func createdWithin(query *gorm.DB, dr model.DateRange) *gorm.DB {
	if dr.StartDate != nil {
		query = query.Where("created_at >= ?", *dr.StartDate)
	}
	if dr.EndDate != nil {
		query = query.Where("created_at <= ?", *dr.EndDate)
	}
	return query
}
