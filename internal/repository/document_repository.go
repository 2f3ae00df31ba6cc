//go:generate mockery --name DocumentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DocumentRepository は文書とそのバージョンの永続化を扱います。
// 文書の検索は常に所有者 (user_id) で絞り込みます。
type DocumentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, doc *model.Document) error
	FindByID(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (*model.Document, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Document, error)
	Update(ctx context.Context, tx *gorm.DB, userID, documentID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, documentID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	// SummarizeByUser は期間内に作成した文書の件数と語数の合計
	SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) (model.WritingTotals, error)
	// FindCreatedByUser は期間内に作成した文書を古い順に返す。本文は読み込まない。
	FindCreatedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) ([]*model.Document, error)

	CreateVersion(ctx context.Context, tx *gorm.DB, version *model.DocumentVersion) error
	LatestVersionNumber(ctx context.Context, db *gorm.DB, documentID uuid.UUID) (int, error)
	// FindVersions は新しい順。limit が 0 以下なら全件。
	FindVersions(ctx context.Context, db *gorm.DB, documentID uuid.UUID, limit int) ([]*model.DocumentVersion, error)
}

type gormDocumentRepository struct{}

func NewGormDocumentRepository() DocumentRepository {
	return &gormDocumentRepository{}
}

func (r *gormDocumentRepository) Create(ctx context.Context, tx *gorm.DB, doc *model.Document) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(doc)
	if result.Error != nil {
		logger.Error("Error creating document in DB",
			"error", result.Error,
			"user_id", doc.UserID.String(),
		)
		return fmt.Errorf("gormDocumentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormDocumentRepository) FindByID(ctx context.Context, db *gorm.DB, userID, documentID uuid.UUID) (*model.Document, error) {
	logger := middleware.GetLogger(ctx)
	var doc model.Document
	result := db.WithContext(ctx).Where("user_id = ? AND document_id = ?", userID, documentID).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding document by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormDocumentRepository.FindByID: %w", result.Error)
	}
	return &doc, nil
}

func (r *gormDocumentRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Document, error) {
	logger := middleware.GetLogger(ctx)
	var docs []*model.Document
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("updated_at DESC").Find(&docs)
	if result.Error != nil {
		logger.Error("Error finding documents by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDocumentRepository.FindByUser: %w", result.Error)
	}
	return docs, nil
}

func (r *gormDocumentRepository) Update(ctx context.Context, tx *gorm.DB, userID, documentID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Document{}).Where("user_id = ? AND document_id = ?", userID, documentID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating document in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return fmt.Errorf("gormDocumentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は論理削除
func (r *gormDocumentRepository) Delete(ctx context.Context, tx *gorm.DB, userID, documentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND document_id = ?", userID, documentID).Delete(&model.Document{})
	if result.Error != nil {
		logger.Error("Error deleting document in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"document_id", documentID.String(),
		)
		return fmt.Errorf("gormDocumentRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDocumentRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Document{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting documents in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormDocumentRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

func (r *gormDocumentRepository) SummarizeByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) (model.WritingTotals, error) {
	logger := middleware.GetLogger(ctx)
	var totals model.WritingTotals
	result := createdWithin(db.WithContext(ctx).Model(&model.Document{}).Where("user_id = ?", userID), dr).
		Select("COUNT(*) AS documents, COALESCE(SUM(word_count), 0) AS words").
		Scan(&totals)
	if result.Error != nil {
		logger.Error("Error summarizing documents in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return model.WritingTotals{}, fmt.Errorf("gormDocumentRepository.SummarizeByUser: %w", result.Error)
	}
	return totals, nil
}

func (r *gormDocumentRepository) FindCreatedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, dr model.DateRange) ([]*model.Document, error) {
	logger := middleware.GetLogger(ctx)
	var docs []*model.Document
	result := createdWithin(db.WithContext(ctx).Where("user_id = ?", userID), dr).
		Select("document_id", "user_id", "word_count", "created_at").
		Order("created_at ASC").
		Find(&docs)
	if result.Error != nil {
		logger.Error("Error finding created documents in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormDocumentRepository.FindCreatedByUser: %w", result.Error)
	}
	return docs, nil
}

func (r *gormDocumentRepository) CreateVersion(ctx context.Context, tx *gorm.DB, version *model.DocumentVersion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(version)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate version number on create document version",
				"error", result.Error,
				"document_id", version.DocumentID.String(),
				"version_number", version.VersionNumber,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating document version in DB",
			"error", result.Error,
			"document_id", version.DocumentID.String(),
		)
		return fmt.Errorf("gormDocumentRepository.CreateVersion: %w", result.Error)
	}
	return nil
}

// LatestVersionNumber はバージョンが1つも無ければ 0
func (r *gormDocumentRepository) LatestVersionNumber(ctx context.Context, db *gorm.DB, documentID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var latest int
	result := db.WithContext(ctx).Model(&model.DocumentVersion{}).
		Where("document_id = ?", documentID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&latest)
	if result.Error != nil {
		logger.Error("Error finding latest version number in DB",
			"error", result.Error,
			"document_id", documentID.String(),
		)
		return 0, fmt.Errorf("gormDocumentRepository.LatestVersionNumber: %w", result.Error)
	}
	return latest, nil
}

func (r *gormDocumentRepository) FindVersions(ctx context.Context, db *gorm.DB, documentID uuid.UUID, limit int) ([]*model.DocumentVersion, error) {
	logger := middleware.GetLogger(ctx)
	var versions []*model.DocumentVersion
	query := db.WithContext(ctx).Where("document_id = ?", documentID).Order("version_number DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&versions); result.Error != nil {
		logger.Error("Error finding document versions in DB",
			"error", result.Error,
			"document_id", documentID.String(),
		)
		return nil, fmt.Errorf("gormDocumentRepository.FindVersions: %w", result.Error)
	}
	return versions, nil
}
