//go:generate mockery --name DocumentService --output ./mocks --outpkg mocks --case=underscore
// internal/service/document_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"scribe_tree_writer/internal/middleware"
	"scribe_tree_writer/internal/model"
	"scribe_tree_writer/internal/repository"
	"scribe_tree_writer/internal/socratic"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultDocumentTitle = "Untitled Document"

type DocumentService interface {
	CreateDocument(ctx context.Context, userID uuid.UUID, req *model.CreateDocumentRequest) (*model.Document, error)
	GetDocument(ctx context.Context, userID, documentID uuid.UUID) (*model.Document, error)
	ListDocuments(ctx context.Context, userID uuid.UUID) ([]*model.Document, error)
	UpdateDocument(ctx context.Context, userID, documentID uuid.UUID, req *model.UpdateDocumentRequest) (*model.Document, error)
	DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) error
	ListVersions(ctx context.Context, userID, documentID uuid.UUID) ([]*model.DocumentVersion, error)
}

type documentService struct {
	db      *gorm.DB
	docRepo repository.DocumentRepository
}

func NewDocumentService(db *gorm.DB, docRepo repository.DocumentRepository) DocumentService {
	return &documentService{db: db, docRepo: docRepo}
}

// CreateDocument は文書とバージョン1を同じトランザクションで作成します。
func (s *documentService) CreateDocument(ctx context.Context, userID uuid.UUID, req *model.CreateDocumentRequest) (*model.Document, error) {
	logger := middleware.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = defaultDocumentTitle
	}
	doc := &model.Document{
		DocumentID: uuid.New(),
		UserID:     userID,
		Title:      title,
		Content:    req.Content,
		WordCount:  socratic.WordCount(req.Content),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.docRepo.Create(ctx, tx, doc); err != nil {
			return err
		}
		return s.docRepo.CreateVersion(ctx, tx, newVersion(doc, 1))
	})
	if err != nil {
		logger.Error("Transaction failed for CreateDocument", "error", err, "user_id", userID.String())
		return nil, model.ErrInternalServer
	}
	return doc, nil
}

func (s *documentService) GetDocument(ctx context.Context, userID, documentID uuid.UUID) (*model.Document, error) {
	return s.docRepo.FindByID(ctx, s.db, userID, documentID)
}

func (s *documentService) ListDocuments(ctx context.Context, userID uuid.UUID) ([]*model.Document, error) {
	docs, err := s.docRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return docs, nil
}

// UpdateDocument は内容が変わったときだけ新しいバージョンを作ります。
func (s *documentService) UpdateDocument(ctx context.Context, userID, documentID uuid.UUID, req *model.UpdateDocumentRequest) (*model.Document, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Document

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doc, err := s.docRepo.FindByID(ctx, tx, userID, documentID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil && strings.TrimSpace(*req.Title) != "" && *req.Title != doc.Title {
			updates["title"] = strings.TrimSpace(*req.Title)
			doc.Title = strings.TrimSpace(*req.Title)
		}
		contentChanged := req.Content != nil && *req.Content != doc.Content
		if contentChanged {
			doc.Content = *req.Content
			doc.WordCount = socratic.WordCount(doc.Content)
			updates["content"] = doc.Content
			updates["word_count"] = doc.WordCount
		}
		if len(updates) == 0 {
			updated = doc
			return nil
		}

		if err := s.docRepo.Update(ctx, tx, userID, documentID, updates); err != nil {
			return err
		}
		if contentChanged {
			latest, err := s.docRepo.LatestVersionNumber(ctx, tx, documentID)
			if err != nil {
				return err
			}
			if err := s.docRepo.CreateVersion(ctx, tx, newVersion(doc, latest+1)); err != nil {
				return err
			}
		}
		updated = doc
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateDocument", "error", err, "document_id", documentID.String())
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) error {
	err := s.docRepo.Delete(ctx, s.db, userID, documentID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.ErrInternalServer
	}
	return err
}

func (s *documentService) ListVersions(ctx context.Context, userID, documentID uuid.UUID) ([]*model.DocumentVersion, error) {
	if _, err := s.docRepo.FindByID(ctx, s.db, userID, documentID); err != nil {
		return nil, err
	}
	versions, err := s.docRepo.FindVersions(ctx, s.db, documentID, 0)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return versions, nil
}

func newVersion(doc *model.Document, number int) *model.DocumentVersion {
	return &model.DocumentVersion{
		VersionID:     uuid.New(),
		DocumentID:    doc.DocumentID,
		VersionNumber: number,
		Content:       doc.Content,
		WordCount:     doc.WordCount,
	}
}
