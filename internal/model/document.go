// internal/model/document.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document は学生が執筆中の文書
type Document struct {
	DocumentID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"document_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title      string         `gorm:"not null;default:'Untitled Document'" json:"title"`
	Content    string         `gorm:"type:text" json:"content"`
	WordCount  int            `gorm:"not null;default:0" json:"word_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Versions []DocumentVersion `gorm:"foreignKey:DocumentID;references:DocumentID" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentVersion は内容が変わるたびに作られるスナップショット
type DocumentVersion struct {
	VersionID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"version_id"`
	DocumentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_document_version" json:"document_id"`
	VersionNumber int       `gorm:"not null;uniqueIndex:uq_document_version" json:"version_number"`
	Content       string    `gorm:"type:text" json:"content"`
	WordCount     int       `gorm:"not null;default:0" json:"word_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func (DocumentVersion) TableName() string {
	return "document_versions"
}

// 文書作成リクエストDTO
type CreateDocumentRequest struct {
	Title   string `json:"title" validate:"omitempty,max=200"`
	Content string `json:"content" validate:"max=100000"`
}

// 文書更新（部分）リクエストDTO
type UpdateDocumentRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=100000"`
}
