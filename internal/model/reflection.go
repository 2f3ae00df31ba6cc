// internal/model/reflection.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Reflection はAI利用前に提出された振り返り。作成後は更新しない。
type Reflection struct {
	ReflectionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"reflection_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_reflection_owner" json:"-"`
	DocumentID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reflection_owner" json:"document_id"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	WordCount      int       `gorm:"not null" json:"word_count"`
	QualityScore   float64   `gorm:"not null" json:"quality_score"`
	AILevelGranted AILevel   `gorm:"type:varchar(20);not null" json:"ai_level"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (Reflection) TableName() string {
	return "reflections"
}

// SubmitReflectionRequest は振り返り送信リクエストのDTO
type SubmitReflectionRequest struct {
	DocumentID uuid.UUID `json:"document_id" validate:"required"`
	Reflection string    `json:"reflection" validate:"required,min=1,max=10000"`
}

// DimensionScoresResponse は振り返りの4次元スコア
type DimensionScoresResponse struct {
	Depth            int `json:"depth"`
	SelfAwareness    int `json:"self_awareness"`
	CriticalThinking int `json:"critical_thinking"`
	GrowthMindset    int `json:"growth_mindset"`
}

// ReflectionResponse はアクセス判定の結果
type ReflectionResponse struct {
	AccessGranted     bool                     `json:"access_granted"`
	QualityScore      float64                  `json:"quality_score"`
	AILevel           *AILevel                 `json:"ai_level"`
	Feedback          string                   `json:"feedback"`
	Suggestions       []string                 `json:"suggestions"`
	InitialQuestions  []string                 `json:"initial_questions"`
	Dimensions        *DimensionScoresResponse `json:"dimensions,omitempty"`
	DimensionFeedback string                   `json:"dimension_feedback,omitempty"`
	ReflectionID      *uuid.UUID               `json:"reflection_id,omitempty"`
}

// AdaptiveLevelResponse は適応レベル再計算の結果
type AdaptiveLevelResponse struct {
	DocumentID     uuid.UUID `json:"document_id"`
	CurrentQuality float64   `json:"current_quality"`
	BaseLevel      AILevel   `json:"base_level"`
	AILevel        AILevel   `json:"ai_level"`
	Adjustments    []string  `json:"adjustments"`
}
