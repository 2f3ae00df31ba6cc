// internal/model/interaction.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interaction は質問とAI応答の1往復。作成後は更新しない。
type Interaction struct {
	InteractionID   uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"interaction_id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index:idx_interaction_owner" json:"-"`
	DocumentID      uuid.UUID                   `gorm:"type:uuid;not null;index:idx_interaction_owner" json:"document_id"`
	ReflectionID    *uuid.UUID                  `gorm:"type:uuid;index" json:"reflection_id,omitempty"`
	UserMessage     string                      `gorm:"type:text;not null" json:"user_message"`
	AIResponse      string                      `gorm:"type:text;not null" json:"ai_response"`
	AILevel         AILevel                     `gorm:"type:varchar(20);not null" json:"ai_level"`
	QuestionType    QuestionType                `gorm:"type:varchar(20);not null" json:"question_type"`
	ResponseTimeMs  int                         `json:"response_time_ms"`
	GenerationTier  string                      `gorm:"type:varchar(30)" json:"generation_tier"`
	FollowUpPrompts datatypes.JSONSlice[string] `json:"follow_up_prompts"`
	CreatedAt       time.Time                   `gorm:"index" json:"created_at"`

	// 関連 (Preload用)
	Reflection *Reflection `gorm:"foreignKey:ReflectionID;references:ReflectionID" json:"-"`
}

func (Interaction) TableName() string {
	return "ai_interactions"
}

// AskRequest はAIパートナーへの質問リクエストDTO
type AskRequest struct {
	DocumentID uuid.UUID `json:"document_id" validate:"required"`
	Question   string    `json:"question" validate:"required,min=1,max=2000"`
	Context    string    `json:"context" validate:"max=20000"`
	AILevel    AILevel   `json:"ai_level" validate:"required,oneof=basic standard advanced"`
}

// AskResponse はAIパートナーの応答
type AskResponse struct {
	Response        string       `json:"response"`
	FollowUpPrompts []string     `json:"follow_up_prompts"`
	QuestionType    QuestionType `json:"question_type"`
}

// ConversationResponse は文書ごとの会話履歴
type ConversationResponse struct {
	DocumentID    uuid.UUID      `json:"document_id"`
	Conversations []*Interaction `json:"conversations"`
}

// ValidateResponseRequest は応答テキスト検証リクエストDTO。
// 空のテキストも判定対象で、問いかけがないものとして扱う。
type ValidateResponseRequest struct {
	Text string `json:"text"`
}

// ValidateResponseResult はソクラテス境界チェックの結果
type ValidateResponseResult struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}
