package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one completed practice run. FinalScore is computed once at
// submission and never recomputed on read.
type Session struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"not null;index" json:"user_id"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	FinalScore    float64   `json:"final_score"`
	FinalFeedback string    `gorm:"type:text" json:"final_feedback"`
	Answers       []Answer  `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"answers,omitempty"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = newID()
	}
	return nil
}
