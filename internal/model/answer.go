package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Answer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID  int64     `gorm:"not null;index" json:"question_id"`
	UserAnswer  string    `gorm:"type:text;not null" json:"user_answer"`
	Score       int       `json:"score"`
	Summary     string    `gorm:"type:text" json:"summary"`
	Corrections string    `gorm:"type:text" json:"corrections"`
}

func (Answer) TableName() string { return "answers" }

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = newID()
	}
	return nil
}
