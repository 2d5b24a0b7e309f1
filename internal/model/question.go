package model

// Question is owned by the external store; this service only reads it.
type Question struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Topic        string `gorm:"not null;index:idx_questions_topic_difficulty" json:"topic"`
	Difficulty   string `gorm:"not null;index:idx_questions_topic_difficulty" json:"difficulty"`
}

func (Question) TableName() string { return "questions" }
