package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionResponse struct {
	ID           int64  `json:"id"`
	QuestionText string `json:"question_text"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
}

// AnswerResponseDTO is a persisted answer enriched with its question text.
type AnswerResponseDTO struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	QuestionID   int64     `json:"question_id"`
	QuestionText string    `json:"question_text"`
	UserAnswer   string    `json:"user_answer"`
	Score        int       `json:"score"`
	Summary      string    `json:"summary"`
	Corrections  string    `json:"corrections"`
}

// SessionSummaryDTO is used for listing a user's sessions.
type SessionSummaryDTO struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	Topic         string    `json:"topic"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
	FinalScore    float64   `json:"final_score"`
	FinalFeedback string    `json:"final_feedback"`
}

// SessionDetailDTO is a session with its answers. OverallScore mirrors
// FinalScore for clients written against the old submit-session response.
type SessionDetailDTO struct {
	ID            uuid.UUID           `json:"id"`
	UserID        string              `json:"user_id"`
	Topic         string              `json:"topic"`
	Difficulty    string              `json:"difficulty"`
	CreatedAt     time.Time           `json:"created_at"`
	FinalScore    float64             `json:"final_score"`
	OverallScore  float64             `json:"overall_score"`
	FinalFeedback string              `json:"final_feedback"`
	Answers       []AnswerResponseDTO `json:"answers"`
}

type SessionStatsDTO struct {
	SessionCount int     `json:"session_count"`
	AverageScore float64 `json:"average_score"`
}

// PublicConfigResponse carries the values the browser needs to talk to the
// identity service directly.
type PublicConfigResponse struct {
	SupabaseURL     string `json:"supabaseUrl"`
	SupabaseAnonKey string `json:"supabaseAnonKey"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
