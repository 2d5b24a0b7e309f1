package dto

// SubmitAnswerRequest is the body of POST /submit-answer.
type SubmitAnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required"`
	UserAnswer string `json:"user_answer" binding:"required"`
}

// Feedback is the grading result for a single answer. It is returned by
// /submit-answer and sent back by the client inside each session answer.
type Feedback struct {
	Score       int    `json:"score"`
	Summary     string `json:"summary"`
	Corrections string `json:"corrections"`
}

// SessionAnswerDTO is one graded answer in a session submission.
type SessionAnswerDTO struct {
	QuestionID int64    `json:"question_id"`
	UserAnswer string   `json:"user_answer"`
	Feedback   Feedback `json:"feedback"`
}

// SubmitSessionRequest is the body of POST /submit-session.
type SubmitSessionRequest struct {
	Topic          string             `json:"topic"`
	Difficulty     string             `json:"difficulty"`
	SessionAnswers []SessionAnswerDTO `json:"session_answers"`
}
