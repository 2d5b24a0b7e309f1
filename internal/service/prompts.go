package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/devprep/internal/dto"
	"github.com/lshigami/devprep/internal/llm"
	"github.com/lshigami/devprep/internal/model"
)

const gradingSystemPrompt = "You are a DevOps expert interviewer who grades candidate answers fairly and explains the grade."

const sessionSystemPrompt = "You are a supportive DevOps interview coach."

// FallbackFinalFeedback is used when the summary completion omits the
// final_feedback field.
const FallbackFinalFeedback = "Great job completing the session!"

var feedbackSchema = &llm.Schema{
	Name: "answer-feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":       map[string]any{"type": "integer", "minimum": MinAnswerScore, "maximum": MaxAnswerScore},
			"summary":     map[string]any{"type": "string"},
			"corrections": map[string]any{"type": "string"},
		},
		"required": []any{"score", "summary", "corrections"},
	},
}

var sessionSummarySchema = &llm.Schema{
	Name: "session-summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"final_feedback": map[string]any{"type": "string"},
		},
	},
}

func buildGradingPrompt(question *model.Question, userAnswer string) string {
	var b strings.Builder
	b.WriteString("Evaluate the candidate's answer as you would in a real technical interview.\n")
	b.WriteString("Score it from 1 to 10 on conceptual accuracy and practical relevance only.\n")
	b.WriteString("The score must not depend on length: a short answer that is correct scores as high as a long answer that is correct, ")
	b.WriteString("and a long answer that is wrong must not earn points for verbosity.\n")
	b.WriteString("Do not expect textbook-level detail; be lenient with minor omissions when the core concept is understood.\n\n")
	fmt.Fprintf(&b, "Question: %s\n", question.QuestionText)
	fmt.Fprintf(&b, "Candidate's answer: %s\n\n", userAnswer)
	b.WriteString("Respond with a JSON object with exactly these fields:\n")
	b.WriteString(`{"score": <integer 1-10>, "summary": "<strengths of the answer>", "corrections": "<what to add or fix>"}`)
	return b.String()
}

func buildSessionPrompt(finalScore float64, answers []dto.SessionAnswerDTO) (string, error) {
	detail, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode session answers: %w", err)
	}

	var b strings.Builder
	b.WriteString("The candidate has finished a practice interview session.\n")
	fmt.Fprintf(&b, "Their average score is %.1f out of 10.\n", finalScore)
	b.WriteString("These are their answers and the feedback each one received:\n\n")
	b.Write(detail)
	b.WriteString("\n\nWrite a short, encouraging summary of their overall performance and name the areas to improve.\n")
	b.WriteString(`Respond with a JSON object: {"final_feedback": "<summary>"}`)
	return b.String(), nil
}
