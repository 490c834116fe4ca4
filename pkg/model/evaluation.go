package model

import "time"

// OverallEvaluation is the final performance report, produced exactly
// once per session at termination.
type OverallEvaluation struct {
	OverallPerformance string `json:"overall_performance"`
	WeakPoints         string `json:"weak_points"`
	Improvements       string `json:"improvements"`
}

// InterviewReport is the archived summary of a completed interview.
// Written to the optional report archive after the session is gone.
type InterviewReport struct {
	SessionID     string            `json:"session_id"`
	Domain        string            `json:"domain"`
	CandidateName string            `json:"candidate_name"`
	AverageScore  float64           `json:"average_score"`
	QuestionCount int               `json:"question_count"`
	AnswerCount   int               `json:"answer_count"`
	Evaluation    OverallEvaluation `json:"evaluation"`
	CompletedAt   time.Time         `json:"completed_at"`
}
