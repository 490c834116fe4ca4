package repository

import (
	"context"
	"fmt"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

// SaveReport inserts the final report of a completed interview.
func (r *Repository) SaveReport(ctx context.Context, report *model.InterviewReport) error {
	const q = `
INSERT INTO interview_reports (
	session_id, domain, candidate_name, average_score, question_count,
	answer_count, overall_performance, weak_points, improvements, completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err := r.db.Exec(ctx, q,
		report.SessionID, report.Domain, report.CandidateName, report.AverageScore,
		report.QuestionCount, report.AnswerCount,
		report.Evaluation.OverallPerformance, report.Evaluation.WeakPoints, report.Evaluation.Improvements,
		report.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interview report: %w", err)
	}
	return nil
}
