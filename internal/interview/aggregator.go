package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
	"go.uber.org/zap"
)

// Aggregator reduces the answer log into the final performance report.
// It owns the numeric aggregation; the narrative synthesis is delegated
// to the language service, and a malformed reply degrades to
// placeholder text per field instead of failing the termination.
type Aggregator struct {
	ai  Intelligence
	log *zap.Logger
}

func NewAggregator(ai Intelligence, log *zap.Logger) *Aggregator {
	return &Aggregator{ai: ai, log: log}
}

// AverageScore returns the arithmetic mean of the recorded scores. The
// second return is false when the log is empty.
func AverageScore(answers []model.AnswerRecord) (float64, bool) {
	if len(answers) == 0 {
		return 0.0, false
	}
	var total float64
	for _, a := range answers {
		total += a.Score
	}
	return total / float64(len(answers)), true
}

// Aggregate builds the structured interview transcript and asks the
// language service for the overall report. External failures propagate;
// malformed synthesis output never does.
func (a *Aggregator) Aggregate(ctx context.Context, answers []model.AnswerRecord, profile model.CandidateProfile, domain string) (model.OverallEvaluation, error) {
	averageScore := "N/A"
	if avg, ok := AverageScore(answers); ok {
		averageScore = fmt.Sprintf("%.1f/1.0", avg)
	}

	raw, err := a.ai.GenerateJSON(ctx, buildOverallPrompt(answers, profile, domain, averageScore))
	if err != nil {
		return model.OverallEvaluation{}, err
	}

	var parsed model.OverallEvaluation
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		a.log.Sugar().Warnw("overall evaluation was malformed, using placeholders", "err", err)
		return model.OverallEvaluation{
			OverallPerformance: "The overall evaluation could not be generated in a readable format.",
			WeakPoints:         "Not available for this interview.",
			Improvements:       "Not available for this interview.",
		}, nil
	}

	if strings.TrimSpace(parsed.OverallPerformance) == "" {
		parsed.OverallPerformance = "No overall performance summary was generated."
	}
	if strings.TrimSpace(parsed.WeakPoints) == "" {
		parsed.WeakPoints = "No weak points were identified."
	}
	if strings.TrimSpace(parsed.Improvements) == "" {
		parsed.Improvements = "No improvement suggestions were generated."
	}
	return parsed, nil
}
