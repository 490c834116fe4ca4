package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
	"go.uber.org/zap"
)

// recordingAI captures the prompt handed to the language service.
type recordingAI struct {
	fakeAI
	lastPrompt string
}

func (r *recordingAI) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	r.lastPrompt = prompt
	return r.fakeAI.GenerateJSON(ctx, prompt)
}

func scoredAnswers() []model.AnswerRecord {
	return []model.AnswerRecord{
		{
			QuestionText: "Tell me about yourself?",
			Stage:        model.StageGenericIntro,
			Transcript:   "I am a backend engineer.",
			Feedback:     "Clear.",
			Score:        0.4,
		},
		{
			QuestionText: "How does a hash map work?",
			Stage:        model.StageTechnicalFoundational,
			Transcript:   "Buckets and hashing.",
			Feedback:     "Solid.",
			Score:        0.6,
		},
	}
}

func TestAverageScore(t *testing.T) {
	avg, ok := AverageScore(scoredAnswers())
	if !ok {
		t.Fatalf("expected an average for a non-empty log")
	}
	if avg != 0.5 {
		t.Fatalf("expected average 0.5, got %v", avg)
	}
}

func TestAverageScoreEmptyLog(t *testing.T) {
	if _, ok := AverageScore(nil); ok {
		t.Fatalf("expected no average for an empty log")
	}
}

func TestAggregatePromptCarriesAverageAndHistory(t *testing.T) {
	ai := &recordingAI{}
	agg := NewAggregator(ai, zap.NewNop())

	_, err := agg.Aggregate(context.Background(), scoredAnswers(), testProfile(), "Engineering")
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if !strings.Contains(ai.lastPrompt, "0.5/1.0") {
		t.Fatalf("prompt is missing the average score: %q", ai.lastPrompt)
	}
	if !strings.Contains(ai.lastPrompt, "How does a hash map work?") {
		t.Fatalf("prompt is missing the question history")
	}
	if !strings.Contains(ai.lastPrompt, "Buckets and hashing.") {
		t.Fatalf("prompt is missing the transcript history")
	}
}

func TestAggregateEmptyLogReportsNoAverage(t *testing.T) {
	ai := &recordingAI{}
	agg := NewAggregator(ai, zap.NewNop())

	if _, err := agg.Aggregate(context.Background(), nil, testProfile(), "Engineering"); err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if !strings.Contains(ai.lastPrompt, "N/A") {
		t.Fatalf("prompt should mark the average as N/A: %q", ai.lastPrompt)
	}
}

func TestAggregateMalformedReplyDegrades(t *testing.T) {
	ai := &fakeAI{overallJSON: "sorry, no json today"}
	agg := NewAggregator(ai, zap.NewNop())

	overall, err := agg.Aggregate(context.Background(), scoredAnswers(), testProfile(), "Engineering")
	if err != nil {
		t.Fatalf("malformed reply must not fail termination: %v", err)
	}
	if overall.OverallPerformance == "" || overall.WeakPoints == "" || overall.Improvements == "" {
		t.Fatalf("expected placeholder fields, got %+v", overall)
	}
}

func TestAggregateFillsBlankFields(t *testing.T) {
	ai := &fakeAI{overallJSON: `{"overall_performance": "Strong showing.", "weak_points": "", "improvements": "  "}`}
	agg := NewAggregator(ai, zap.NewNop())

	overall, err := agg.Aggregate(context.Background(), scoredAnswers(), testProfile(), "Engineering")
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if overall.OverallPerformance != "Strong showing." {
		t.Fatalf("populated field was overwritten: %q", overall.OverallPerformance)
	}
	if overall.WeakPoints != "No weak points were identified." {
		t.Fatalf("unexpected weak points placeholder: %q", overall.WeakPoints)
	}
	if overall.Improvements != "No improvement suggestions were generated." {
		t.Fatalf("unexpected improvements placeholder: %q", overall.Improvements)
	}
}
