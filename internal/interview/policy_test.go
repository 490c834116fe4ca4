package interview

import (
	"strings"
	"testing"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

var testHRKeywords = []string{
	"hr", "human resources", "recruitment", "managerial", "non-technical",
	"people management", "talent acquisition",
}

func TestNextStageTechnicalLadder(t *testing.T) {
	want := []model.Stage{
		model.StageGenericIntro,
		model.StageResumeDeepDive,
		model.StageTechnicalFoundational,
		model.StageTechnicalProblemSolving,
		model.StageTechnicalAdvanced,
		model.StageTechnicalSystemDesign,
		model.StageTechnicalSystemDesign,
		model.StageTechnicalSystemDesign,
	}

	for turn, expected := range want {
		got := NextStage(turn, "Engineering", testHRKeywords)
		if got != expected {
			t.Fatalf("turn %d: expected %s, got %s", turn, expected, got)
		}
	}
}

func TestNextStageHRLadder(t *testing.T) {
	want := []model.Stage{
		model.StageGenericIntro,
		model.StageResumeDeepDive,
		model.StageHRBehavioralFoundational,
		model.StageHRBehavioralDeep,
		model.StageHRConcluding,
		model.StageHRAdvancedSituational,
		model.StageHRAdvancedSituational,
	}

	for turn, expected := range want {
		got := NextStage(turn, "HR", testHRKeywords)
		if got != expected {
			t.Fatalf("turn %d: expected %s, got %s", turn, expected, got)
		}
	}
}

func TestNextStageIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := NextStage(3, "Data Science", testHRKeywords); got != model.StageTechnicalProblemSolving {
			t.Fatalf("call %d: expected %s, got %s", i, model.StageTechnicalProblemSolving, got)
		}
	}
}

func TestNextStageNegativeTurnFallsBackToIntro(t *testing.T) {
	if got := NextStage(-1, "Engineering", testHRKeywords); got != model.StageGenericIntro {
		t.Fatalf("expected %s, got %s", model.StageGenericIntro, got)
	}
}

func TestIsHRDomain(t *testing.T) {
	cases := []struct {
		domain string
		want   bool
	}{
		{"HR", true},
		{"hr", true},
		{"Human Resources", true},
		{"Talent Acquisition Lead", true},
		{"People Management", true},
		{"Recruitment", true},
		{"Engineering", false},
		{"Data Science", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsHRDomain(tc.domain, testHRKeywords); got != tc.want {
			t.Fatalf("domain %q: expected %t, got %t", tc.domain, tc.want, got)
		}
	}
}

func TestBuildQuestionPromptForbidsRepetition(t *testing.T) {
	profile := model.CandidateProfile{
		Name:       "Jane Doe",
		Experience: "4 years backend development",
		Skills:     []string{"Go", "Postgres"},
	}
	asked := []string{
		"Tell me about yourself?",
		"Your resume mentions a payments service. What was your role?",
	}

	prompt := BuildQuestionPrompt(profile, "Engineering", model.StageTechnicalFoundational, asked)

	if !strings.Contains(prompt, "NO REPETITION") {
		t.Fatalf("prompt is missing the repetition ban")
	}
	for _, q := range asked {
		if !strings.Contains(prompt, q) {
			t.Fatalf("prompt is missing previously asked question %q", q)
		}
	}
	if !strings.Contains(prompt, "ONLY the question text") {
		t.Fatalf("prompt does not request raw question text")
	}
	if !strings.Contains(prompt, "question number 3") {
		t.Fatalf("prompt should announce question number 3")
	}
	if !strings.Contains(prompt, "Jane Doe") {
		t.Fatalf("prompt is missing the candidate name")
	}
}

func TestBuildQuestionPromptWithNoHistory(t *testing.T) {
	prompt := BuildQuestionPrompt(model.CandidateProfile{}, "HR", model.StageGenericIntro, nil)
	if !strings.Contains(prompt, "None") {
		t.Fatalf("prompt should mark empty history as None")
	}
}
