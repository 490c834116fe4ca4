package model

// Stage classifies a question's intent and position in the interview
// sequence. The set is closed; the question policy consumes it
// exhaustively.
type Stage string

const (
	StageGenericIntro   Stage = "generic_intro"
	StageResumeDeepDive Stage = "resume_deep_dive"

	StageHRBehavioralFoundational Stage = "hr_behavioral_foundational"
	StageHRBehavioralDeep         Stage = "hr_behavioral_deep"
	StageHRConcluding             Stage = "hr_concluding"
	StageHRAdvancedSituational    Stage = "hr_advanced_situational"

	StageTechnicalFoundational   Stage = "technical_foundational"
	StageTechnicalProblemSolving Stage = "technical_problem_solving"
	StageTechnicalAdvanced       Stage = "technical_advanced"
	StageTechnicalSystemDesign   Stage = "technical_system_design"
)

// Question is one issued interview question. Entries of the question
// log are never mutated or removed individually.
type Question struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Stage Stage  `json:"type"`
}
