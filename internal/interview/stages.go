package interview

import "github.com/Daksharma90/AI-Interviewer/pkg/model"

// stageSpec is the per-stage generation template: what kind of question
// the stage asks for and the instruction handed to the language
// service. These are configuration data, not logic.
type stageSpec struct {
	Description string
	Instruction string
}

var stageSpecs = map[model.Stage]stageSpec{
	model.StageGenericIntro: {
		Description: "a generic introductory question.",
		Instruction: "Ask a generic introductory question like 'Tell me about yourself?' or 'Walk me through your resume?'",
	},
	model.StageResumeDeepDive: {
		Description: "a follow-up question based on their resume (fact-based).",
		Instruction: "Based on the candidate's resume (their experience, a specific project, or a key skill), " +
			"ask a specific, fact-finding follow-up question. This question should help to verify or elaborate on something concrete in their resume. " +
			"Make it engaging and professional. Example: 'Your resume mentions project X. Can you elaborate on your specific role and contributions to that project?'",
	},
	model.StageHRBehavioralFoundational: {
		Description: "a foundational HR behavioral question.",
		Instruction: "Ask a common HR behavioral question. For example, 'Describe a challenging situation you faced at work and how you handled it,' " +
			"or 'What are your key strengths that you would bring to this role?' Focus on understanding their past behavior and character.",
	},
	model.StageHRBehavioralDeep: {
		Description: "a deeper HR behavioral or situational question.",
		Instruction: "Ask another HR behavioral question, perhaps focusing on weaknesses, learning from mistakes, teamwork, or conflict resolution. " +
			"For example, 'What do you consider your biggest professional weakness and how are you working to improve it?' " +
			"or 'Tell me about a time you had to work collaboratively on a difficult project and what your role was.'",
	},
	model.StageHRConcluding: {
		Description: "a concluding HR question about motivation, fit, or expectations.",
		Instruction: "Ask a question related to career goals, motivation for the role, or company fit. " +
			"For example, 'Why are you interested in this particular role and our company?' or 'Where do you see yourself in 5 years?'",
	},
	model.StageHRAdvancedSituational: {
		Description: "an advanced or situational HR question.",
		Instruction: "Ask an advanced situational judgment question, one about handling difficult workplace scenarios, or a question about their leadership/management style if applicable. " +
			"Ensure it's distinct from previous HR questions and probes a new dimension.",
	},
	model.StageTechnicalFoundational: {
		Description: "a foundational technical question for the target domain.",
		Instruction: "Ask a foundational technical question relevant to the candidate's skills and the target role. " +
			"This could be a conceptual question about a core technology or methodology mentioned in their resume or common for the domain. " +
			"Avoid overly simple definitions; aim for assessing their understanding and ability to explain.",
	},
	model.StageTechnicalProblemSolving: {
		Description: "a deeper dive technical or problem-solving question for the target domain.",
		Instruction: "Ask a more in-depth technical question or a practical problem-solving scenario related to the target role or their resume. " +
			"This should probe their analytical skills or practical application of knowledge, for instance a design, optimization or troubleshooting scenario.",
	},
	model.StageTechnicalAdvanced: {
		Description: "a final technical question, possibly more open-ended or scenario-based.",
		Instruction: "Ask a final technical question that could be more open-ended, forward-looking, or a slightly more complex problem or design consideration relevant to the target role. " +
			"For example, how they approach learning new technologies, or a complex technical challenge they overcame in a past project.",
	},
	model.StageTechnicalSystemDesign: {
		Description: "an advanced technical or system design question for the target domain.",
		Instruction: "Ask an advanced technical question, a system design question (if applicable to the domain), or a question about best practices, architectural trade-offs, or future trends in the field. " +
			"This should challenge their depth of expertise.",
	},
}

// specFor returns the template for the stage. The stage set is closed,
// so a miss means a programming error; the intro template doubles as
// the safe fallback.
func specFor(stage model.Stage) stageSpec {
	if spec, ok := stageSpecs[stage]; ok {
		return spec
	}
	return stageSpecs[model.StageGenericIntro]
}
