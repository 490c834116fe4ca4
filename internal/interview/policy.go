package interview

import (
	"strings"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

// IsHRDomain classifies the free-text domain as HR-like when it
// contains any of the configured keywords, case-insensitively. The
// classification is re-derived from the raw string at every turn so all
// call sites agree.
func IsHRDomain(domain string, keywords []string) bool {
	d := strings.ToLower(domain)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(d, kw) {
			return true
		}
	}
	return false
}

// NextStage is the question-progression policy: a pure function of the
// 0-based count of previously asked questions and the domain
// classification. From the sixth question on, the final stage repeats
// indefinitely.
func NextStage(turnIndex int, domain string, hrKeywords []string) model.Stage {
	hr := IsHRDomain(domain, hrKeywords)

	switch {
	case turnIndex <= 0:
		return model.StageGenericIntro
	case turnIndex == 1:
		return model.StageResumeDeepDive
	case turnIndex == 2:
		if hr {
			return model.StageHRBehavioralFoundational
		}
		return model.StageTechnicalFoundational
	case turnIndex == 3:
		if hr {
			return model.StageHRBehavioralDeep
		}
		return model.StageTechnicalProblemSolving
	case turnIndex == 4:
		if hr {
			return model.StageHRConcluding
		}
		return model.StageTechnicalAdvanced
	default:
		if hr {
			return model.StageHRAdvancedSituational
		}
		return model.StageTechnicalSystemDesign
	}
}
