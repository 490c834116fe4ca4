package interview

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// answerEvaluation is the typed result of one scored answer. When the
// language service returns something unparseable, Degraded is set and
// the zero score with an explanatory feedback string is used instead of
// failing the turn.
type answerEvaluation struct {
	Feedback string
	Score    float64
	Degraded bool
}

type rawEvaluation struct {
	Feedback string `json:"feedback"`
	Score    any    `json:"score"`
}

// decodeAnswerEvaluation strictly parses the language service's JSON
// reply and validates the score. No string surgery: anything that is
// not valid JSON with the expected keys yields the degraded sentinel.
func decodeAnswerEvaluation(raw string) answerEvaluation {
	var parsed rawEvaluation
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return answerEvaluation{
			Feedback: "The evaluation could not be processed for this answer.",
			Score:    0.0,
			Degraded: true,
		}
	}

	feedback := strings.TrimSpace(parsed.Feedback)
	if feedback == "" {
		feedback = "No feedback generated for this answer."
	}

	return answerEvaluation{
		Feedback: feedback,
		Score:    ClampScore(coerceScore(parsed.Score)),
	}
}

// coerceScore accepts the numeric shapes models actually emit (number,
// quoted number, missing) and defaults everything else to 0.0.
func coerceScore(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}

// ClampScore bounds a score to [0.0, 1.0] and rounds it to one decimal
// place.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0.0
	}
	score = math.Max(0.0, math.Min(1.0, score))
	return math.Round(score*10) / 10
}
