package model

import "time"

// InterviewSession holds all per-session state: the candidate profile,
// the ordered question and answer logs and the currently open question.
// Invariant: len(Answers) <= len(Questions) after every operation, and
// Current is always the most recently issued question.
type InterviewSession struct {
	ID        string           `json:"session_id"`
	Profile   CandidateProfile `json:"resume_info"`
	Domain    string           `json:"domain"`
	Questions []Question       `json:"questions"`
	Answers   []AnswerRecord   `json:"answers"`
	Current   Question         `json:"current_question"`
	CreatedAt time.Time        `json:"created_at"`
}

// FindQuestion looks up a question by id in the session's question log.
func (s *InterviewSession) FindQuestion(id string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// AskedTexts returns the texts of all issued questions, in order. Used
// to forbid repetition when generating the next question.
func (s *InterviewSession) AskedTexts() []string {
	texts := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		texts[i] = q.Text
	}
	return texts
}
