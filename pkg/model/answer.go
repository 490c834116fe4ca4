package model

// AnswerRecord is one scored answer. The question text and stage are
// denormalized copies captured at submission time, so the record stays
// self-contained after the session is discarded.
type AnswerRecord struct {
	QuestionID   string  `json:"question_id"`
	QuestionText string  `json:"question_text"`
	Stage        Stage   `json:"question_type"`
	Transcript   string  `json:"answer_transcript"`
	Feedback     string  `json:"feedback"`
	Score        float64 `json:"score"`
	IsTimeout    bool    `json:"is_timeout"`
}
