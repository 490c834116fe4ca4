package model

// StartInterviewResponse is returned by POST /start-interview.
type StartInterviewResponse struct {
	Question    Question         `json:"question"`
	AudioBase64 string           `json:"audio_base64"`
	Profile     CandidateProfile `json:"resume_info"`
	SessionID   string           `json:"session_id"`
}

// SubmitAnswerResponse is returned by POST /submit-answer. Question and
// AudioBase64 are set when NextAction is "next_question"; Overall is
// set when it is "end_interview".
type SubmitAnswerResponse struct {
	Transcript  string             `json:"transcript"`
	Feedback    string             `json:"feedback"`
	NextAction  string             `json:"next_action"`
	Question    *Question          `json:"question,omitempty"`
	AudioBase64 string             `json:"audio_base64,omitempty"`
	Overall     *OverallEvaluation `json:"overall_evaluation,omitempty"`
	Message     string             `json:"message,omitempty"`
}

// GetNextQuestionRequest is the body of POST /get-next-question.
type GetNextQuestionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// GetNextQuestionResponse is returned by POST /get-next-question.
// Status is "success" while questions remain, "completed" once the
// interview has reached its maximum turns.
type GetNextQuestionResponse struct {
	Status      string             `json:"status"`
	Question    *Question          `json:"question,omitempty"`
	AudioBase64 string             `json:"audio_base64,omitempty"`
	Overall     *OverallEvaluation `json:"overall_evaluation,omitempty"`
	SessionID   string             `json:"session_id"`
	Message     string             `json:"message,omitempty"`
}

const (
	NextActionQuestion = "next_question"
	NextActionEnd      = "end_interview"

	StatusSuccess   = "success"
	StatusCompleted = "completed"
)
