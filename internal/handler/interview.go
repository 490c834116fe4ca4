package handler

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Daksharma90/AI-Interviewer/internal/interview"
	"github.com/Daksharma90/AI-Interviewer/pkg/model"
	"github.com/Daksharma90/AI-Interviewer/pkg/response"
	"github.com/gin-gonic/gin"
)

// StartInterview handles POST /start-interview: multipart upload of the
// resume plus the target domain.
func (h *Handler) StartInterview(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		response.BadRequest(c, "resume file is required")
		return
	}
	defer file.Close()

	domain := strings.TrimSpace(c.PostForm("domain"))
	if domain == "" {
		response.BadRequest(c, "domain is required")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to read resume upload", "err", err)
		response.InternalError(c)
		return
	}
	if len(data) == 0 {
		response.BadRequest(c, "uploaded resume file is empty")
		return
	}

	profile, err := h.Extractor.Extract(c.Request.Context(), data, header.Filename)
	if err != nil {
		h.Logger.Sugar().Warnw("resume extraction failed", "file", header.Filename, "err", err)
		response.FromError(c, err)
		return
	}

	started, err := h.Interviews.Start(c.Request.Context(), profile, domain)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to start interview", "domain", domain, "err", err)
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StartInterviewResponse{
		Question:    started.Question,
		AudioBase64: base64.StdEncoding.EncodeToString(started.Audio),
		Profile:     profile,
		SessionID:   started.SessionID,
	})
}

// SubmitAnswer handles POST /submit-answer: the recorded answer (if
// any) plus the timeout/force-end flags, as multipart form fields.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	sessionID := strings.TrimSpace(c.PostForm("session_id"))
	questionID := strings.TrimSpace(c.PostForm("question_id"))
	if sessionID == "" || questionID == "" {
		response.BadRequest(c, "session_id and question_id are required")
		return
	}

	isTimeout, err := parseBoolField(c.PostForm("is_timeout"), false)
	if err != nil {
		response.BadRequest(c, "is_timeout must be a boolean")
		return
	}
	forceEnd, err := parseBoolField(c.PostForm("force_end"), false)
	if err != nil {
		response.BadRequest(c, "force_end must be a boolean")
		return
	}

	var audio []byte
	if file, _, err := c.Request.FormFile("audio_file"); err == nil {
		defer file.Close()
		audio, err = io.ReadAll(file)
		if err != nil {
			h.Logger.Sugar().Errorw("failed to read answer audio", "session_id", sessionID, "err", err)
			response.InternalError(c)
			return
		}
	}

	result, err := h.Interviews.SubmitAnswer(c.Request.Context(), interview.SubmitInput{
		SessionID:  sessionID,
		QuestionID: questionID,
		Audio:      audio,
		IsTimeout:  isTimeout,
		ForceEnd:   forceEnd,
	})
	if err != nil {
		h.Logger.Sugar().Warnw("submit answer failed", "session_id", sessionID, "err", err)
		response.FromError(c, err)
		return
	}

	if result.Terminated {
		c.JSON(http.StatusOK, model.SubmitAnswerResponse{
			Transcript: result.Transcript,
			Feedback:   result.Feedback,
			NextAction: model.NextActionEnd,
			Overall:    result.Overall,
			Message:    "Interview completed! Here is your performance report.",
		})
		return
	}

	c.JSON(http.StatusOK, model.SubmitAnswerResponse{
		Transcript:  result.Transcript,
		Feedback:    result.Feedback,
		NextAction:  model.NextActionQuestion,
		Question:    result.Question,
		AudioBase64: base64.StdEncoding.EncodeToString(result.Audio),
		Message:     "Answer processed. Here's your next question.",
	})
}

// GetNextQuestion handles POST /get-next-question: the explicit
// side-channel used when the client's question timer expires before an
// answer was submitted.
func (h *Handler) GetNextQuestion(c *gin.Context) {
	var req model.GetNextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "session_id is required")
		return
	}

	result, err := h.Interviews.NextQuestion(c.Request.Context(), req.SessionID)
	if err != nil {
		h.Logger.Sugar().Warnw("get next question failed", "session_id", req.SessionID, "err", err)
		response.FromError(c, err)
		return
	}

	if result.Terminated {
		c.JSON(http.StatusOK, model.GetNextQuestionResponse{
			Status:    model.StatusCompleted,
			Overall:   result.Overall,
			SessionID: req.SessionID,
			Message:   "Interview has reached its maximum number of questions. Here is the final evaluation.",
		})
		return
	}

	c.JSON(http.StatusOK, model.GetNextQuestionResponse{
		Status:      model.StatusSuccess,
		Question:    result.Question,
		AudioBase64: base64.StdEncoding.EncodeToString(result.Audio),
		SessionID:   req.SessionID,
	})
}

func parseBoolField(value string, fallback bool) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}
