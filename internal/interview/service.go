// Package interview owns the session state machine and the
// question-progression policy: what stage the interview is in, what to
// ask next, when to terminate, and how the answer log becomes the final
// report.
package interview

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Daksharma90/AI-Interviewer/internal/metrics"
	"github.com/Daksharma90/AI-Interviewer/internal/registry"
	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
	"github.com/Daksharma90/AI-Interviewer/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimeoutTranscript is recorded when an answer arrives with no audio.
const TimeoutTranscript = "No answer provided (timeout)."

// Intelligence is the narrow view of the language/speech collaborator
// the state machine needs.
type Intelligence interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Transcribe(ctx context.Context, audio []byte) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ReportArchiver receives the report of a completed interview. Optional;
// archive failures are logged and never surfaced to the client.
type ReportArchiver interface {
	SaveReport(ctx context.Context, report *model.InterviewReport) error
}

// Config carries the progression settings.
type Config struct {
	MaxTurns   int
	HRKeywords []string
}

type Service struct {
	ai         Intelligence
	store      registry.Store
	agg        *Aggregator
	archive    ReportArchiver
	metrics    *metrics.Metrics
	log        *zap.Logger
	maxTurns   int
	hrKeywords []string
	locks      *sessionLocks
}

// NewService wires the state machine. archive may be nil.
func NewService(ai Intelligence, store registry.Store, agg *Aggregator, archive ReportArchiver, m *metrics.Metrics, log *zap.Logger, cfg Config) *Service {
	maxTurns := cfg.MaxTurns
	if maxTurns < 1 {
		maxTurns = 5
	}
	return &Service{
		ai:         ai,
		store:      store,
		agg:        agg,
		archive:    archive,
		metrics:    m,
		log:        log,
		maxTurns:   maxTurns,
		hrKeywords: cfg.HRKeywords,
		locks:      newSessionLocks(),
	}
}

// StartResult is the outcome of starting an interview.
type StartResult struct {
	SessionID string
	Question  model.Question
	Audio     []byte
}

// TurnResult is the outcome of a submit-answer or get-next-question
// turn. When Terminated is set, Overall carries the final report and
// the session is gone; otherwise Question and Audio carry the next
// turn.
type TurnResult struct {
	Transcript string
	Feedback   string
	Terminated bool
	Question   *model.Question
	Audio      []byte
	Overall    *model.OverallEvaluation
}

// SubmitInput is one answer submission.
type SubmitInput struct {
	SessionID  string
	QuestionID string
	Audio      []byte
	IsTimeout  bool
	ForceEnd   bool
}

// Start creates a session with a deterministic introductory question:
// a greeting by name plus a request to walk through the resume. No
// language-service call is needed for the text, only for its audio.
// Exactly one question and zero answers exist on return.
func (s *Service) Start(ctx context.Context, profile model.CandidateProfile, domain string) (*StartResult, error) {
	sessionID := uuid.NewString()
	text := fmt.Sprintf(
		"Hello %s, thank you for joining. To start, could you please tell me a bit about yourself and walk me through your resume?",
		profile.DisplayName(),
	)
	question := model.Question{
		ID:    uuid.NewString(),
		Text:  text,
		Stage: model.StageGenericIntro,
	}

	audio, err := s.ai.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	session := &model.InterviewSession{
		ID:        sessionID,
		Profile:   profile,
		Domain:    domain,
		Questions: []model.Question{question},
		Answers:   []model.AnswerRecord{},
		Current:   question,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.metrics.IncrementInterviewsStarted()
	s.metrics.IncrementQuestionsAsked()
	s.log.Sugar().Infow("interview started",
		"session_id", sessionID, "domain", domain, "candidate", profile.DisplayName())

	return &StartResult{SessionID: sessionID, Question: question, Audio: audio}, nil
}

// SubmitAnswer records one answer: transcribe (or use the timeout
// placeholder), score, append to the answer log, then either issue the
// next question or terminate once the configured turn count is reached
// or the client forced the end.
func (s *Service) SubmitAnswer(ctx context.Context, in SubmitInput) (*TurnResult, error) {
	unlock := s.locks.acquire(in.SessionID)
	defer unlock()

	session, err := s.store.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}

	question, ok := session.FindQuestion(in.QuestionID)
	if !ok {
		return nil, apperr.ErrQuestionNotFound
	}

	transcript := TimeoutTranscript
	if len(in.Audio) > 0 {
		transcript, err = s.ai.Transcribe(ctx, in.Audio)
		if err != nil {
			return nil, err
		}
	}

	raw, err := s.ai.GenerateJSON(ctx, buildEvaluationPrompt(question.Text, transcript, session.Profile, session.Domain))
	if err != nil {
		return nil, err
	}
	eval := decodeAnswerEvaluation(raw)
	if eval.Degraded {
		s.log.Sugar().Warnw("answer evaluation was malformed, degraded to zero score",
			"session_id", session.ID, "question_id", question.ID)
	}

	session.Answers = append(session.Answers, model.AnswerRecord{
		QuestionID:   question.ID,
		QuestionText: question.Text,
		Stage:        question.Stage,
		Transcript:   transcript,
		Feedback:     eval.Feedback,
		Score:        eval.Score,
		IsTimeout:    in.IsTimeout,
	})
	// Persist the scored answer before deciding the transition, so a
	// failed aggregation can be retried without losing it.
	if err := s.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	s.metrics.IncrementAnswersScored()

	if in.ForceEnd || len(session.Answers) >= s.maxTurns {
		overall, err := s.terminate(ctx, session)
		if err != nil {
			return nil, err
		}
		return &TurnResult{
			Transcript: transcript,
			Feedback:   eval.Feedback,
			Terminated: true,
			Overall:    &overall,
		}, nil
	}

	next, audio, err := s.issueNextQuestion(ctx, session)
	if err != nil {
		return nil, err
	}
	return &TurnResult{
		Transcript: transcript,
		Feedback:   eval.Feedback,
		Question:   &next,
		Audio:      audio,
	}, nil
}

// NextQuestion is the side-channel for client timer races: it issues a
// fresh question without requiring that the previously open one was
// ever answered — the superseded question stays in the log and remains
// answerable. Once the answer count has reached the maximum it performs
// the same termination as SubmitAnswer, so repeated calls keep
// returning a completed report until the session is evicted.
func (s *Service) NextQuestion(ctx context.Context, sessionID string) (*TurnResult, error) {
	unlock := s.locks.acquire(sessionID)
	defer unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Questions) == 0 {
		return nil, fmt.Errorf("session %s has no question history", sessionID)
	}

	if len(session.Answers) < s.maxTurns {
		next, audio, err := s.issueNextQuestion(ctx, session)
		if err != nil {
			return nil, err
		}
		return &TurnResult{Question: &next, Audio: audio}, nil
	}

	overall, err := s.terminate(ctx, session)
	if err != nil {
		return nil, err
	}
	return &TurnResult{Terminated: true, Overall: &overall}, nil
}

// issueNextQuestion consults the policy for the stage, generates the
// question text and audio, and appends the new open question to the
// log. Callers hold the session lock.
func (s *Service) issueNextQuestion(ctx context.Context, session *model.InterviewSession) (model.Question, []byte, error) {
	stage := NextStage(len(session.Questions), session.Domain, s.hrKeywords)
	prompt := BuildQuestionPrompt(session.Profile, session.Domain, stage, session.AskedTexts())

	text, err := s.ai.GenerateText(ctx, prompt)
	if err != nil {
		return model.Question{}, nil, err
	}
	text = strings.TrimSpace(text)

	audio, err := s.ai.Synthesize(ctx, text)
	if err != nil {
		return model.Question{}, nil, err
	}

	question := model.Question{ID: uuid.NewString(), Text: text, Stage: stage}
	session.Questions = append(session.Questions, question)
	session.Current = question
	if err := s.store.Put(ctx, session); err != nil {
		return model.Question{}, nil, fmt.Errorf("store session: %w", err)
	}

	s.metrics.IncrementQuestionsAsked()
	s.log.Sugar().Infow("question issued",
		"session_id", session.ID, "stage", stage, "asked", len(session.Questions))
	return question, audio, nil
}

// terminate aggregates the final report, evicts the session and, when
// configured, archives the report in the background. If aggregation
// fails the session stays, so the client can retry. Callers hold the
// session lock.
func (s *Service) terminate(ctx context.Context, session *model.InterviewSession) (model.OverallEvaluation, error) {
	overall, err := s.agg.Aggregate(ctx, session.Answers, session.Profile, session.Domain)
	if err != nil {
		return model.OverallEvaluation{}, err
	}

	if err := s.store.Delete(ctx, session.ID); err != nil {
		s.log.Sugar().Warnw("failed to evict terminated session", "session_id", session.ID, "err", err)
	}
	s.locks.forget(session.ID)
	s.metrics.IncrementInterviewsCompleted()
	s.log.Sugar().Infow("interview terminated",
		"session_id", session.ID, "answers", len(session.Answers))

	if s.archive != nil {
		avg, _ := AverageScore(session.Answers)
		report := &model.InterviewReport{
			SessionID:     session.ID,
			Domain:        session.Domain,
			CandidateName: session.Profile.DisplayName(),
			AverageScore:  avg,
			QuestionCount: len(session.Questions),
			AnswerCount:   len(session.Answers),
			Evaluation:    overall,
			CompletedAt:   time.Now().UTC(),
		}
		go func() {
			archiveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.archive.SaveReport(archiveCtx, report); err != nil {
				s.log.Sugar().Errorw("failed to archive interview report",
					"session_id", report.SessionID, "err", err)
			}
		}()
	}

	return overall, nil
}
