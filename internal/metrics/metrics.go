// Package metrics keeps cheap in-process counters for the interview
// flow, exposed as a JSON snapshot on the metrics endpoint.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                  sync.RWMutex
	interviewsStarted   int64
	interviewsCompleted int64
	questionsAsked      int64
	answersScored       int64
	lastUpdate          time.Time
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	InterviewsStarted   int64     `json:"interviews_started"`
	InterviewsCompleted int64     `json:"interviews_completed"`
	QuestionsAsked      int64     `json:"questions_asked"`
	AnswersScored       int64     `json:"answers_scored"`
	LastUpdate          time.Time `json:"last_update"`
}

func NewMetrics() *Metrics {
	return &Metrics{lastUpdate: time.Now()}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsStarted++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interviewsCompleted++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementQuestionsAsked() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questionsAsked++
	m.lastUpdate = time.Now()
}

func (m *Metrics) IncrementAnswersScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answersScored++
	m.lastUpdate = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		InterviewsStarted:   m.interviewsStarted,
		InterviewsCompleted: m.interviewsCompleted,
		QuestionsAsked:      m.questionsAsked,
		AnswersScored:       m.answersScored,
		LastUpdate:          m.lastUpdate,
	}
}
