package registry

import (
	"context"
	"sync"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

// Memory is the default in-memory store. Sessions live exactly as long
// as the interview does.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*model.InterviewSession
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*model.InterviewSession)}
}

func (m *Memory) Put(_ context.Context, session *model.InterviewSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (*model.InterviewSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	return session, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
