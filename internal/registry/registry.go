// Package registry is the process-wide session store. Implementations
// only hold data; per-session serialization of reads and mutations is
// the interview service's job.
package registry

import (
	"context"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

// Store maps session ids to session state. Get returns
// apperr.ErrSessionNotFound for unknown ids; Delete of an unknown id is
// a no-op, since losing a session id after termination is expected.
type Store interface {
	Put(ctx context.Context, session *model.InterviewSession) error
	Get(ctx context.Context, id string) (*model.InterviewSession, error)
	Delete(ctx context.Context, id string) error
}
