// internal/session/store.go
package session

import (
	"context"
	"sync"
	"time"

	stderrors "github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/errors"
	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/internal/common/metrics"
)

// Store persists audit sessions for the duration of one interactive
// session. Implementations must treat sessions as whole snapshots; there are
// no partial updates.
type Store interface {
	Save(ctx context.Context, s *AuditSession) error
	Get(ctx context.Context, id string) (*AuditSession, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance; expired sessions are dropped lazily on access.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   *AuditSession
	expiresAt time.Time
}

// NewMemoryStore creates a MemoryStore with the given session TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemoryStore) Save(_ context.Context, s *AuditSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = memoryEntry{
		session:   s,
		expiresAt: time.Now().Add(m.ttl),
	}
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*AuditSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, stderrors.NewAuditNotFoundError(id)
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		metrics.SessionsActive.Set(float64(len(m.sessions)))
		return nil, stderrors.NewAuditNotFoundError(id)
	}

	// Hand out a copy so callers cannot mutate the stored snapshot without
	// a Save.
	cp := *entry.session
	cp.Answers = entry.session.Answers.Clone()
	return &cp, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	metrics.SessionsActive.Set(float64(len(m.sessions)))
	return nil
}
