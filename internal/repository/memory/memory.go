package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/repository"
	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a survey session does not exist.
var ErrNotFound = fmt.Errorf("survey not found")

// Repository is an in-memory session registry. Each session owns an
// isolated store, so concurrent sessions never see each other's points.
type Repository struct {
	mu         sync.RWMutex
	sessions   map[uuid.UUID]*survey.Session
	maxSurveys int
}

// New creates an in-memory survey repository holding at most maxSurveys
// concurrent sessions. A non-positive limit disables the cap.
func New(maxSurveys int) *Repository {
	return &Repository{
		sessions:   make(map[uuid.UUID]*survey.Session),
		maxSurveys: maxSurveys,
	}
}

// Create registers a new session.
func (r *Repository) Create(ctx context.Context, session *survey.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.maxSurveys > 0 && len(r.sessions) >= r.maxSurveys {
		return fmt.Errorf("survey limit reached (%d active)", r.maxSurveys)
	}
	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("survey %s already exists", session.ID)
	}

	r.sessions[session.ID] = session
	return nil
}

// GetByID returns the session with the given id, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*survey.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Delete removes the session with the given id, or returns ErrNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// List returns all sessions ordered by creation time.
func (r *Repository) List(ctx context.Context) ([]*survey.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*survey.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ repository.SurveyRepository = (*Repository)(nil)
