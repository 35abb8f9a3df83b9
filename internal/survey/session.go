package survey

import (
	"time"

	"github.com/google/uuid"
)

// Session is one survey run with its own isolated measurement store.
// Sessions are never shared between clients; each owns its store for
// the lifetime of the run.
type Session struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Store     *Store
}

// NewSession creates a survey session with an empty store.
func NewSession(name string) *Session {
	return &Session{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		Store:     NewStore(),
	}
}
