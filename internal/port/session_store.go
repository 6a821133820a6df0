package port

import (
	"github.com/google/uuid"

	"invopo/internal/domain"
)

// SessionStore holds per-session workflow state. State lives for the
// lifetime of the process only; no two sessions observe each other.
type SessionStore interface {
	GetOrCreate(id uuid.UUID) *domain.Session
	Get(id uuid.UUID) (*domain.Session, error)
	Delete(id uuid.UUID)
}
