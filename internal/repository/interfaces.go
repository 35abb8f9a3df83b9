package repository

import (
	"context"

	"github.com/AkshayV29/rssi-heatmap-tracker/internal/survey"
	"github.com/google/uuid"
)

// SurveyRepository defines the interface for survey session operations.
// Sessions live only for the lifetime of the process; there is no
// persistence beyond CSV export.
type SurveyRepository interface {
	Create(ctx context.Context, session *survey.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*survey.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*survey.Session, error)
}
