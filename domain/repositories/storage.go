package repositories

import (
	"context"
	"errors"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
)

// ErrAnalysisNotFound is returned when no analysis exists for the given ID
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository defines data access methods for analysis jobs
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *entities.Analysis) error
	GetByID(ctx context.Context, id string) (*entities.Analysis, error)
	// List returns the most recent analyses, newest first
	List(ctx context.Context, limit int) ([]*entities.Analysis, error)
	Update(ctx context.Context, analysis *entities.Analysis) error
}
