package adapters

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

// MemoryAnalysisRepository is an in-memory implementation of
// AnalysisRepository, used when no MongoDB instance is configured
type MemoryAnalysisRepository struct {
	mu       sync.RWMutex
	analyses map[string]*entities.Analysis
}

var _ repositories.AnalysisRepository = (*MemoryAnalysisRepository)(nil)

// NewMemoryAnalysisRepository creates a new in-memory analysis repository
func NewMemoryAnalysisRepository() *MemoryAnalysisRepository {
	return &MemoryAnalysisRepository{
		analyses: make(map[string]*entities.Analysis),
	}
}

// Create implements AnalysisRepository
func (m *MemoryAnalysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}

	stored := *analysis
	m.analyses[analysis.ID] = &stored
	return nil
}

// GetByID implements AnalysisRepository
func (m *MemoryAnalysisRepository) GetByID(ctx context.Context, id string) (*entities.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	analysis, exists := m.analyses[id]
	if !exists {
		return nil, repositories.ErrAnalysisNotFound
	}

	found := *analysis
	return &found, nil
}

// List implements AnalysisRepository, newest first
func (m *MemoryAnalysisRepository) List(ctx context.Context, limit int) ([]*entities.Analysis, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entities.Analysis, 0, len(m.analyses))
	for _, analysis := range m.analyses {
		found := *analysis
		out = append(out, &found)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Update implements AnalysisRepository
func (m *MemoryAnalysisRepository) Update(ctx context.Context, analysis *entities.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.analyses[analysis.ID]; !exists {
		return repositories.ErrAnalysisNotFound
	}

	stored := *analysis
	m.analyses[analysis.ID] = &stored
	return nil
}
