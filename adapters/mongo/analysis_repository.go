package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/remwaste/accent-analyzer/server/domain/entities"
	"github.com/remwaste/accent-analyzer/server/domain/repositories"
)

type AnalysisRepository struct {
	collection *mongo.Collection
}

// NewAnalysisRepository creates a new MongoDB analysis repository
func NewAnalysisRepository(db *mongo.Database) repositories.AnalysisRepository {
	return &AnalysisRepository{
		collection: db.Collection("analyses"),
	}
}

// Create implements repositories.AnalysisRepository
func (r *AnalysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}
	if err := analysis.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = now
	}
	if analysis.UpdatedAt.IsZero() {
		analysis.UpdatedAt = now
	}

	if _, err := r.collection.InsertOne(ctx, analysis); err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetByID implements repositories.AnalysisRepository
func (r *AnalysisRepository) GetByID(ctx context.Context, id string) (*entities.Analysis, error) {
	if id == "" {
		return nil, errors.New("analysis ID cannot be empty")
	}

	var analysis entities.Analysis
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&analysis)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	return &analysis, nil
}

// List implements repositories.AnalysisRepository, newest first
func (r *AnalysisRepository) List(ctx context.Context, limit int) ([]*entities.Analysis, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer cursor.Close(ctx)

	var analyses []*entities.Analysis
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, fmt.Errorf("failed to decode analyses: %w", err)
	}

	return analyses, nil
}

// Update implements repositories.AnalysisRepository
func (r *AnalysisRepository) Update(ctx context.Context, analysis *entities.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}
	if analysis.ID == "" {
		return errors.New("analysis ID cannot be empty")
	}

	update := bson.M{
		"$set": bson.M{
			"status":     analysis.Status,
			"report":     analysis.Report,
			"error":      analysis.Error,
			"updated_at": analysis.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": analysis.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update analysis %s: %w", analysis.ID, err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrAnalysisNotFound
	}
	return nil
}
