package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"dandee/pkg/config"
)

const scheduledJobCollection = "scheduled_jobs"

// ScheduledJobRepository inserts sanitized scheduled-job documents. Insert,
// not upsert: a quote may legitimately produce more than one scheduled job.
type ScheduledJobRepository interface {
	Insert(ctx context.Context, job map[string]any) (map[string]any, error)
}

type scheduledJobRepository struct {
	collection *mongo.Collection
}

func NewScheduledJobRepository(cfg *config.Config) ScheduledJobRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &scheduledJobRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(scheduledJobCollection),
	}
}

func (r *scheduledJobRepository) Insert(ctx context.Context, job map[string]any) (map[string]any, error) {
	doc := make(map[string]any, len(job)+1)
	for key, value := range job {
		doc[key] = value
	}
	if id, ok := doc["id"]; ok {
		doc["_id"] = id
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return job, nil
}
