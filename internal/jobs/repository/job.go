package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
	"dandee/pkg/model"
)

const jobCollection = "job_requests"

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*model.JobRequest, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.JobRequest, error)
}

type jobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(cfg *config.Config) JobRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &jobRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(jobCollection),
	}
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*model.JobRequest, error) {
	var job model.JobRequest
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id, status string) (*model.JobRequest, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job model.JobRequest
	err := r.collection.
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).
		Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
