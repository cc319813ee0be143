package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
	"dandee/pkg/model"
)

const reviewCollection = "reviews"

type ReviewRepository interface {
	FindByContractor(ctx context.Context, contractorID string) ([]*model.Review, error)
}

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(cfg *config.Config) ReviewRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &reviewRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(reviewCollection),
	}
}

func (r *reviewRepository) FindByContractor(ctx context.Context, contractorID string) ([]*model.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"contractor_id": contractorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []*model.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
