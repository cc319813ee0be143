package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
)

const userCollection = "users"

// UserRepository maintains the auth-side metadata blob for a user.
type UserRepository interface {
	UpdateMetadata(ctx context.Context, userID string, metadata map[string]any) (map[string]any, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(cfg *config.Config) UserRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &userRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(userCollection),
	}
}

func (r *userRepository) UpdateMetadata(ctx context.Context, userID string, metadata map[string]any) (map[string]any, error) {
	set := bson.M{}
	for key, value := range metadata {
		set["metadata."+key] = value
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored struct {
		Metadata map[string]any `bson:"metadata"`
	}
	err := r.collection.
		FindOneAndUpdate(ctx, bson.M{"_id": userID}, bson.M{"$set": set}, opts).
		Decode(&stored)
	if err != nil {
		return nil, err
	}
	return stored.Metadata, nil
}
