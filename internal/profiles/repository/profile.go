package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
	"dandee/pkg/sanitizer"
)

const (
	customerCollection   = "customer_profiles"
	contractorCollection = "contractor_profiles"
)

// ProfileRepository stores sanitized profile documents keyed on user_id.
// Payloads stay untyped: the allow-list is the schema.
type ProfileRepository interface {
	Upsert(ctx context.Context, profileType sanitizer.ProfileType, profile map[string]any) (map[string]any, error)
	FindByUser(ctx context.Context, profileType sanitizer.ProfileType, userID string) (map[string]any, error)
}

type profileRepository struct {
	db *mongo.Database
}

func NewProfileRepository(cfg *config.Config) ProfileRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &profileRepository{
		db: cfg.Client.Mongo.Database(cfg.MongoDatabaseName),
	}
}

func collectionFor(profileType sanitizer.ProfileType) string {
	if profileType == sanitizer.Contractor {
		return contractorCollection
	}
	return customerCollection
}

func (r *profileRepository) Upsert(ctx context.Context, profileType sanitizer.ProfileType, profile map[string]any) (map[string]any, error) {
	filter := bson.M{sanitizer.OwnerIDField: profile[sanitizer.OwnerIDField]}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored bson.M
	err := r.db.Collection(collectionFor(profileType)).
		FindOneAndUpdate(ctx, filter, bson.M{"$set": profile}, opts).
		Decode(&stored)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *profileRepository) FindByUser(ctx context.Context, profileType sanitizer.ProfileType, userID string) (map[string]any, error) {
	var stored bson.M
	err := r.db.Collection(collectionFor(profileType)).
		FindOne(ctx, bson.M{sanitizer.OwnerIDField: userID}).
		Decode(&stored)
	if err != nil {
		return nil, err
	}
	return stored, nil
}
