package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
	"dandee/pkg/model"
)

const notificationCollection = "notifications"

type NotificationRepository interface {
	Insert(ctx context.Context, notification *model.Notification) error
	FindByUser(ctx context.Context, userID string, limit int) ([]*model.Notification, error)
}

type notificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(cfg *config.Config) NotificationRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &notificationRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(notificationCollection),
	}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *model.Notification) error {
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*model.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []*model.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
