package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dandee/pkg/config"
	"dandee/pkg/model"
)

const paymentCollection = "payments"

type PaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) error
	UpdateStatus(ctx context.Context, id, status, stripePaymentIntentID string, paymentDate *time.Time) (*model.Payment, error)
	FindByContractor(ctx context.Context, contractorID string) ([]*model.Payment, error)
}

type paymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository returns nil when no store is connected; callers treat
// a nil repository as "persistence disabled".
func NewPaymentRepository(cfg *config.Config) PaymentRepository {
	if cfg.Client.Mongo == nil {
		return nil
	}
	return &paymentRepository{
		collection: cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(paymentCollection),
	}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *model.Payment) error {
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id, status, stripePaymentIntentID string, paymentDate *time.Time) (*model.Payment, error) {
	set := bson.M{"status": status}
	if stripePaymentIntentID != "" {
		set["stripe_payment_intent_id"] = stripePaymentIntentID
	}
	if paymentDate != nil {
		set["payment_date"] = paymentDate
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Payment
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *paymentRepository) FindByContractor(ctx context.Context, contractorID string) ([]*model.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"contractor_id": contractorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []*model.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
