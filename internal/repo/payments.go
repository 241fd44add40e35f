package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhossain/bistro-server/internal/models"
)

// Payment records are append-only: settled once, never updated or removed.
type PaymentsRepo struct {
	C *mongo.Collection
}

func NewPayments(db *mongo.Database) *PaymentsRepo {
	return &PaymentsRepo{C: db.Collection("payments")}
}

func (r *PaymentsRepo) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := r.C.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Insert stores the settlement document verbatim, client fields included.
func (r *PaymentsRepo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
