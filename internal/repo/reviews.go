package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reviews are read-only from this service's side.
type ReviewsRepo struct {
	C *mongo.Collection
}

func NewReviews(db *mongo.Database) *ReviewsRepo {
	return &ReviewsRepo{C: db.Collection("reviews")}
}

func (r *ReviewsRepo) All(ctx context.Context) ([]bson.M, error) {
	cur, err := r.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []bson.M
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
