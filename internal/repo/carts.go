package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartsRepo struct {
	C *mongo.Collection
}

func NewCarts(db *mongo.Database) *CartsRepo {
	return &CartsRepo{C: db.Collection("carts")}
}

func (r *CartsRepo) ByEmail(ctx context.Context, email string) ([]bson.M, error) {
	cur, err := r.C.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	var items []bson.M
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartsRepo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *CartsRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.C.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteMany removes exactly the listed cart documents; anything outside
// the id set stays untouched.
func (r *CartsRepo) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.C.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
