package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhossain/bistro-server/internal/models"
)

type UsersRepo struct {
	C *mongo.Collection
}

func NewUsers(db *mongo.Database) *UsersRepo {
	return &UsersRepo{C: db.Collection("users")}
}

func (r *UsersRepo) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ByEmail returns (nil, nil) when no account exists for the address.
func (r *UsersRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.C.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert writes the caller-supplied document verbatim.
func (r *UsersRepo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.C.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *UsersRepo) GrantAdmin(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	res, err := r.C.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
