package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhossain/bistro-server/internal/transport"
)

// Menu documents are stored and served verbatim; only the allow-listed
// patch fields ever go through a typed shape.
type MenuRepo struct {
	C *mongo.Collection
}

func NewMenu(db *mongo.Database) *MenuRepo {
	return &MenuRepo{C: db.Collection("menu")}
}

func (r *MenuRepo) All(ctx context.Context) ([]bson.M, error) {
	cur, err := r.C.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []bson.M
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByID returns (nil, nil) for an absent document.
func (r *MenuRepo) ByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var item bson.M
	err := r.C.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuRepo) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *MenuRepo) Update(ctx context.Context, id primitive.ObjectID, patch transport.MenuItemPatch) (int64, int64, error) {
	res, err := r.C.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":     patch.Name,
			"category": patch.Category,
			"price":    patch.Price,
			"recipe":   patch.Recipe,
			"image":    patch.Image,
		}},
	)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MenuRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.C.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
