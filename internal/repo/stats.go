package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nhossain/bistro-server/internal/transport"
)

// StatsRepo reads across collections for the admin dashboard. Counts are
// the store's estimated counts; revenue is an exact server-side sum.
type StatsRepo struct {
	Users    *mongo.Collection
	Menu     *mongo.Collection
	Payments *mongo.Collection
}

func NewStats(db *mongo.Database) *StatsRepo {
	return &StatsRepo{
		Users:    db.Collection("users"),
		Menu:     db.Collection("menu"),
		Payments: db.Collection("payments"),
	}
}

func (r *StatsRepo) Snapshot(ctx context.Context) (transport.Stats, error) {
	var stats transport.Stats
	var err error

	if stats.Users, err = r.Users.EstimatedDocumentCount(ctx); err != nil {
		return transport.Stats{}, err
	}
	if stats.MenuItems, err = r.Menu.EstimatedDocumentCount(ctx); err != nil {
		return transport.Stats{}, err
	}
	if stats.Orders, err = r.Payments.EstimatedDocumentCount(ctx); err != nil {
		return transport.Stats{}, err
	}

	cur, err := r.Payments.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	})
	if err != nil {
		return transport.Stats{}, err
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return transport.Stats{}, err
	}
	if len(rows) > 0 {
		stats.Revenue = rows[0].TotalRevenue
	}

	return stats, nil
}
