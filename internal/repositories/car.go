package repositories

import (
	"context"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CarReadRepository struct {
	col *mongo.Collection
}

func NewCarReadRepository(db *mongo.Database) *CarReadRepository {
	return &CarReadRepository{col: db.Collection(CarsCollection)}
}

// List returns the cars matching every set field of filter, cheapest first.
func (r *CarReadRepository) List(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	query := carQuery(filter)
	opts := options.Find().SetSort(bson.D{{Key: "price_per_day", Value: 1}})

	cars := make([]models.Car, 0)
	cur, err := r.col.Find(ctx, query, opts)
	if err == nil {
		err = cur.All(ctx, &cars)
	}

	logger.Log.Infow("query",
		"collection", CarsCollection,
		"op", "find",
		"filter", query,
		"result", len(cars),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return cars, nil
}

func carQuery(filter models.CarFilter) bson.M {
	query := bson.M{}
	if filter.Year != nil {
		query["year"] = *filter.Year
	}
	if filter.Color != "" {
		query["color"] = filter.Color
	}
	if filter.SteeringType != "" {
		query["steering_type"] = filter.SteeringType
	}
	if filter.NumberOfSeats != nil {
		query["number_of_seats"] = *filter.NumberOfSeats
	}
	return query
}

type CarWriteRepository struct {
	col *mongo.Collection
}

func NewCarWriteRepository(db *mongo.Database) *CarWriteRepository {
	return &CarWriteRepository{col: db.Collection(CarsCollection)}
}

// InsertIfAbsent inserts car unless a car with the same name exists and
// reports whether it inserted. The upsert is atomic on the unique name index.
func (r *CarWriteRepository) InsertIfAbsent(ctx context.Context, car models.Car) (bool, error) {
	car.ID = primitive.NilObjectID
	res, err := r.col.UpdateOne(ctx,
		bson.M{"name": car.Name},
		bson.M{"$setOnInsert": car},
		options.Update().SetUpsert(true),
	)

	inserted := err == nil && res.UpsertedCount == 1
	logger.Log.Infow("query",
		"collection", CarsCollection,
		"op", "upsert",
		"name", car.Name,
		"inserted", inserted,
		"error", err,
	)

	// a concurrent seeder won the race for this name
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// EnsureIndexes creates the ascending lookup indexes and the unique name index.
func (r *CarWriteRepository) EnsureIndexes(ctx context.Context) error {
	names, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "price_per_day", Value: 1}}},
		{Keys: bson.D{{Key: "year", Value: 1}}},
		{Keys: bson.D{{Key: "color", Value: 1}}},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	logger.Log.Infow("create indexes",
		"collection", CarsCollection,
		"indexes", names,
		"error", err,
	)

	return err
}
