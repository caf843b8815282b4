package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/repositories"
)

//go:generate mockgen -source=seed.go -destination=mock_seed.go -package=services

// CollectionEnsurer creates missing collections.
type CollectionEnsurer interface {
	EnsureCollections(ctx context.Context, names []string) ([]string, error)
}

// CarSeeder writes the fixed inventory.
type CarSeeder interface {
	InsertIfAbsent(ctx context.Context, car models.Car) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

// UserIndexer creates the user uniqueness indexes.
type UserIndexer interface {
	EnsureIndexes(ctx context.Context) error
}

// SeedResult reports what a seeding run changed.
type SeedResult struct {
	CollectionsCreated []string
	CarsInserted       int
	CarsExisting       int
}

// SeedService populates an empty database. Running it again is a no-op.
type SeedService struct {
	schema CollectionEnsurer
	cars   CarSeeder
	users  UserIndexer
	data   []models.Car
}

// NewSeedService creates a seeder for the given cars.
func NewSeedService(schema CollectionEnsurer, cars CarSeeder, users UserIndexer, data []models.Car) *SeedService {
	return &SeedService{
		schema: schema,
		cars:   cars,
		users:  users,
		data:   data,
	}
}

// Seed stops at the first error. Indexes are created before the cars so the
// unique name index backs every insert.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	created, err := s.schema.EnsureCollections(ctx, []string{
		repositories.CarsCollection,
		repositories.UsersCollection,
	})
	if err != nil {
		return res, fmt.Errorf("ensure collections: %w", err)
	}
	res.CollectionsCreated = created

	if err := s.cars.EnsureIndexes(ctx); err != nil {
		return res, fmt.Errorf("create car indexes: %w", err)
	}
	if err := s.users.EnsureIndexes(ctx); err != nil {
		return res, fmt.Errorf("create user indexes: %w", err)
	}

	for _, car := range s.data {
		inserted, err := s.cars.InsertIfAbsent(ctx, car)
		if err != nil {
			return res, fmt.Errorf("insert car %q: %w", car.Name, err)
		}
		if inserted {
			res.CarsInserted++
		} else {
			res.CarsExisting++
		}
	}

	logger.Log.Infow("database seeded",
		"collections_created", res.CollectionsCreated,
		"cars_inserted", res.CarsInserted,
		"cars_existing", res.CarsExisting,
	)

	return res, nil
}
