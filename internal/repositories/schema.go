package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SchemaRepository creates collections that do not exist yet.
type SchemaRepository struct {
	db *mongo.Database
}

func NewSchemaRepository(db *mongo.Database) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// EnsureCollections creates every missing collection and returns the names it created.
func (r *SchemaRepository) EnsureCollections(ctx context.Context, names []string) ([]string, error) {
	existing, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	present := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		present[name] = struct{}{}
	}

	var created []string
	for _, name := range names {
		if _, ok := present[name]; ok {
			continue
		}
		if err := r.db.CreateCollection(ctx, name); err != nil {
			// another process may have created it in between
			var cmdErr mongo.CommandError
			if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsCode {
				continue
			}
			return created, fmt.Errorf("create collection %s: %w", name, err)
		}
		created = append(created, name)
	}

	logger.Log.Infow("ensure collections",
		"requested", names,
		"created", created,
	)

	return created, nil
}
