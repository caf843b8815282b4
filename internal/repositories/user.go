package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserReadRepository struct {
	col *mongo.Collection
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{col: db.Collection(UsersCollection)}
}

// GetByUsername returns nil and no error when no user has that username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByID returns nil and no error when the id is well formed but unknown.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserReadRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, filter).Decode(&user)

	logger.Log.Infow("query",
		"collection", UsersCollection,
		"op", "findOne",
		"filter", filter,
		"found", err == nil,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	col *mongo.Collection
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{col: db.Collection(UsersCollection)}
}

// Save inserts a new user and returns its hex id. A taken username or email
// surfaces as ErrAlreadyExists through the unique indexes.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) (string, error) {
	res, err := r.col.InsertOne(ctx, user)

	logger.Log.Infow("query",
		"collection", UsersCollection,
		"op", "insertOne",
		"username", user.Username,
		"email", user.Email,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return "", fmt.Errorf("%w: %v", ErrAlreadyExists, err)
	}
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = oid
	return oid.Hex(), nil
}

// EnsureIndexes creates the unique username and email indexes.
func (r *UserWriteRepository) EnsureIndexes(ctx context.Context) error {
	names, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	logger.Log.Infow("create indexes",
		"collection", UsersCollection,
		"indexes", names,
		"error", err,
	)

	return err
}
