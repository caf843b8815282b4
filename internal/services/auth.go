package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/repositories"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// PasswordCost is the bcrypt cost used for new passwords.
const PasswordCost = 10

// maxPasswordBytes is the longest input bcrypt accepts. Longer passwords are
// truncated, so only their first 72 bytes count.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
// Both methods return a nil user and no error when nothing matches.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (string, error)
}

// UserCache caches users by id.
type UserCache interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
	cache  UserCache   // optional
	events EventWriter // optional
	now    func() time.Time
}

// NewAuthService creates a new AuthService instance. cache and events may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	cache UserCache,
	events EventWriter,
) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		cache:  cache,
		events: events,
		now:    time.Now,
	}
}

// Register creates a user and returns its id. Uniqueness of username and
// email is enforced by the store, not by a prior lookup.
func (svc *AuthService) Register(ctx context.Context, fullName, email, username, password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword(passwordBytes(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	user := &models.User{
		FullName:  fullName,
		Email:     email,
		Username:  username,
		Password:  string(hashedPassword),
		CreatedAt: svc.now().UTC(),
	}

	userID, err := svc.writer.Save(ctx, user)
	if errors.Is(err, repositories.ErrAlreadyExists) {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return "", ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	svc.publishRegistered(ctx, models.UserRegistered{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Timestamp: user.CreatedAt.Unix(),
	})

	return userID, nil
}

// publishRegistered publishes the event to Kafka. Failures are logged only.
func (svc *AuthService) publishRegistered(ctx context.Context, event models.UserRegistered) {
	if svc.events == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "user_id", event.UserID)
	}
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordBytes(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID.Hex())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// GetUserByID returns the user a verified token points to, from the cache
// when one is configured and holds it.
func (svc *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("failed to read user cache", "userID", id, "error", err)
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "userID", id, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", id)
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("failed to cache user", "userID", id, "error", err)
		}
	}

	return user, nil
}
