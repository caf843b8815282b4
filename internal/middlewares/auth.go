package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/car-rental/internal/jwt"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (string, error)
}

// UserGetter loads the user a verified token points to.
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Messages returned by the gate.
const (
	MsgNoToken      = "No token provided"
	MsgInvalidToken = "Invalid token"
	MsgUserNotFound = "User not found"
)

// AuthMiddleware returns a middleware that verifies the bearer token, loads
// the user it names and stores it in the request context.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := RequestIDFromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", reqID, "err", err)
				if errors.Is(err, jwt.ErrNoToken) {
					unauthorized(w, MsgNoToken)
				} else {
					unauthorized(w, MsgInvalidToken)
				}
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", reqID, "err", err)
				unauthorized(w, MsgInvalidToken)
				return
			}

			user, err := users.GetUserByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("authorization failed", "request_id", reqID, "userID", userID, "err", err)
				if errors.Is(err, services.ErrUserNotFound) {
					unauthorized(w, MsgUserNotFound)
				} else {
					unauthorized(w, MsgInvalidToken)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{Message: msg})
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	userKey contextKey = iota
	requestIDKey
)

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext retrieves the authenticated user. Returns nil if not present.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
