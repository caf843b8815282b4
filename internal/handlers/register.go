package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/services"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, fullName, email, username, password string) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Username and email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ErrorResponse "Missing fields"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 500 {object} models.ErrorResponse "Registration failed"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.FullName == "" || req.Email == "" || req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		userID, err := svc.Register(r.Context(), req.FullName, req.Email, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already exists")
			default:
				logger.Log.Errorw("registration error", "err", err)
				writeInternalError(w, "Registration failed", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
			UserID:  userID,
		})
	}
}
