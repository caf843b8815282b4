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

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return a JWT token valid for one hour
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ErrorResponse "Missing fields"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Login failed"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			req.Username == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Username and password are required")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			// unknown user and wrong password get the same response
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid credentials")
			default:
				logger.Log.Errorw("login error", "err", err)
				writeInternalError(w, "Login failed", err)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
	}
}
