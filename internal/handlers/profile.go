package handlers

import (
	"net/http"

	"github.com/sbilibin2017/car-rental/internal/middlewares"
	"github.com/sbilibin2017/car-rental/internal/models"
)

// NewProfileHandler returns the profile of the user attached by AuthMiddleware.
// @Summary Get my profile
// @Description Returns full name, email and username of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} models.ProfileResponse "User profile"
// @Failure 401 {object} models.ErrorResponse "No token provided / Invalid token / User not found"
// @Router /my-profile [get]
// @Security BearerAuth
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, middlewares.MsgUserNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.ProfileResponse{
			FullName: user.FullName,
			Email:    user.Email,
			Username: user.Username,
		})
	}
}
