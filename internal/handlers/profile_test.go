package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/car-rental/internal/middlewares"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfileHandler(t *testing.T) {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "John Doe",
		Email:    "john@example.com",
		Username: "john",
		Password: "$2a$10$hash",
	}

	req := httptest.NewRequest(http.MethodGet, "/my-profile", nil)
	req = req.WithContext(middlewares.WithUser(req.Context(), user))
	rr := httptest.NewRecorder()

	NewProfileHandler()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{
		"fullName": "John Doe",
		"email":    "john@example.com",
		"username": "john",
	}, resp)
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestProfileHandler_NoUser(t *testing.T) {
	rr := httptest.NewRecorder()
	NewProfileHandler()(rr, httptest.NewRequest(http.MethodGet, "/my-profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
