package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/car-rental/internal/jwt"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/repositories"
	"github.com/sbilibin2017/car-rental/internal/services"
	"github.com/sbilibin2017/car-rental/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: primitive.NewObjectID(), Username: "alice"}
	userID := user.ID.Hex()

	tests := []struct {
		name             string
		mockSetup        func(tk *MockTokener, ug *MockUserGetter)
		expectedStatus   int
		expectedMessage  string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoToken)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgNoToken,
		},
		{
			name: "MalformedHeader",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrMalformedHeader)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgInvalidToken,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tk.EXPECT().GetUserID(gomock.Any(), "sometoken").
					Return("", jwt.ErrInvalidToken)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgInvalidToken,
		},
		{
			name: "UserNotFound",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				ug.EXPECT().GetUserByID(gomock.Any(), userID).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgUserNotFound,
		},
		{
			name: "MalformedUserID",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return("xyz", nil)
				ug.EXPECT().GetUserByID(gomock.Any(), "xyz").
					Return(nil, repositories.ErrInvalidID)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgInvalidToken,
		},
		{
			name: "StoreFailure",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				ug.EXPECT().GetUserByID(gomock.Any(), userID).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: MsgInvalidToken,
		},
		{
			name: "ValidToken",
			mockSetup: func(tk *MockTokener, ug *MockUserGetter) {
				tk.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tk.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				ug.EXPECT().GetUserByID(gomock.Any(), userID).
					Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, user, UserFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/my-profile", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)

			if tt.expectedMessage != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, map[string]string{"message": tt.expectedMessage}, resp)
			}
		})
	}
}

func TestAuthMiddleware_LogsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zapcore.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })

	mockTokener := NewMockTokener(ctrl)
	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoToken)

	handler := LoggingMiddleware(AuthMiddleware(mockTokener, NewMockUserGetter(ctrl))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}),
	))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/my-profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	entries := logs.FilterMessage("authorization failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rr.Header().Get("X-Request-ID"), entries[0].ContextMap()["request_id"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
}

func TestUserFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, UserFromContext(req.Context()))
}
