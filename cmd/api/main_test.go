package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/car-rental/internal/jwt"
	"github.com/sbilibin2017/car-rental/internal/models"
	"github.com/sbilibin2017/car-rental/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.True(t, strings.Contains(output, "Build version: v1.0.0"))
	assert.True(t, strings.Contains(output, "Build commit: abcd1234"))
	assert.True(t, strings.Contains(output, "Build date: 2025-09-26"))
}

type apiFixture struct {
	server *httptest.Server
	reader *services.MockUserReader
	writer *services.MockUserWriter
	cars   *services.MockCarReader
	tokens *jwt.JWT
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &apiFixture{
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		cars:   services.NewMockCarReader(ctrl),
		tokens: jwt.New(jwt.WithSecretKey("test-secret")),
	}

	authService := services.NewAuthService(f.reader, f.writer, f.tokens, nil, nil)
	carService := services.NewCarService(f.cars)

	f.server = httptest.NewServer(newRouter(authService, authService, carService, f.tokens, authService))
	t.Cleanup(f.server.Close)
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, body, token string) (int, map[string]string) {
	t.Helper()

	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestRouter_RegisterLoginProfile(t *testing.T) {
	f := newAPIFixture(t)

	var saved models.User
	userID := primitive.NewObjectID()

	f.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (string, error) {
			saved = *u
			saved.ID = userID
			return userID.Hex(), nil
		})

	status, body := f.do(t, http.MethodPost, "/register",
		`{"fullName":"John Doe","email":"john@example.com","username":"john","password":"secret"}`, "")
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, userID.Hex(), body["userId"])

	f.reader.EXPECT().GetByUsername(gomock.Any(), "john").Return(&saved, nil)

	status, body = f.do(t, http.MethodPost, "/login", `{"username":"john","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, status)
	token := body["token"]
	require.NotEmpty(t, token)

	f.reader.EXPECT().GetByID(gomock.Any(), userID.Hex()).Return(&saved, nil)

	status, body = f.do(t, http.MethodGet, "/my-profile", "", token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]string{
		"fullName": "John Doe",
		"email":    "john@example.com",
		"username": "john",
	}, body)
}

func TestRouter_RegisterMissingFieldDoesNotWrite(t *testing.T) {
	f := newAPIFixture(t)

	bodies := []string{
		`{"email":"a@b.c","username":"a","password":"p"}`,
		`{"fullName":"A","username":"a","password":"p"}`,
		`{"fullName":"A","email":"a@b.c","password":"p"}`,
		`{"fullName":"A","email":"a@b.c","username":"a"}`,
	}
	for _, b := range bodies {
		status, body := f.do(t, http.MethodPost, "/register", b, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "All fields are required", body["message"])
	}
	// f.writer has no expectations: any Save call fails the test
}

func TestRouter_LoginFailuresLookAlike(t *testing.T) {
	f := newAPIFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), services.PasswordCost)
	require.NoError(t, err)

	f.reader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	f.reader.EXPECT().GetByUsername(gomock.Any(), "john").
		Return(&models.User{ID: primitive.NewObjectID(), Username: "john", Password: string(hash)}, nil)

	s1, b1 := f.do(t, http.MethodPost, "/login", `{"username":"ghost","password":"secret"}`, "")
	s2, b2 := f.do(t, http.MethodPost, "/login", `{"username":"john","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, s1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, b1, b2)
}

func TestRouter_ProfileRejectsBadTokens(t *testing.T) {
	f := newAPIFixture(t)
	userID := primitive.NewObjectID().Hex()

	expired, err := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(-time.Second)).
		Generate(context.Background(), userID)
	require.NoError(t, err)

	forged, err := jwt.New(jwt.WithSecretKey("other-secret")).Generate(context.Background(), userID)
	require.NoError(t, err)

	status, body := f.do(t, http.MethodGet, "/my-profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token provided", body["message"])

	status, body = f.do(t, http.MethodGet, "/my-profile", "", expired)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body["message"])

	status, body = f.do(t, http.MethodGet, "/my-profile", "", forged)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body["message"])

	valid, err := f.tokens.Generate(context.Background(), userID)
	require.NoError(t, err)
	f.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

	status, body = f.do(t, http.MethodGet, "/my-profile", "", valid)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not found", body["message"])
}

func TestRouter_RentalCars(t *testing.T) {
	f := newAPIFixture(t)

	year := 2020
	f.cars.EXPECT().List(gomock.Any(), models.CarFilter{Year: &year}).
		Return([]models.Car{{Name: "Toyota Corolla", Year: 2020, PricePerDay: 45}}, nil)

	resp, err := http.Get(f.server.URL + "/rental-cars?year=2020")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cars []models.Car
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cars))
	require.Len(t, cars, 1)
	assert.Equal(t, "Toyota Corolla", cars[0].Name)
}
