package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quirknotes/server/internal/model"
	"github.com/quirknotes/server/internal/testutil"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuth_RegisterUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, "alice", "secret1").Return("token", nil)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/registerUser", strings.NewReader(`{"username":"alice","password":"secret1"}`))
		h.RegisterUser(rec, r)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "User registered successfully.", body["response"])
		assert.Equal(t, "token", body["token"])
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, "alice", "").
			Return("", model.NewValidationError("Username and password both needed to register."))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/registerUser", strings.NewReader(`{"username":"alice"}`))
		h.RegisterUser(rec, r)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username and password both needed to register.", decodeBody(t, rec)["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewAuth(&MockAuthService{}, testutil.MakeNoopLogger())

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/registerUser", strings.NewReader(`{`))
		h.RegisterUser(rec, r)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, "alice", "secret1").Return("", model.ErrUsernameTaken)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/registerUser", strings.NewReader(`{"username":"alice","password":"secret1"}`))
		h.RegisterUser(rec, r)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username already exists.", decodeBody(t, rec)["error"])
	})

	t.Run("internal error leaks no detail", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Register", mock.Anything, "alice", "secret1").
			Return("", errors.New("dynamodb: connection refused to 10.0.0.5"))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/registerUser", strings.NewReader(`{"username":"alice","password":"secret1"}`))
		h.RegisterUser(rec, r)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error.", decodeBody(t, rec)["error"])
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	})
}

func TestAuth_LoginUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Login", mock.Anything, "alice", "secret1").Return("token", nil)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/loginUser", strings.NewReader(`{"username":"alice","password":"secret1"}`))
		h.LoginUser(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "User logged in succesfully.", body["response"])
		assert.Equal(t, "token", body["token"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Login", mock.Anything, "alice", "wrong").Return("", model.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/loginUser", strings.NewReader(`{"username":"alice","password":"wrong"}`))
		h.LoginUser(rec, r)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication failed.", decodeBody(t, rec)["error"])
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &MockAuthService{}
		h := NewAuth(svc, testutil.MakeNoopLogger())

		svc.On("Login", mock.Anything, "", "").
			Return("", model.NewValidationError("Username and password both needed to login."))

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/loginUser", strings.NewReader(`{}`))
		h.LoginUser(rec, r)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
