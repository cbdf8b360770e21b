package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

type stubAuthService struct {
	registerUser  *domain.User
	registerToken string
	registerErr   error

	loginUser  *domain.User
	loginToken string
	loginErr   error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (*domain.User, string, error) {
	return s.registerUser, s.registerToken, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.loginUser, s.loginToken, s.loginErr
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{
		registerUser:  &domain.User{ID: "u1", Name: "Dana Lee", Username: "dana", Role: domain.RoleStudent},
		registerToken: "signed.jwt.token",
	}
	h := NewAuthHandler(svc)

	body := `{"name": "Dana Lee", "username": "dana", "password": "hunter22"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	body := `{"name": "Dana Lee", "username": "dana", "password": "abc"}`
	c, _ := newTestContext(http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	h := NewAuthHandler(svc)

	body := `{"name": "Dana Lee", "username": "dana", "password": "hunter22"}`
	c, _ := newTestContext(http.MethodPost, "/auth/register", body)

	err := h.Register(c)
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginUser:  &domain.User{ID: "u2", Name: "Admin", Username: "admin", Role: domain.RoleAdmin},
		loginToken: "signed.jwt.token",
	}
	h := NewAuthHandler(svc)

	body := `{"username": "admin", "password": "hunter22"}`
	c, rec := newTestContext(http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	body := `{"username": "admin", "password": "wrong"}`
	c, _ := newTestContext(http.MethodPost, "/auth/login", body)

	err := h.Login(c)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"username": "admin"}`)

	err := h.Login(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
