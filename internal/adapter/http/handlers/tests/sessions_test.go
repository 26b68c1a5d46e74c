package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GNaves/Tasks-API/internal/adapter/http/dto"
	"github.com/GNaves/Tasks-API/internal/adapter/http/handlers"
	"github.com/GNaves/Tasks-API/internal/adapter/http/middleware"
	"github.com/GNaves/Tasks-API/internal/core/domain"
	"github.com/GNaves/Tasks-API/pkg/apierrors"
)

func TestSessionHandler_Create_Success(t *testing.T) {
	serviceMock := new(sessionServiceMock)
	serviceMock.On("Authenticate", mock.Anything, domain.Credentials{
		Email:    "gabriel@example.com",
		Password: "secret123",
	}).Return("signed.jwt.token", domain.User{
		ID:    testUserID,
		Name:  "Gabriel Naves",
		Email: "gabriel@example.com",
		Role:  domain.RoleAdmin,
	}, nil).Once()
	handler := handlers.NewSessionHandler(serviceMock)

	router := gin.New()
	router.POST("/sessions", middleware.LanguageMiddleware(), handler.Create)

	body := `{"email":"gabriel@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "signed.jwt.token", got.Token)
	require.Equal(t, testUserID, got.User.ID)
	require.Equal(t, "admin", got.User.Role)
	require.NotContains(t, rec.Body.String(), "password")
	serviceMock.AssertExpectations(t)
}

func TestSessionHandler_Create_InvalidCredentials(t *testing.T) {
	serviceMock := new(sessionServiceMock)
	serviceMock.On("Authenticate", mock.Anything, mock.Anything).
		Return("", domain.User{}, domain.ErrInvalidCredentials).Once()
	handler := handlers.NewSessionHandler(serviceMock)

	router := gin.New()
	router.POST("/sessions", middleware.LanguageMiddleware(), handler.Create)

	body := `{"email":"gabriel@example.com","password":"wrong-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "email ou senha errada!", got.Message)
}

func TestSessionHandler_Create_MissingEmail(t *testing.T) {
	serviceMock := new(sessionServiceMock)
	handler := handlers.NewSessionHandler(serviceMock)

	router := gin.New()
	router.POST("/sessions", middleware.LanguageMiddleware(), handler.Create)

	body := `{"password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}
