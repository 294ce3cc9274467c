package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/handler"
	"career-compass/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// ManualMockAuthService
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) GenerateAdminToken(ctx context.Context, subject string, ttl time.Duration) (*dto.TokenResponse, error) {
	panic("ManualMockAuthService.GenerateAdminToken not implemented")
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

// MockSessionService
type MockSessionService struct {
	SaveFunc func(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error)
	GetFunc  func(ctx context.Context, sessionID string) (*domain.Session, error)
	ListFunc func(ctx context.Context) ([]*domain.Session, error)
}

func (m *MockSessionService) Save(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, draft)
	}
	panic("MockSessionService.SaveFunc not implemented")
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	panic("MockSessionService.GetFunc not implemented")
}

func (m *MockSessionService) List(ctx context.Context) ([]*domain.Session, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	panic("MockSessionService.ListFunc not implemented")
}

func newErrorApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func TestSessionHandler_SaveStorageFailure(t *testing.T) {
	app := newErrorApp()
	h := handler.NewSessionHandler(&MockSessionService{
		SaveFunc: func(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
			return nil, domain.NewStorageError("Failed to save session", errors.New("disk full"))
		},
	})
	app.Post("/session", h.SaveSession)

	req := httptest.NewRequest("POST", "/session", strings.NewReader(`{"grade":"Class 12"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Failed to save session", body.Error)
	assert.Equal(t, string(domain.CodeStorage), body.Code)
}

func TestSessionHandler_ListFailure(t *testing.T) {
	app := newErrorApp()
	h := handler.NewSessionHandler(&MockSessionService{
		ListFunc: func(ctx context.Context) ([]*domain.Session, error) {
			return nil, errors.New("permission denied")
		},
	})
	app.Get("/session", h.ListSessions)

	resp, err := app.Test(httptest.NewRequest("GET", "/session", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Error)
}

func TestSessionHandler_GetPassesID(t *testing.T) {
	app := newErrorApp()
	var gotID string
	h := handler.NewSessionHandler(&MockSessionService{
		GetFunc: func(ctx context.Context, sessionID string) (*domain.Session, error) {
			gotID = sessionID
			return domain.NewSession(sessionID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.SessionDraft{Grade: "Class 10"}), nil
		},
	})
	app.Get("/session/:id", h.GetSession)

	resp, err := app.Test(httptest.NewRequest("GET", "/session/01HZY8J5QW2M3N4P5R6S7T8V9X", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "01HZY8J5QW2M3N4P5R6S7T8V9X", gotID)

	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Session)
	assert.Equal(t, "Class 10", body.Session.Grade)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]handler.Pinger
		expectedStatus int
		expectedBody   dto.HealthResponse
	}{
		{
			name:           "no dependencies",
			checks:         nil,
			expectedStatus: http.StatusOK,
			expectedBody:   dto.HealthResponse{Status: "ok"},
		},
		{
			name: "all healthy",
			checks: map[string]handler.Pinger{
				"database": handler.PingerFunc(func(ctx context.Context) error { return nil }),
				"cache":    nil,
			},
			expectedStatus: http.StatusOK,
			expectedBody:   dto.HealthResponse{Status: "ok", Checks: map[string]string{"database": "ok"}},
		},
		{
			name: "cache down",
			checks: map[string]handler.Pinger{
				"database": handler.PingerFunc(func(ctx context.Context) error { return nil }),
				"cache":    handler.PingerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: dto.HealthResponse{Status: "degraded", Checks: map[string]string{
				"database": "ok",
				"cache":    "unavailable",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newErrorApp()
			app.Get("/healthz", handler.NewHealthHandler(tt.checks).Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body dto.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
