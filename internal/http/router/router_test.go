package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apphttp "brickworks_backend/internal/http"
	"brickworks_backend/platform/httpkit"
	"brickworks_backend/platform/logger"
)

type stubRouterConfig struct{}

func (stubRouterConfig) GetHTTPAddr() string      { return ":8080" }
func (stubRouterConfig) GetCORSAllowAll() bool    { return true }
func (stubRouterConfig) GetCORSOrigins() []string { return nil }
func (stubRouterConfig) GetCORSAllowCreds() bool  { return false }
func (stubRouterConfig) GetJWTSecret() string     { return "test-secret" }

type stubHealth struct{}

func (stubHealth) Ping(context.Context) error { return nil }

func newTestApp() *apphttp.App {
	return &apphttp.App{
		Config:         stubRouterConfig{},
		Logger:         logger.New("test"),
		Health:         stubHealth{},
		AuthMiddleware: func(c *gin.Context) { c.Next() },
		Version:        "test",
	}
}

func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := New(newTestApp())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body httpkit.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("404 body is not the API envelope: %q", w.Body.String())
	}
	if body.Success || body.Message != "route not found" {
		t.Fatalf("unexpected 404 envelope: %+v", body)
	}
}

func TestUnknownMethodReturnsEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := New(newTestApp())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}

	var body httpkit.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("405 body is not the API envelope: %q", w.Body.String())
	}
	if body.Success || body.Message != "method not allowed" {
		t.Fatalf("unexpected 405 envelope: %+v", body)
	}
}
