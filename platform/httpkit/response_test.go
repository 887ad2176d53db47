package httpkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"brickworks_backend/platform/apperr"
	"brickworks_backend/platform/logger"
)

func newTestEngine(log *logger.Logger, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestLogger(log))
	engine.GET("/test", handler)
	return engine
}

func bufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(buf, nil))}
}

func TestHandleErrorLogsUnexpectedError(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(bufferLogger(&buf), func(c *gin.Context) {
		HandleError(c, errors.New("connect order db: connection refused"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the API envelope: %v", err)
	}
	if body.Success || body.Message != "internal server error" {
		t.Fatalf("expected sanitized envelope, got %+v", body)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatal("expected underlying error to be hidden from the response")
	}

	logged := buf.String()
	if !strings.Contains(logged, "unhandled error") {
		t.Fatalf("expected unhandled error log entry, got %q", logged)
	}
	if !strings.Contains(logged, "connection refused") {
		t.Fatalf("expected full error in log output, got %q", logged)
	}
}

func TestHandleErrorLogsInternalKind(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(bufferLogger(&buf), func(c *gin.Context) {
		HandleError(c, apperr.Wrap(apperr.KindInternal, "media storage is not configured", errors.New("minio client nil")))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "media storage is not configured") {
		t.Fatalf("expected internal error to be logged, got %q", buf.String())
	}
}

func TestHandleErrorSkipsLoggingForDomainErrors(t *testing.T) {
	var buf bytes.Buffer
	engine := newTestEngine(bufferLogger(&buf), func(c *gin.Context) {
		HandleError(c, apperr.NotFound("product not found"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if strings.Contains(buf.String(), "unhandled error") {
		t.Fatalf("expected no unhandled error log for a domain error, got %q", buf.String())
	}
}
