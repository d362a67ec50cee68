package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Middleware(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		FromGin(c, nil).Info("inside")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("Expected generated request id header")
	}
	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.ContextMap()["request_id"] != id {
			t.Errorf("Entry %q missing request id: %v", e.Message, e.ContextMap())
		}
	}
	if entries[1].ContextMap()["status"] != int64(http.StatusOK) {
		t.Errorf("Unexpected status field: %v", entries[1].ContextMap()["status"])
	}
}

func TestMiddlewareKeepsIncomingRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("Expected propagated id, got %q", got)
	}
}

func TestNewLevels(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		l, err := New("warn", env, "svc")
		if err != nil {
			t.Fatalf("New(%s): %v", env, err)
		}
		if l.Core().Enabled(zap.InfoLevel) {
			t.Errorf("%s logger should not log info at warn level", env)
		}
	}
}
