package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gantt-chart/internal/middleware"
	"gantt-chart/pkg/log"
)

func newRouter(mw middleware.Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 60})
	r := newRouter(mw, mw.RateLimit())

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	if codes[http.StatusOK] != 6 || codes[http.StatusTooManyRequests] != 4 {
		t.Errorf("codes = %v, want 6 OK and 4 throttled", codes)
	}

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("second client got %d", w.Code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RateLimit())
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := newRouter(mw, mw.RequestID(), mw.AccessLog())

	t.Run("propagates caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "abc")
		r.ServeHTTP(w, req)
		if w.Body.String() != "abc" || w.Header().Get(middleware.HeaderRequestID) != "abc" {
			t.Errorf("body=%q header=%q", w.Body.String(), w.Header().Get(middleware.HeaderRequestID))
		}
	})

	t.Run("assigns new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil).WithContext(context.Background()))
		if len(w.Body.String()) != 36 {
			t.Errorf("expected a uuid, got %q", w.Body.String())
		}
	})
}
