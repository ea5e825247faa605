package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-advisor/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "%s|%s", UserID(c), log.RequestIDFrom(c.Request.Context()))
	})
	r.GET("/", chain...)
	return r
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.Auth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing header: got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, " user-1 ")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "user-1|" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RequestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "req-42" || w.Body.String() != "|req-42" {
		t.Errorf("request id not propagated: %q %q", w.Header().Get(HeaderRequestID), w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("request id not generated")
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one.
	mw := New(log.NewNop(), 10)
	r := newEngine(mw, mw.Auth(), mw.RateLimit())

	do := func(user string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, user)
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("a"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do("a"); code != http.StatusTooManyRequests {
		t.Errorf("second request: %d", code)
	}
	if code := do("b"); code != http.StatusOK {
		t.Errorf("other user throttled: %d", code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), 0)
	r := newEngine(mw, mw.RateLimit())
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: %d", i, w.Code)
		}
	}
}
