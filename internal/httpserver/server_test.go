package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-advisor/internal/middleware"
	"campus-advisor/internal/planner"
	"campus-advisor/pkg/log"
)

type stubPlanner struct{}

func (stubPlanner) StudySchedule(ctx context.Context, in planner.StudyScheduleInput) (planner.ScheduleOutput, error) {
	return planner.ScheduleOutput{}, nil
}

func (stubPlanner) ExamPrep(ctx context.Context, in planner.ExamPrepInput) (planner.ScheduleOutput, error) {
	return planner.ScheduleOutput{}, nil
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.Error(t, err)
	_, err = New(log.NewNop(), Config{Port: 8080})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	var readyErr error
	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: EnvironmentProduction,
		ReadyCheck:  func(ctx context.Context) error { return readyErr },
	})
	require.NoError(t, err)
	h := srv.Handler()

	w := get(h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ServiceName)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	assert.Equal(t, http.StatusOK, get(h, "/live").Code)
	assert.Equal(t, http.StatusOK, get(h, "/ready").Code)

	readyErr = errors.New("database is locked")
	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/ready").Code)
}

func TestDomainRoutes_OnlyConfigured(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, Planner: stubPlanner{}})
	require.NoError(t, err)
	h := srv.Handler()

	// Registered but unauthenticated.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/exam-prep", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, http.StatusNotFound, get(h, "/api/v1/resources").Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Port: 18931, Mode: gin.TestMode})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
