package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/middleware"
	"campus-advisor/pkg/log"
)

type fakeUseCase struct {
	got advice.ListInput
}

func (f *fakeUseCase) Log(ctx context.Context, in advice.LogInput) (advice.Entry, error) {
	return advice.Entry{}, nil
}

func (f *fakeUseCase) List(ctx context.Context, in advice.ListInput) (advice.ListOutput, error) {
	f.got = in
	if in.Category == "bogus" {
		return advice.ListOutput{}, advice.ErrInvalidCategory
	}
	return advice.ListOutput{Entries: []advice.Entry{{ID: "a1", Category: advice.CategoryStudyPlan, Metadata: `{"agent_type":"academic"}`}}}, nil
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &fakeUseCase{}
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/advice?category=study_plan&limit=5", nil)
	req.Header.Set(middleware.HeaderUserID, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if uc.got.UserID != "u1" || uc.got.Category != "study_plan" || uc.got.Limit != 5 {
		t.Errorf("input = %+v", uc.got)
	}
	var body struct {
		Data listResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Total != 1 || string(body.Data.Advice[0].Metadata) != `{"agent_type":"academic"}` {
		t.Errorf("body = %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/advice?category=bogus", nil)
	req.Header.Set(middleware.HeaderUserID, "u1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bogus category: %d", w.Code)
	}
}
