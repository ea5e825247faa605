package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "campus-advisor/pkg/errors"
	"campus-advisor/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reply := map[string]any{"intent": "wellness"}

	tests := []struct {
		name        string
		write       func(c *gin.Context)
		wantStatus  int
		wantCode    int
		wantMessage string
		wantData    bool
	}{
		{
			name:        "ok",
			write:       func(c *gin.Context) { response.OK(c, reply) },
			wantStatus:  http.StatusOK,
			wantCode:    0,
			wantMessage: response.MessageSuccess,
			wantData:    true,
		},
		{
			name:        "created",
			write:       func(c *gin.Context) { response.Created(c, reply) },
			wantStatus:  http.StatusCreated,
			wantCode:    0,
			wantMessage: response.MessageSuccess,
			wantData:    true,
		},
		{
			name:        "plain error is a bad request",
			write:       func(c *gin.Context) { response.Error(c, errors.New("message is required"), nil) },
			wantStatus:  http.StatusBadRequest,
			wantCode:    1,
			wantMessage: "message is required",
		},
		{
			name: "http error keeps its status",
			write: func(c *gin.Context) {
				response.Error(c, pkgErrors.NewHTTPError(http.StatusConflict, "email already registered"), nil)
			},
			wantStatus:  http.StatusConflict,
			wantCode:    http.StatusConflict,
			wantMessage: "email already registered",
		},
		{
			name: "wrapped http error is still found",
			write: func(c *gin.Context) {
				response.Error(c, fmt.Errorf("profile: %w", pkgErrors.ErrNotFound), nil)
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "Not found",
		},
		{
			name:        "5xx http error hides its message",
			write:       func(c *gin.Context) { response.Error(c, pkgErrors.ErrInternalServerError, nil) },
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.InternalServerErrorCode,
			wantMessage: response.DefaultErrorMessage,
		},
		{
			name:        "internal error never leaks the cause",
			write:       func(c *gin.Context) { response.InternalError(c, errors.New("sqlite: database is locked")) },
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.InternalServerErrorCode,
			wantMessage: response.DefaultErrorMessage,
		},
		{
			name:        "unauthorized",
			write:       response.Unauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantCode:    401,
			wantMessage: "Unauthorized",
		},
		{
			name:        "too many requests",
			write:       response.TooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    429,
			wantMessage: "Too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body struct {
				ErrorCode int            `json:"error_code"`
				Message   string         `json:"message"`
				Data      map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.ErrorCode)
			assert.Equal(t, tt.wantMessage, body.Message)
			if tt.wantData {
				assert.Equal(t, "wellness", body.Data["intent"])
			}
		})
	}
}

func TestErrorAborts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, errors.New("bad"), nil)

	assert.True(t, c.IsAborted())
}
