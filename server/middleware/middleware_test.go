package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "inventario/server/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string       { return e.msg }
func (e *statusError) StatusCode() int     { return e.code }
func (e *statusError) UserMessage() string { return e.msg }
func (e *statusError) GetContext() string  { return "test" }
func (e *statusError) Unwrap() error       { return nil }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinRequestIDMiddleware(), GinRecoveryMiddleware(), GinLoggerMiddleware(nil))
	return r
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := newRouter()
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Body.String())
}

func TestRecoveryReturnsJSON(t *testing.T) {
	r := newRouter()
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, apperrors.InternalErrorMessage, resp.Error)
}

func TestHandleGinError(t *testing.T) {
	r := newRouter()
	r.GET("/typed", func(c *gin.Context) {
		HandleGinError(c, &statusError{code: http.StatusUnprocessableEntity, msg: "falta columna"}, gin.H{"file": "a.xlsx"})
	})
	r.GET("/plain", func(c *gin.Context) {
		HandleGinError(c, errors.New("disk exploded"), nil)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/typed", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "falta columna", resp.Error)
	assert.Equal(t, map[string]interface{}{"file": "a.xlsx"}, resp.Details)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk exploded")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.InternalErrorMessage, resp.Error)
}

func TestRateLimit(t *testing.T) {
	r := newRouter()
	r.POST("/runs", GinRateLimitMiddleware(PerMinuteLimiter(2)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/runs", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/runs", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Demasiadas solicitudes, intente más tarde", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestRateLimitDisabled(t *testing.T) {
	assert.Nil(t, PerMinuteLimiter(0))

	r := newRouter()
	r.POST("/runs", GinRateLimitMiddleware(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/runs", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestGzipSkipsOutputDownloads(t *testing.T) {
	r := newRouter()
	r.Use(GinGzipMiddleware())
	payload := strings.Repeat("inventario ", 200)
	r.GET("/api/outputs/:artifact", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})
	r.GET("/api/runs/last", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := get("/api/outputs/analysis")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, payload, w.Body.String())

	w = get("/api/runs/last")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}
