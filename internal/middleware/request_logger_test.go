//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_PersistsEntryThroughAsyncLogger(t *testing.T) {
	sink := &captureLoggingService{}
	InitAsyncLogger(sink, AsyncLoggerConfig{BufferSize: 8, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(sink))
	router.POST("/api/optimize", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/optimize", nil)
	req.Header.Set(RequestIDHeader, "req-log-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	entries := sink.waitForEntries(t, 1)
	entry := entries[0]
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "HTTP request", entry.Message)
	assert.Equal(t, "req-log-1", entry.RequestID)
	assert.Equal(t, http.MethodPost, entry.Method)
	assert.Equal(t, "/api/optimize", entry.Path)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
}

func TestRequestLogger_GoroutineFallback(t *testing.T) {
	StopAsyncLogger()
	sink := &captureLoggingService{}

	router := gin.New()
	router.Use(RequestID(), RequestLogger(sink))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := sink.waitForEntries(t, 1)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, http.StatusNotFound, entries[0].StatusCode)
}

func TestRequestLogger_NilServiceOnlyLogsToStdout(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{status: 200, want: "info"},
		{status: 302, want: "info"},
		{status: 400, want: "warn"},
		{status: 404, want: "warn"},
		{status: 500, want: "error"},
		{status: 503, want: "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getLogLevel(tt.status))
	}
}
