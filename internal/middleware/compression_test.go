//go:build !integration

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression_GzipsWhenAccepted(t *testing.T) {
	payload := strings.Repeat("variant data ", 200)
	router := gin.New()
	router.Use(Compression())
	router.GET("/api/currencies", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	defer reader.Close()
	decoded, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, string(decoded))
}

func TestCompression_PlainWhenNotAccepted(t *testing.T) {
	router := gin.New()
	router.Use(Compression())
	router.GET("/api/currencies", func(c *gin.Context) {
		c.String(http.StatusOK, "plain body")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/currencies", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain body", w.Body.String())
}
