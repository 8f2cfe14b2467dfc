package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrometheusMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordOptimization(t *testing.T) {
	// Counters must accept all outcome labels without panicking
	RecordOptimization(10*time.Millisecond, "success", 5)
	RecordOptimization(500*time.Millisecond, "infeasible", 0)
	RecordOptimization(time.Millisecond, "validation_error", 0)
	RecordOptimization(time.Second, "error", 0)
}

func TestRecordCacheOperation(t *testing.T) {
	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")
	RecordCacheOperation("set", "ok")
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(10, 100)
	UpdateCacheMetrics(0, 0)
}
