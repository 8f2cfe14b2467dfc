//go:build !integration

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// stubAuthService validates exactly one token string.
type stubAuthService struct {
	validToken string
	claims     *dto.Claims
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *model.User, error) {
	return "", nil, service.ErrInvalidCredentials
}

func (s *stubAuthService) ValidateToken(tokenString string) (*dto.Claims, error) {
	if tokenString == s.validToken {
		return s.claims, nil
	}
	return nil, service.ErrInvalidToken
}

func (s *stubAuthService) EnsureBootstrapUser(context.Context) error { return nil }

func (s *stubAuthService) TokenTTL() time.Duration { return time.Hour }

func jwtRouter(auth service.AuthService) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), JWTAuth(auth))
	router.PUT("/api/stock/USD", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	auth := &stubAuthService{
		validToken: "good-token",
		claims:     &dto.Claims{UserID: userID, Email: "ops@example.com", Name: "Ops"},
	}

	var userEmail, userName string
	var gotID interface{}
	router := gin.New()
	router.Use(RequestID(), JWTAuth(auth))
	router.PUT("/api/stock/USD", func(c *gin.Context) {
		gotID, _ = c.Get("user_id")
		userEmail = c.GetString("user_email")
		userName = c.GetString("user_name")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/api/stock/USD", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "ops@example.com", userEmail)
	assert.Equal(t, "Ops", userName)
}

func TestJWTAuth_Rejections(t *testing.T) {
	auth := &stubAuthService{validToken: "good-token", claims: &dto.Claims{}}
	router := jwtRouter(auth)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "good-token"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "invalid token", header: "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/stock/USD", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}
