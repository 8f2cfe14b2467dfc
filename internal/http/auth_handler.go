package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/i18n"
	"github.com/VirusAlex/CashCleanerSimulator/internal/middleware"
	"github.com/VirusAlex/CashCleanerSimulator/internal/service"
)

// AuthHandler provides HTTP handlers for authentication.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates a user and returns a signed JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if loggingService, exists := c.Get("logging_service"); exists {
			if ls, ok := loggingService.(service.LoggingService); ok {
				middleware.AuditLogError(ls, c, "login_failed", "Login attempt failed", err, map[string]interface{}{
					"email": req.Email,
				})
			}
		}
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, nil)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "login", "User logged in", map[string]interface{}{
				"email": user.Email,
			})
		}
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.authService.TokenTTL().Seconds()),
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
