package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/dto"
	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
	"github.com/VirusAlex/CashCleanerSimulator/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is re-exported from dto to avoid import cycles.
type Claims = dto.Claims

// claimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type claimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
	EnsureBootstrapUser(ctx context.Context) error
	TokenTTL() time.Duration
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	userRepo repository.UserRepositoryInterface
	cfg      config.AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepositoryInterface, authConfig config.AuthConfig) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      authConfig,
	}
}

// Login authenticates an operator and returns a signed JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// generateToken signs a JWT access token for the given operator.
func (s *AuthServiceImpl) generateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := claimsWithJWT{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT access token, returning its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claimsWithJWT{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*claimsWithJWT)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &claims.Claims, nil
}

// EnsureBootstrapUser creates the configured bootstrap operator account if no
// account with that email exists yet. Intended for first-run setups.
func (s *AuthServiceImpl) EnsureBootstrapUser(ctx context.Context) error {
	if s.cfg.BootstrapEmail == "" || s.cfg.BootstrapPassword == "" {
		return nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, s.cfg.BootstrapEmail)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.cfg.BootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	user := &model.User{
		Email:    s.cfg.BootstrapEmail,
		Password: string(hashed),
		Name:     "Bootstrap Operator",
		Active:   true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create bootstrap user: %w", err)
	}

	log.Info().Str("email", user.Email).Msg("Bootstrap operator account created")
	return nil
}

// TokenTTL returns the configured token lifetime.
func (s *AuthServiceImpl) TokenTTL() time.Duration {
	return s.cfg.TokenExpiration
}
