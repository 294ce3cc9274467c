package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"career-compass/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	RoleAdmin   = "admin"
	tokenIssuer = "career-compass"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrNotAdmin        = errors.New("token does not carry the admin role")
)

// AuthService issues and validates the admin tokens that guard listing
// endpoints.
type AuthService interface {
	GenerateAdminToken(ctx context.Context, subject string, ttl time.Duration) (*dto.TokenResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// NewAuthService requires a secret of at least 32 bytes.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, errors.New("auth secret key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		secret:     []byte(cfg.SecretKey),
		defaultTTL: cfg.TokenTTL,
		now:        time.Now,
	}, nil
}

// GenerateAdminToken signs an HS256 admin token. A zero ttl uses the
// configured default.
func (s *authServiceImpl) GenerateAdminToken(ctx context.Context, subject string, ttl time.Duration) (*dto.TokenResponse, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if subject == "" {
		subject = RoleAdmin
	}
	now := s.now()
	expiresAt := now.Add(ttl)

	claims := dto.AuthClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        util.NewULID(),
			Issuer:    tokenIssuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.TokenResponse{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	return claims, nil
}
