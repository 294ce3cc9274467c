package service

import (
	"context"
	"testing"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecretkeydontuseinproduction32bytes!"

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{SecretKey: testSecret, TokenTTL: time.Hour})
	require.NoError(t, err)
	return svc
}

func TestNewAuthService_ShortSecret(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{SecretKey: "short"})
	assert.Error(t, err)
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	tok, err := svc.GenerateAdminToken(ctx, "ops", 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateJWT(ctx, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
}

func TestAuthService_Expired(t *testing.T) {
	svc := newTestAuthService(t)
	impl := svc.(*authServiceImpl)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.GenerateAdminToken(context.Background(), "", time.Minute)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateJWT(context.Background(), tok.Token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestAuthService_RejectsForeignTokens(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	other, err := NewAuthService(config.AuthConfig{SecretKey: "another-secret-that-is-32-bytes-long!!", TokenTTL: time.Hour})
	require.NoError(t, err)
	tok, err := other.GenerateAdminToken(ctx, "x", 0)
	require.NoError(t, err)
	_, err = svc.ValidateJWT(ctx, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)

	_, err = svc.ValidateJWT(ctx, "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidJWTToken)

	// correctly signed but without the admin role
	claims := dto.AuthClaims{
		Role: "student",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateJWT(ctx, signed)
	assert.ErrorIs(t, err, ErrNotAdmin)
}
