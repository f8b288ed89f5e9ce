package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/budgetease/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", "budgetease")
	userID := uuid.New()

	token, err := svc.IssueAccessToken(context.Background(), userID, "ana@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestTokenService_Rejects(t *testing.T) {
	svc := NewTokenService("secret", "budgetease")
	userID := uuid.New()

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key interface{}) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func(mut func(*CustomClaims)) CustomClaims {
		c := CustomClaims{
			UserID:    userID.String(),
			TokenType: tokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "budgetease",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		mut(&c)
		return c
	}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"garbage", "not-a-jwt", domainerror.ErrInvalidToken},
		{"wrong secret", sign(valid(func(*CustomClaims) {}), jwt.SigningMethodHS256, []byte("other")), domainerror.ErrInvalidToken},
		{"expired", sign(valid(func(c *CustomClaims) {
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		}), jwt.SigningMethodHS256, []byte("secret")), domainerror.ErrExpiredToken},
		{"no expiry", sign(valid(func(c *CustomClaims) { c.ExpiresAt = nil }), jwt.SigningMethodHS256, []byte("secret")), domainerror.ErrInvalidToken},
		{"wrong issuer", sign(valid(func(c *CustomClaims) { c.Issuer = "someone-else" }), jwt.SigningMethodHS256, []byte("secret")), domainerror.ErrInvalidToken},
		{"refresh token", sign(valid(func(c *CustomClaims) { c.TokenType = "refresh" }), jwt.SigningMethodHS256, []byte("secret")), domainerror.ErrInvalidToken},
		{"bad user id", sign(valid(func(c *CustomClaims) { c.UserID = "nope" }), jwt.SigningMethodHS256, []byte("secret")), domainerror.ErrInvalidToken},
		{"alg none", sign(valid(func(*CustomClaims) {}), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType), domainerror.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenService_IssueRejectsNonPositiveTTL(t *testing.T) {
	_, err := NewTokenService("secret", "budgetease").IssueAccessToken(context.Background(), uuid.New(), "", 0)
	assert.Error(t, err)
}
