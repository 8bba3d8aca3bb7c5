package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-inc/arbor/internal/shared/authorization"
)

const testUserID = "b3b9c7d1-58a6-4f33-9b9e-2f0a1d6c4e55"

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testUserID, authorization.RoleTenantAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, authorization.RoleTenantAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	pair, err := NewJWTService("secret-a", 15, 7).Generate(testUserID, authorization.RoleTenantUser)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 15, 7).Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_VerifyRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testUserID, authorization.RolePlatformAdmin)
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, authorization.RolePlatformAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID, "refresh tokens carry a jti for revocation")
}

func TestJWTService_VerifyRefreshRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(testUserID, authorization.RoleTenantUser)
	require.NoError(t, err)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a refresh token")
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Verify("s3cret", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}
