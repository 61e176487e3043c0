package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairdesk/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		UserID:    42,
		UUID:      "aB3dE5fG7h",
		Email:     "tech@example.test",
		CompanyID: 7,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SEED", "token-test-seed")

	token, err := IssueToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, int64(7), claims.CompanyID)
	assert.Equal(t, "aB3dE5fG7h", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// Bearer prefix and whitespace are tolerated.
	claims, err = ValidateToken("  Bearer " + token + " ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestIssueTokenRequiresSeed(t *testing.T) {
	t.Setenv("JWT_SEED", "")

	_, err := IssueToken(testUser())
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSeed(t *testing.T) {
	t.Setenv("JWT_SEED", "token-test-seed")
	token, err := IssueToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SEED", "another-seed")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SEED", "token-test-seed")
	t.Setenv("JWT_EXPIRES", "-1h")

	token, err := IssueToken(testUser())
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SEED", "token-test-seed")

	_, err := ValidateToken("definitely.not.a-token")
	assert.Error(t, err)
}

func TestTokenExpiresOverride(t *testing.T) {
	t.Setenv("JWT_SEED", "token-test-seed")
	t.Setenv("JWT_EXPIRES", "30m")

	token, err := IssueToken(testUser())
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 25*time.Minute)
	assert.LessOrEqual(t, remaining, 30*time.Minute)
}
