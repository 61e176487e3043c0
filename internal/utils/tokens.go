package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"repairdesk/internal/domain/entity"
)

const defaultTokenTTL = 12 * time.Hour

// TokenClaims is the payload of the self-issued HS256 session tokens. The
// middleware reloads the user row on every request, so the claims only
// carry identity, not authorization.
type TokenClaims struct {
	UserID    int64 `json:"uid"`
	CompanyID int64 `json:"cid"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the user. JWT_SEED must be set;
// JWT_EXPIRES optionally overrides the lifetime (Go duration syntax).
func IssueToken(user *entity.User) (string, error) {
	seed := os.Getenv("JWT_SEED")
	if seed == "" {
		return "", errors.New("JWT_SEED is not configured")
	}

	ttl := defaultTokenTTL
	if raw := os.Getenv("JWT_EXPIRES"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return "", fmt.Errorf("invalid JWT_EXPIRES %q: %w", raw, err)
		}
		ttl = parsed
	}

	now := time.Now().UTC()
	claims := &TokenClaims{
		UserID:    user.UserID,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(seed))
}

// ValidateToken parses and verifies a signed session token.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	seed := os.Getenv("JWT_SEED")
	if seed == "" {
		return nil, errors.New("JWT_SEED is not configured")
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(sanitizeToken(tokenString), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return []byte(seed), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

func ParseTokenDataCtx(ctx echo.Context) (*TokenClaims, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return ValidateToken(token)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}
