package jwtPkg

import (
	contextPkg "BlogPlatform/pkg/context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"os"
	"strings"
	"time"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"

	// APIKeyHeader carries the token issued at login, alongside the body copy.
	APIKeyHeader = "x-api-key"

	// SessionTTL is how long a login token stays valid.
	SessionTTL = 10 * time.Hour
)

var (
	ErrMissingToken  = errors.New("missing access token")
	ErrMissingSecret = errors.New("JWT secret not configured")
)

type AuthorClaims struct {
	AuthorID string `json:"authorId"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for authorID valid for ttl.
func Sign(authorID string, ttl time.Duration) (string, int64, error) {
	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return "", 0, ErrMissingSecret
	}

	now := time.Now()
	expiredAt := now.Add(ttl)

	claims := AuthorClaims{
		AuthorID: authorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiredAt),
		},
	}

	logrus.WithField("author_id", authorID).Debug("Creating token with claims")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt.Unix(), nil
}

// Parse verifies signature and expiry of accessToken.
func Parse(accessToken string) (*AuthorClaims, error) {
	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &AuthorClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// TokenFromRequest reads a bearer token from the Authorization header,
// falling back to the x-api-key header.
func TokenFromRequest(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header != "" {
		if !strings.HasPrefix(header, "Bearer ") {
			return "", errors.New("invalid Authorization format")
		}
		accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if accessToken == "" {
			return "", ErrMissingToken
		}
		return accessToken, nil
	}

	if apiKey := strings.TrimSpace(c.Get(APIKeyHeader)); apiKey != "" {
		return apiKey, nil
	}

	return "", ErrMissingToken
}

// GetAuthorID returns the caller identity the token middleware stored.
func GetAuthorID(c *fiber.Ctx) (string, error) {
	authorID, ok := c.Locals(string(contextPkg.AuthorIDKey)).(string)
	if !ok {
		return "", fiber.ErrUnauthorized
	}

	return authorID, nil
}
