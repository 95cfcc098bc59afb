package jwtPkg

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignAndParse(t *testing.T) {
	t.Setenv(AccessTokenSecret, testSecret)

	before := time.Now()
	token, exp, err := Sign("01HZX3J8Q6W6E8N9T3V5K7M2PA", SessionTTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.InDelta(t, before.Add(SessionTTL).Unix(), exp, 2)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "01HZX3J8Q6W6E8N9T3V5K7M2PA", claims.AuthorID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, SessionTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParseRejectsBadTokens(t *testing.T) {
	t.Setenv(AccessTokenSecret, testSecret)

	expired, _, err := Sign("author", -time.Minute)
	require.NoError(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthorClaims{
		AuthorID: "author",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthorClaims{
		AuthorID: "author",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"no expiry":    noExpiry,
		"not a jwt":    "definitely-not-a-token",
		"truncated":    expired[:len(expired)/2],
		"empty":        "",
		"unsigned alg": "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJhdXRob3JJZCI6ImEifQ.",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(token)
			assert.Error(t, err)
		})
	}
}

func TestSignRequiresSecret(t *testing.T) {
	t.Setenv(AccessTokenSecret, "")

	_, _, err := Sign("author", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = Parse("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenFromRequest(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		token, err := TokenFromRequest(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(token)
	})

	cases := []struct {
		name    string
		headers map[string]string
		status  int
		body    string
	}{
		{"bearer", map[string]string{"Authorization": "Bearer abc"}, fiber.StatusOK, "abc"},
		{"api key", map[string]string{APIKeyHeader: "xyz"}, fiber.StatusOK, "xyz"},
		{"bearer wins", map[string]string{"Authorization": "Bearer abc", APIKeyHeader: "xyz"}, fiber.StatusOK, "abc"},
		{"missing", nil, fiber.StatusUnauthorized, ErrMissingToken.Error()},
		{"empty bearer", map[string]string{"Authorization": "Bearer "}, fiber.StatusUnauthorized, ErrMissingToken.Error()},
		{"wrong scheme", map[string]string{"Authorization": "Basic abc"}, fiber.StatusUnauthorized, "invalid Authorization format"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.body, string(body))
		})
	}
}
