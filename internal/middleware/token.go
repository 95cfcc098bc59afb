package middleware

import (
	contextPkg "BlogPlatform/pkg/context"
	jwtPkg "BlogPlatform/pkg/jwt"
	"BlogPlatform/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewTokenMiddleware is the authentication gate for mutating blog routes.
// On success the caller's author id is available through jwtPkg.GetAuthorID.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	fields := logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"path":       ctx.Path(),
		"method":     ctx.Method(),
		"client_ip":  ctx.IP(),
	}

	accessToken, err := jwtPkg.TokenFromRequest(ctx)
	if err != nil {
		m.log.WithFields(fields).WithField("error", err.Error()).Warn("Access token check")
		return m.reject(ctx, fiber.StatusUnauthorized, "token is missing or malformed")
	}

	claims, err := jwtPkg.Parse(accessToken)
	if err != nil {
		m.log.WithFields(fields).WithField("error", err.Error()).Warn("Token verification failed")
		return m.reject(ctx, fiber.StatusUnauthorized, "access token invalid or expired")
	}

	if claims.AuthorID == "" {
		m.log.WithFields(fields).Warn("Token carries no author id")
		return m.reject(ctx, fiber.StatusForbidden, "token does not identify an author")
	}

	ctx.Locals(string(contextPkg.AuthorIDKey), claims.AuthorID)

	m.log.WithFields(fields).WithField("author_id", claims.AuthorID).Debug("Authentication successful")
	return ctx.Next()
}

func (m *middleware) reject(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(response.Failure(msg, ""))
}
