package middleware

import (
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

// New builds the middleware set with the default per-IP budget of 50 req/s
// and bursts of 100.
func New(logger *logrus.Logger) Middleware {
	return NewWithRate(logger, 50, 100)
}

func NewWithRate(logger *logrus.Logger, reqRate rate.Limit, burst int) Middleware {
	return &middleware{
		rateLimitter:        newRateLimiter(reqRate, burst),
		requestIDMiddleware: NewRequestIDMiddleware(utils.New()),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(contextPkg.RequestIDLocal).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
