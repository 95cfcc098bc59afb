package config

import (
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"os"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Blog Platform",
			BodyLimit:         4 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     false,
			CaseSensitive:     true,
			EnablePrintRoutes: os.Getenv("APP_ENV") != "test",
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			ErrorHandler:      newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders errors that escape the handlers (unknown routes,
// recovered panics) in the response envelope.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		requestID, _ := ctx.Locals(contextPkg.RequestIDLocal).(string)
		if requestID == "" {
			requestID = "unknown"
		}
		return handlerUtil.New(logger).Handle(ctx, requestID, err, ctx.Path(), "fiber")
	}
}
