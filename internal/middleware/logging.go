package middleware

import (
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/log"
	jsoniter "github.com/json-iterator/go"
	"time"

	"github.com/gofiber/fiber/v2"
)

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization",
}

// LoggerConfig writes one access-log line per request, masking credentials
// in the logged body.
func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals(contextPkg.RequestIDLocal).(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    time.Since(start).Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get(fiber.HeaderUserAgent),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(body)
		}

		switch {
		case status >= 500:
			log.Error(logFields, "Server error")
		case status >= 400:
			log.Warn(logFields, "Client error")
		default:
			log.Info(logFields, "Success")
		}

		return err
	}
}

func sanitizeRequestBody(body []byte) string {
	var jsonBody map[string]interface{}
	if err := jsoniter.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for _, field := range sensitiveFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := jsoniter.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
