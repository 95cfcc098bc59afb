package handlerUtil

import (
	"BlogPlatform/pkg/log"
	"BlogPlatform/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
)

const ExposeErrorsEnv = "APP_EXPOSE_ERRORS"

type ErrorHandler struct {
	logger       *logrus.Logger
	exposeErrors bool
}

func New(logger *logrus.Logger) *ErrorHandler {
	expose, _ := strconv.ParseBool(os.Getenv(ExposeErrorsEnv))
	return &ErrorHandler{
		logger:       logger,
		exposeErrors: expose,
	}
}

// Handle converts err into the response envelope. Domain errors keep their
// status and message; anything else becomes a 500 whose detail is only
// returned when APP_EXPOSE_ERRORS is set.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) && respErr.Code < fiber.StatusInternalServerError {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(response.Failure(respErr.Error(), ""))
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		fields["code"] = fiberErr.Code
		h.logger.WithFields(fields).Warn("Request rejected")
		return c.Status(fiberErr.Code).JSON(response.Failure(fiberErr.Message, ""))
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")

	var detail string
	if h.exposeErrors {
		detail = err.Error()
	}
	body := response.Failure("internal server error", detail)
	body.TraceID = traceID

	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(response.Failure(err.Error(), ""))
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(response.Failure(utils.StatusMessage(fiber.StatusRequestTimeout), ""))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(response.Failure(message, ""))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, msg string, data interface{}) error {
	return c.Status(statusCode).JSON(response.Success(msg, data))
}
