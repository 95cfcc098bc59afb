package authorHandler

import (
	"BlogPlatform/internal/api/author"
	"BlogPlatform/internal/validation"
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/handlerUtil"
	jwtPkg "BlogPlatform/pkg/jwt"
	"BlogPlatform/pkg/log"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

var errMalformedBody = errors.New("request body must be a JSON object with string fields")

func (h *AuthorHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing register author request")

	if !validation.HasAnyField(ctx.Body()) {
		return errHandler.Handle(ctx, requestID, author.ErrEmptyRequestBody, ctx.Path(), "register_author")
	}

	var req author.RegisterAuthorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New(validation.FirstMessage(err, author.RegisterMessages)), ctx.Path())
	}

	res, err := h.authorService.RegisterAuthor(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register_author")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, "Author registered successfully", res)
	}
}

func (h *AuthorHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if !validation.HasAnyField(ctx.Body()) {
		return errHandler.Handle(ctx, requestID, author.ErrEmptyLoginBody, ctx.Path(), "login")
	}

	var req author.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
	}
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New(validation.FirstMessage(err, author.LoginMessages)), ctx.Path())
	}

	res, err := h.authorService.Login(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(jwtPkg.APIKeyHeader, res.Token)
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Author login successful", res)
	}
}
