package blogHandler

import (
	"BlogPlatform/internal/api/blog"
	"BlogPlatform/internal/validation"
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/handlerUtil"
	jwtPkg "BlogPlatform/pkg/jwt"
	"BlogPlatform/pkg/log"
	"bytes"
	"errors"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

var errMalformedBody = errors.New("request body must be a JSON object with valid field types")

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	if !validation.HasAnyField(ctx.Body()) {
		return errHandler.Handle(ctx, requestID, blogs.ErrEmptyRequestBody, ctx.Path(), "create_blog")
	}

	var req blogs.CreateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New(validation.FirstMessage(err, blogs.CreateMessages)), ctx.Path())
	}

	res, err := h.blogsService.CreateBlog(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, "Blog created successfully", res)
	}
}

func (h *BlogsHandler) ListBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	filter, err := parseFilter(ctx, false)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs")
	}

	res, err := h.blogsService.ListBlogs(c, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Blogs retrieved successfully", res)
	}
}

func (h *BlogsHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	callerID, err := jwtPkg.GetAuthorID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "authentication required")
	}

	body := ctx.Body()
	if len(bytes.TrimSpace(body)) > 0 && !validation.IsJSONObject(body) {
		return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
	}

	var req blogs.UpdateBlogRequest
	if validation.HasAnyField(body) {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, errMalformedBody, ctx.Path())
		}
	}

	res, err := h.blogsService.UpdateBlog(c, ctx.Params("blogId"), callerID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Blog updated successfully", res)
	}
}

func (h *BlogsHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	callerID, err := jwtPkg.GetAuthorID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "authentication required")
	}

	if err := h.blogsService.DeleteBlog(c, ctx.Params("blogId"), callerID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Blog deleted successfully", nil)
	}
}

func (h *BlogsHandler) DeleteBlogsByFilter(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	callerID, err := jwtPkg.GetAuthorID(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "authentication required")
	}

	filter, err := parseFilter(ctx, true)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blogs")
	}

	deleted, err := h.blogsService.DeleteBlogsByFilter(c, callerID, filter)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, "Blogs deleted successfully",
			blogs.DeleteBlogsResponse{Deleted: deleted})
	}
}
