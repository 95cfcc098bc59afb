package blogHandler

import (
	blogsService "BlogPlatform/internal/api/blog/service"
	"BlogPlatform/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	// Public endpoints
	blogs.Post("", h.CreateBlog)
	blogs.Get("", h.ListBlogs)

	// Owner only
	blogs.Put("/:blogId", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Delete("/:blogId", h.middleware.NewTokenMiddleware, h.DeleteBlog)
	blogs.Delete("", h.middleware.NewTokenMiddleware, h.DeleteBlogsByFilter)
}
