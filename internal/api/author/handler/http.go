package authorHandler

import (
	authorService "BlogPlatform/internal/api/author/service"
	"BlogPlatform/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthorHandler struct {
	log           *logrus.Logger
	authorService authorService.IAuthorService
	validator     *validator.Validate
	middleware    middleware.Middleware
}

func New(
	log *logrus.Logger,
	as authorService.IAuthorService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *AuthorHandler {
	return &AuthorHandler{
		log:           log,
		authorService: as,
		validator:     validate,
		middleware:    middleware,
	}
}

func (h *AuthorHandler) Start(srv fiber.Router) {
	srv.Post("/authors", h.middleware.NewRateLimiter, h.HandleRegister)
	srv.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)
}
