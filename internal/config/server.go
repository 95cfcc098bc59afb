package config

import (
	"BlogPlatform/database/postgres"
	authorHandler "BlogPlatform/internal/api/author/handler"
	authorRepository "BlogPlatform/internal/api/author/repository"
	authorService "BlogPlatform/internal/api/author/service"
	blogHandler "BlogPlatform/internal/api/blog/handler"
	blogRepository "BlogPlatform/internal/api/blog/repository"
	blogService "BlogPlatform/internal/api/blog/service"
	"BlogPlatform/internal/middleware"
	"BlogPlatform/pkg/bcrypt"
	"BlogPlatform/pkg/redis"
	"BlogPlatform/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultLoginMaxAttempts   = 5
	defaultLoginAttemptWindow = 15 * time.Minute
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	bcryptUtils   bcrypt.IBcrypt
	redisServer   redis.IRedis
	loginThrottle authorService.LoginThrottle
	handlers      []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

// WithLoginThrottle reads LOGIN_MAX_ATTEMPTS and LOGIN_ATTEMPT_WINDOW.
// LOGIN_MAX_ATTEMPTS=0 turns the throttle off.
func WithLoginThrottle() ServerOption {
	return func(s *Server) error {
		throttle := authorService.LoginThrottle{
			MaxAttempts: defaultLoginMaxAttempts,
			Window:      defaultLoginAttemptWindow,
		}

		if raw := os.Getenv("LOGIN_MAX_ATTEMPTS"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid LOGIN_MAX_ATTEMPTS %q", raw)
			}
			throttle.MaxAttempts = n
		}

		if raw := os.Getenv("LOGIN_ATTEMPT_WINDOW"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil || d <= 0 {
				return fmt.Errorf("invalid LOGIN_ATTEMPT_WINDOW %q", raw)
			}
			throttle.Window = d
		}

		s.loginThrottle = throttle
		return nil
	}
}

func (s *Server) RegisterHandler() {
	s.engine.Use(
		recover.New(),
		s.middleware.NewRequestIDMiddleware(),
		middleware.LoggerConfig(),
	)

	// Author Domain
	authorRepo := authorRepository.New(s.db, s.log)
	authorServices := authorService.New(s.log, authorRepo, s.bcryptUtils, s.redisServer, s.utils, s.loginThrottle)
	authorHandlers := authorHandler.New(s.log, authorServices, s.validator, s.middleware)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, authorRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authorHandlers, blogHandlers)
}

// Mount attaches every registered handler under APP_ROUTE_PREFIX, or at
// the root when it is unset.
func (s *Server) Mount() {
	var router fiber.Router = s.engine
	if prefix := strings.TrimRight(os.Getenv("APP_ROUTE_PREFIX"), "/"); prefix != "" {
		router = s.engine.Group(prefix)
	}

	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(timeout time.Duration) error {
	if err := s.engine.ShutdownWithTimeout(timeout); err != nil {
		s.log.Errorf("Failed to shut down fiber: %v", err)
		return err
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Errorf("Failed to close database: %v", err)
			return err
		}
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
