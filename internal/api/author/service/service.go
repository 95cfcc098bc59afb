package authorService

import (
	"BlogPlatform/internal/api/author"
	authorRepository "BlogPlatform/internal/api/author/repository"
	"BlogPlatform/pkg/bcrypt"
	"BlogPlatform/pkg/redis"
	"BlogPlatform/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
	"time"
)

type IAuthorService interface {
	RegisterAuthor(ctx context.Context, req author.RegisterAuthorRequest) (author.AuthorResponse, error)
	Login(ctx context.Context, req author.LoginRequest) (author.LoginResponse, error)
}

// LoginThrottle bounds failed logins per email. A zero MaxAttempts
// disables the check.
type LoginThrottle struct {
	MaxAttempts int64
	Window      time.Duration
}

type authorService struct {
	log         *logrus.Logger
	authorRepo  authorRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	redisServer redis.IRedis
	utils       utils.IUtils
	throttle    LoginThrottle
}

func New(
	log *logrus.Logger,
	authorRepo authorRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	redisServer redis.IRedis,
	utils utils.IUtils,
	throttle LoginThrottle,
) IAuthorService {
	return &authorService{
		log:         log,
		authorRepo:  authorRepo,
		bcryptUtils: bcryptUtils,
		redisServer: redisServer,
		utils:       utils,
		throttle:    throttle,
	}
}
