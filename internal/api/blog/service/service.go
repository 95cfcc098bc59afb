package blogService

import (
	authorRepository "BlogPlatform/internal/api/author/repository"
	"BlogPlatform/internal/api/blog"
	blogsRepository "BlogPlatform/internal/api/blog/repository"
	"BlogPlatform/internal/entity"
	"BlogPlatform/pkg/utils"
	"context"
	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (blogs.BlogResponse, error)
	ListBlogs(ctx context.Context, filter entity.BlogFilter) ([]blogs.BlogResponse, error)
	UpdateBlog(ctx context.Context, blogID string, callerID string, req blogs.UpdateBlogRequest) (blogs.BlogResponse, error)
	DeleteBlog(ctx context.Context, blogID string, callerID string) error
	DeleteBlogsByFilter(ctx context.Context, callerID string, filter entity.BlogFilter) (int64, error)
}

type blogsService struct {
	log        *logrus.Logger
	blogsRepo  blogsRepository.Repository
	authorRepo authorRepository.Repository
	utils      utils.IUtils
}

func New(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	authorRepo authorRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:        log,
		blogsRepo:  blogsRepo,
		authorRepo: authorRepo,
		utils:      utils,
	}
}
