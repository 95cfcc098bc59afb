package blogService

import (
	"BlogPlatform/internal/api/author"
	"BlogPlatform/internal/api/blog"
	"BlogPlatform/internal/entity"
	"BlogPlatform/internal/validation"
	contextPkg "BlogPlatform/pkg/context"
	"BlogPlatform/pkg/response"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"net/http"
	"strings"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	authorClient, err := s.authorRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create author repository client")
		return blogs.BlogResponse{}, err
	}

	if _, err := authorClient.Authors.GetByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"author_id":  req.AuthorID,
			}).Warn("Blog author does not exist")
			return blogs.BlogResponse{}, blogs.ErrAuthorNotFound
		}
		return blogs.BlogResponse{}, err
	}

	now := s.utils.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	blog := entity.Blog{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		Body:        strings.TrimSpace(req.Body),
		Category:    strings.TrimSpace(req.Category),
		AuthorID:    req.AuthorID,
		Tags:        req.Tags.Slice(),
		Subcategory: req.Subcategory.Slice(),
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if blog.IsPublished {
		publishedAt := now
		blog.PublishedAt = &publishedAt
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		return blogs.BlogResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
		"author_id":  blog.AuthorID,
	}).Info("Blog created")

	return blogs.MakeBlogResponse(blog), nil
}

// ListBlogs only ever returns published, non-deleted blogs.
func (s *blogsService) ListBlogs(ctx context.Context, filter entity.BlogFilter) ([]blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	published := true
	filter.IsPublished = &published

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	found, err := repo.Blogs.ListBlogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(found) == 0 {
		return nil, blogs.ErrNoBlogsFound
	}

	res := make([]blogs.BlogResponse, 0, len(found))
	for _, b := range found {
		res = append(res, blogs.MakeBlogResponse(b))
	}

	return res, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, blogID string, callerID string, req blogs.UpdateBlogRequest) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := checkIdentifiers(blogID, callerID); err != nil {
		return blogs.BlogResponse{}, err
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	existing, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return blogs.BlogResponse{}, err
	}

	if existing.AuthorID != callerID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"caller_id":  callerID,
		}).Warn("Caller does not own blog")
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	if req.IsEmpty() {
		return blogs.MakeBlogResponse(existing), nil
	}

	if err := req.Validate(); err != nil {
		return blogs.BlogResponse{}, response.NewError(http.StatusBadRequest, err.Error())
	}

	patch := entity.BlogPatch{
		Title:       trimmed(req.Title),
		Body:        trimmed(req.Body),
		Category:    trimmed(req.Category),
		Tags:        req.Tags.Slice(),
		Subcategory: req.Subcategory.Slice(),
		IsPublished: req.IsPublished,
		UpdatedAt:   s.utils.Now(),
	}

	updated, err := repo.Blogs.UpdateBlog(ctx, blogID, callerID, patch)
	if err != nil {
		var respErr *response.Error
		if errors.As(err, &respErr) {
			return blogs.BlogResponse{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
	}).Info("Blog updated")

	return blogs.MakeBlogResponse(updated), nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, blogID string, callerID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := checkIdentifiers(blogID, callerID); err != nil {
		return err
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := repo.Blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}

	if existing.AuthorID != callerID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"caller_id":  callerID,
		}).Warn("Caller does not own blog")
		return blogs.ErrBlogNotOwned
	}

	if err := repo.Blogs.SoftDeleteBlog(ctx, blogID, callerID, s.utils.Now()); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
	}).Info("Blog deleted")

	return nil
}

// DeleteBlogsByFilter soft-deletes the caller's blogs among those matching
// filter. Matches owned by other authors are skipped.
func (s *blogsService) DeleteBlogsByFilter(ctx context.Context, callerID string, filter entity.BlogFilter) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !validation.IsValidIdentifier(callerID) {
		return 0, blogs.ErrInvalidCallerID
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}
	defer func() {
		if err != nil {
			if rbErr := repo.Rollback(); rbErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rbErr.Error(),
				}).Error("Failed to rollback transaction")
			}
		}
	}()

	matched, err := repo.Blogs.ListBlogs(ctx, filter)
	if err != nil {
		return 0, err
	}
	if len(matched) == 0 {
		err = blogs.ErrNoBlogsFound
		return 0, err
	}

	owned := make([]string, 0, len(matched))
	for _, b := range matched {
		if b.AuthorID == callerID {
			owned = append(owned, b.ID)
		}
	}
	if len(owned) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"caller_id":  callerID,
			"matched":    len(matched),
		}).Warn("No matching blogs owned by caller")
		err = blogs.ErrNoBlogsFound
		return 0, err
	}

	deleted, err := repo.Blogs.SoftDeleteBlogs(ctx, owned, callerID, s.utils.Now())
	if err != nil {
		return 0, err
	}

	if err = repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, blogs.ErrDeleteBlog
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"caller_id":  callerID,
		"deleted":    deleted,
	}).Info("Blogs deleted by filter")

	return deleted, nil
}

func checkIdentifiers(blogID string, callerID string) error {
	if !validation.IsValidIdentifier(blogID) {
		return blogs.ErrInvalidBlogID
	}
	if !validation.IsValidIdentifier(callerID) {
		return blogs.ErrInvalidCallerID
	}
	return nil
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
