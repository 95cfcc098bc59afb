package authorService

import (
	"BlogPlatform/internal/api/author"
	"BlogPlatform/internal/entity"
	contextPkg "BlogPlatform/pkg/context"
	jwtPkg "BlogPlatform/pkg/jwt"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"strings"
)

func (s *authorService) RegisterAuthor(c context.Context, req author.RegisterAuthorRequest) (author.AuthorResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	email := author.NormalizeEmail(req.Email)

	repo, err := s.authorRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return author.AuthorResponse{}, err
	}

	_, err = repo.Authors.GetByEmail(c, email)
	switch {
	case err == nil:
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("Email already registered")
		return author.AuthorResponse{}, author.ErrEmailAlreadyRegistered
	case !errors.Is(err, author.ErrAuthorNotFound):
		return author.AuthorResponse{}, err
	}

	hashed, err := s.bcryptUtils.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return author.AuthorResponse{}, author.ErrCreateAuthor
	}

	now := s.utils.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return author.AuthorResponse{}, err
	}

	newAuthor := entity.Author{
		ID:        id,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Title:     req.Title,
		Email:     email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Authors.CreateAuthor(c, newAuthor); err != nil {
		return author.AuthorResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"author_id":  id,
	}).Info("Author registered")

	return author.MakeAuthorResponse(newAuthor), nil
}

func (s *authorService) Login(c context.Context, req author.LoginRequest) (author.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	email := author.NormalizeEmail(req.Email)

	if s.isThrottled(c, email) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"email":      email,
		}).Warn("Login throttled")
		return author.LoginResponse{}, author.ErrTooManyLoginAttempts
	}

	repo, err := s.authorRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return author.LoginResponse{}, err
	}

	found, err := repo.Authors.GetByEmail(c, email)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			s.recordFailure(c, email)
			return author.LoginResponse{}, author.ErrInvalidCredentials
		}
		return author.LoginResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(found.Password, strings.TrimSpace(req.Password)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"author_id":  found.ID,
		}).Warn("Password comparison failed")
		s.recordFailure(c, email)
		return author.LoginResponse{}, author.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtPkg.Sign(found.ID, jwtPkg.SessionTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return author.LoginResponse{}, err
	}

	s.clearFailures(c, email)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"author_id":  found.ID,
	}).Info("Token created")

	return author.LoginResponse{
		Token:     token,
		AuthorID:  found.ID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authorService) throttleEnabled() bool {
	return s.redisServer != nil && s.throttle.MaxAttempts > 0
}

// Redis errors never block a login.
func (s *authorService) isThrottled(c context.Context, email string) bool {
	if !s.throttleEnabled() {
		return false
	}
	count, err := s.redisServer.GetFailedLogin(c, email)
	if err != nil {
		return false
	}
	return count >= s.throttle.MaxAttempts
}

func (s *authorService) recordFailure(c context.Context, email string) {
	if !s.throttleEnabled() {
		return
	}
	if _, err := s.redisServer.IncrFailedLogin(c, email, s.throttle.Window); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to record failed login")
	}
}

func (s *authorService) clearFailures(c context.Context, email string) {
	if !s.throttleEnabled() {
		return
	}
	if err := s.redisServer.ResetFailedLogin(c, email); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"error":      err.Error(),
		}).Warn("Failed to reset failed logins")
	}
}
