package author

import (
	"BlogPlatform/pkg/response"
	"net/http"
)

var (
	ErrEmptyRequestBody       = response.NewError(http.StatusBadRequest, "please provide author details")
	ErrEmptyLoginBody         = response.NewError(http.StatusBadRequest, "please provide login details")
	ErrEmailAlreadyRegistered = response.NewError(http.StatusBadRequest, "email address is already registered")
	ErrAuthorNotFound         = response.NewError(http.StatusNotFound, "author not found")
	ErrInvalidCredentials     = response.NewError(http.StatusUnauthorized, "invalid credentials")
	ErrTooManyLoginAttempts   = response.NewError(http.StatusTooManyRequests, "too many failed login attempts, try again later")
	ErrCreateAuthor           = response.NewError(http.StatusInternalServerError, "failed to create author")
)
