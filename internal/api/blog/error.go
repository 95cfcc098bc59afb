package blogs

import (
	"BlogPlatform/pkg/response"
	"fmt"
	"net/http"
)

var (
	ErrEmptyRequestBody    = response.NewError(http.StatusBadRequest, "please provide blog details")
	ErrAuthorNotFound      = response.NewError(http.StatusBadRequest, "no author exists with the given authorId")
	ErrInvalidBlogID       = response.NewError(http.StatusBadRequest, "blogId is not a valid identifier")
	ErrInvalidCallerID     = response.NewError(http.StatusBadRequest, "authenticated author id is not a valid identifier")
	ErrInvalidPublishedArg = response.NewError(http.StatusBadRequest, "isPublished should be true or false")
	ErrBlogNotFound        = response.NewError(http.StatusNotFound, "blog not found")
	ErrNoBlogsFound        = response.NewError(http.StatusNotFound, "no blogs found")
	ErrBlogNotOwned        = response.NewError(http.StatusUnauthorized, "blog does not belong to the authenticated author")
	ErrCreateBlog          = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog          = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog          = response.NewError(http.StatusInternalServerError, "failed to delete blog")
)

// NewInvalidQueryError reports a filter parameter that is present but unusable.
func NewInvalidQueryError(param string, reason string) error {
	return response.NewError(http.StatusBadRequest, fmt.Sprintf("query parameter %s %s", param, reason))
}
