package blogs

import (
	"BlogPlatform/internal/entity"
	"BlogPlatform/internal/validation"
	"fmt"
	"time"
)

type CreateBlogRequest struct {
	Title       string               `json:"title" validate:"nonempty"`
	Body        string               `json:"body" validate:"nonempty"`
	Category    string               `json:"category" validate:"nonempty"`
	AuthorID    string               `json:"authorId" validate:"nonempty,identifier"`
	Tags        validation.StringSet `json:"tags"`
	Subcategory validation.StringSet `json:"subcategory"`
	IsPublished bool                 `json:"isPublished"`
}

var CreateMessages = validation.Messages{
	"title.nonempty":      "Title is required",
	"body.nonempty":       "Body is required",
	"category.nonempty":   "Category is required",
	"authorId.nonempty":   "AuthorId is required",
	"authorId.identifier": "AuthorId is not a valid identifier",
}

// UpdateBlogRequest fields are nil when absent from the payload.
type UpdateBlogRequest struct {
	Title       *string              `json:"title"`
	Body        *string              `json:"body"`
	Category    *string              `json:"category"`
	Tags        validation.StringSet `json:"tags"`
	Subcategory validation.StringSet `json:"subcategory"`
	IsPublished *bool                `json:"isPublished"`
}

// Validate rejects text fields that are present but blank.
func (r UpdateBlogRequest) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"title", r.Title},
		{"body", r.Body},
		{"category", r.Category},
	}
	for _, f := range fields {
		if f.value != nil && !validation.IsNonEmptyString(f.value) {
			return fmt.Errorf("%s should be a non-empty string", f.name)
		}
	}
	return nil
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateBlogRequest) IsEmpty() bool {
	return r.Title == nil && r.Body == nil && r.Category == nil &&
		len(r.Tags) == 0 && len(r.Subcategory) == 0 && r.IsPublished == nil
}

type BlogResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	AuthorID    string     `json:"authorId"`
	Tags        []string   `json:"tags"`
	Subcategory []string   `json:"subcategory"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsDeleted   bool       `json:"isDeleted"`
	DeletedAt   *time.Time `json:"deletedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type DeleteBlogsResponse struct {
	Deleted int64 `json:"deleted"`
}

func MakeBlogResponse(b entity.Blog) BlogResponse {
	return BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Body:        b.Body,
		Category:    b.Category,
		AuthorID:    b.AuthorID,
		Tags:        nonNil(b.Tags),
		Subcategory: nonNil(b.Subcategory),
		IsPublished: b.IsPublished,
		PublishedAt: b.PublishedAt,
		IsDeleted:   b.IsDeleted,
		DeletedAt:   b.DeletedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
