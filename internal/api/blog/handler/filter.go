package blogHandler

import (
	"BlogPlatform/internal/api/blog"
	"BlogPlatform/internal/entity"
	"BlogPlatform/internal/validation"
	"github.com/gofiber/fiber/v2"
	"strconv"
	"strings"
)

// parseFilter reads the blog filter query parameters. A parameter that is
// present must carry a usable value; isPublished is only honoured when
// withPublished is set.
func parseFilter(ctx *fiber.Ctx, withPublished bool) (entity.BlogFilter, error) {
	var filter entity.BlogFilter
	args := ctx.Context().QueryArgs()

	if args.Has("authorId") {
		authorID := strings.TrimSpace(ctx.Query("authorId"))
		if authorID == "" {
			return filter, blogs.NewInvalidQueryError("authorId", "should be a non-empty string")
		}
		if !validation.IsValidIdentifier(authorID) {
			return filter, blogs.NewInvalidQueryError("authorId", "is not a valid identifier")
		}
		filter.AuthorID = authorID
	}

	if args.Has("category") {
		category := strings.TrimSpace(ctx.Query("category"))
		if category == "" {
			return filter, blogs.NewInvalidQueryError("category", "should be a non-empty string")
		}
		filter.Category = category
	}

	for _, list := range []struct {
		name string
		dst  *[]string
	}{
		{"tags", &filter.Tags},
		{"subcategory", &filter.Subcategory},
	} {
		if !args.Has(list.name) {
			continue
		}
		values := validation.SplitList(ctx.Query(list.name))
		if len(values) == 0 {
			return filter, blogs.NewInvalidQueryError(list.name, "should be a non-empty list")
		}
		*list.dst = values
	}

	if withPublished && args.Has("isPublished") {
		published, err := strconv.ParseBool(strings.TrimSpace(ctx.Query("isPublished")))
		if err != nil {
			return filter, blogs.ErrInvalidPublishedArg
		}
		filter.IsPublished = &published
	}

	return filter, nil
}
