package entity

import "time"

type Blog struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Body        string     `db:"body"`
	Category    string     `db:"category"`
	AuthorID    string     `db:"author_id"`
	Tags        []string   `db:"tags"`
	Subcategory []string   `db:"subcategory"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	IsDeleted   bool       `db:"is_deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// BlogFilter narrows blog lookups. Zero values mean "no constraint";
// IsDeleted=false is always applied by the repository.
type BlogFilter struct {
	AuthorID    string
	Category    string
	Tags        []string
	Subcategory []string
	IsPublished *bool
}

// BlogPatch is the change set of one update. Nil fields are left untouched;
// Tags and Subcategory are merged into the stored sets.
type BlogPatch struct {
	Title       *string
	Body        *string
	Category    *string
	Tags        []string
	Subcategory []string
	IsPublished *bool
	UpdatedAt   time.Time
}
