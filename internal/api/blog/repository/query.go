package blogRepository

const blogColumns = `
			id,
			title,
			body,
			category,
			author_id,
			tags,
			subcategory,
			is_published,
			published_at,
			is_deleted,
			deleted_at,
			created_at,
			updated_at`

const (
	queryCreateBlog = `
		INSERT INTO blogs (` + blogColumns + `
		) VALUES (
			:id,
			:title,
			:body,
			:category,
			:author_id,
			CAST(:tags AS text[]),
			CAST(:subcategory AS text[]),
			:is_published,
			:published_at,
			FALSE,
			NULL,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT` + blogColumns + `
		FROM blogs
		WHERE id = :id AND is_deleted = FALSE
	`

	// queryListBlogs takes its WHERE clause from buildListConditions.
	queryListBlogs = `
		SELECT` + blogColumns + `
		FROM blogs
		WHERE %s
		ORDER BY created_at ASC, id ASC
	`

	// Tags and subcategory gain only the values they do not already hold,
	// in request order. published_at follows is_published when it is sent.
	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = COALESCE(CAST(:title AS text), title),
			body = COALESCE(CAST(:body AS text), body),
			category = COALESCE(CAST(:category AS text), category),
			tags = tags || ARRAY(
				SELECT n.v
				FROM unnest(CAST(:tags AS text[])) WITH ORDINALITY AS n(v, ord)
				WHERE NOT (n.v = ANY(tags))
				ORDER BY n.ord
			),
			subcategory = subcategory || ARRAY(
				SELECT n.v
				FROM unnest(CAST(:subcategory AS text[])) WITH ORDINALITY AS n(v, ord)
				WHERE NOT (n.v = ANY(subcategory))
				ORDER BY n.ord
			),
			is_published = COALESCE(CAST(:is_published AS boolean), is_published),
			published_at = CASE
				WHEN CAST(:is_published AS boolean) IS NULL THEN published_at
				WHEN CAST(:is_published AS boolean) THEN CAST(:updated_at AS timestamptz)
				ELSE NULL
			END,
			updated_at = CAST(:updated_at AS timestamptz)
		WHERE id = :id AND author_id = :author_id AND is_deleted = FALSE
		RETURNING` + blogColumns + `
	`

	querySoftDeleteBlog = `
		UPDATE blogs
		SET
			is_deleted = TRUE,
			deleted_at = :deleted_at,
			updated_at = :deleted_at
		WHERE id = :id AND author_id = :author_id AND is_deleted = FALSE
	`

	querySoftDeleteBlogs = `
		UPDATE blogs
		SET
			is_deleted = TRUE,
			deleted_at = :deleted_at,
			updated_at = :deleted_at
		WHERE id = ANY(CAST(:ids AS text[])) AND author_id = :author_id AND is_deleted = FALSE
	`
)
