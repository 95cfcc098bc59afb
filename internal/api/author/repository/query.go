package authorRepository

const (
	queryCreateAuthor = `
		INSERT INTO authors (
			id,
			fname,
			lname,
			title,
			email,
			password,
			created_at,
			updated_at
		) VALUES (
			:id,
			:fname,
			:lname,
			:title,
			:email,
			:password,
			:created_at,
			:updated_at
		)
	`

	queryGetAuthorByID = `
		SELECT
			id,
			fname,
			lname,
			title,
			email,
			password,
			created_at,
			updated_at
		FROM authors
		WHERE id = :id
	`

	queryGetAuthorByEmail = `
		SELECT
			id,
			fname,
			lname,
			title,
			email,
			password,
			created_at,
			updated_at
		FROM authors
		WHERE email = :email
	`
)
