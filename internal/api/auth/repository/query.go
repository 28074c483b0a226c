package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			username,
			email,
			password,
			created_at
		) VALUES (
			:username,
			:email,
			:password,
			:created_at
		)
		RETURNING id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			email,
			password,
			created_at
		FROM users
		WHERE email = :email
	`
)
