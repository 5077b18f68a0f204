package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, password, auth_provider, created_at, updated_at)
VALUES (:id, :email, :name, :password, :auth_provider, :created_at, :updated_at)`

	queryGetById = `
SELECT id, email, name, password, auth_provider, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, name, password, auth_provider, created_at, updated_at
FROM users
    WHERE LOWER(email) = LOWER(:email)`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
