package entity

import "time"

type User struct {
	ID           string       `db:"id"`
	Email        string       `db:"email"`
	Name         string       `db:"name"`
	Password     string       `db:"password"`
	AuthProvider AuthProvider `db:"auth_provider"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

// UserLoginData is what the token middleware stores in the request locals.
type UserLoginData struct {
	ID        string
	Username  string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
