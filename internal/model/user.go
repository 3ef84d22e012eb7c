package model

import "time"

// User represents an application user record as stored in the `users` table.
// The password hash never leaves the server; handlers define separate view
// types with JSON tags for API responses.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Name         – display name supplied at registration.
//	Email        – unique email address, stored as given (case-sensitive).
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
