package models

import "time"

// User is the persisted identity record. PasswordHash never leaves the
// repository/service boundary; anything returned to a caller is a Principal.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the sanitized projection of a User. The type has no hash
// field, so a credential cannot leak through it by construction.
type Principal struct {
	ID       string
	UserName string
	Email    string
}

// Principal strips the credential material from a User.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, UserName: u.UserName, Email: u.Email}
}
