// Package models contains data structures for the application's domain records.
package models

import "time"

// User represents a signed-up account. The email is the primary identity key
// and the username carries its own unique index. The password is an opaque
// credential compared verbatim on login; hashing is out of scope for this
// application.
type User struct {
	Email     string    `gorm:"primaryKey;size:255" json:"email"`
	Username  string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the public slice of a user embedded into posts and comments at
// creation time, and the only thing the session slot ever persists.
type Identity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Public returns the user's identity snapshot without the credential.
func (u *User) Public() Identity {
	return Identity{Email: u.Email, Username: u.Username}
}
