package models

import "time"

// Post is a feed entry. UserEmail and Username are a denormalized snapshot of
// the author taken at creation time: the feed renders without a join, and a
// later identity change would deliberately not rewrite history. UserEmail is
// indexed but not enforced as a foreign key; the feed tolerates dangling
// references.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"index;size:255" json:"user_email"`
	Username  string    `gorm:"size:64" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
