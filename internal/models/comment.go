package models

import "time"

// Comment belongs to a post thread. PostID is indexed but not enforced as a
// foreign key; a comment whose post disappeared stays readable through
// ListByPost and is otherwise ignored. Author fields are a creation-time
// snapshot, same contract as Post.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	UserEmail string    `gorm:"size:255" json:"user_email"`
	Username  string    `gorm:"size:64" json:"username"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
