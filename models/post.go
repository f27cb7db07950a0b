package models

import "time"

// Post belongs to a blog and collects comments.
type Post struct {
	PostID    int64     `json:"id"`
	BlogID    int64     `json:"blog_id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial post update. Only non-nil fields are written.
type PostUpdate struct {
	PostID int64   `json:"-"`
	Name   *string `json:"name,omitempty"`
	Body   *string `json:"body,omitempty"`
}
