package models

import "time"

// Blog is a container of posts owned by a single user.
type Blog struct {
	BlogID    int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogUpdate describes a partial blog update.
type BlogUpdate struct {
	BlogID int64   `json:"-"`
	Name   *string `json:"name,omitempty"`
}
