package models

import "time"

// Comment is a piece of text attached to exactly one post by foreign key.
// Comments are created and their body may be replaced; they are never deleted.
type Comment struct {
	CommentID int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewComment returns an unsaved comment bound to postID with an empty body.
func NewComment(postID int64) Comment {
	return Comment{PostID: postID}
}

// IsNew reports whether the comment has not been persisted yet.
func (c Comment) IsNew() bool {
	return c.CommentID == 0
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
