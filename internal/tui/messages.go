package tui

import (
	"github.com/MKhiriev/go-blog/models"
)

// NavigateTo asks [RootModel] to switch to Page. Payload, when set, is
// delivered to the new page after its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the server answers.
type LoginResult struct {
	User models.User
	Err  error
}

// CommentSavedMsg is emitted by [CommentEditor] after the draft was sent to
// the server. Comment holds the persisted comment when Err is nil.
type CommentSavedMsg struct {
	Comment models.Comment
	Err     error
}

type commentsLoadedMsg struct {
	post     models.Post
	comments []models.Comment
	err      error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
