// Package commentstate holds the comment section state of a single post and
// the transitions applied to it by the terminal client.
//
// State values are never mutated in place: [Transition] returns a new State
// sharing nothing with its input, so a view rendering an older value is never
// affected by a later event.
package commentstate

import (
	"slices"

	"github.com/MKhiriev/go-blog/models"
)

// State is the comment section of one post: the persisted comments in
// creation order and the draft the editor is bound to.
type State struct {
	PostID   int64
	Draft    models.Comment
	Comments []models.Comment
}

// Event is applied to a State by [Transition].
type Event interface {
	isEvent()
}

// Loaded replaces the comment list with the comments fetched from the server.
type Loaded struct {
	Comments []models.Comment
}

// Saved reports the outcome of persisting the draft.
type Saved struct {
	Comment models.Comment
	Err     error
}

func (Loaded) isEvent() {}
func (Saved) isEvent()  {}

// New returns an empty State for postID with a fresh draft.
func New(postID int64) State {
	return State{
		PostID:   postID,
		Draft:    models.NewComment(postID),
		Comments: []models.Comment{},
	}
}

// Transition applies ev to s and returns the resulting State.
//
// Saved always replaces the draft with an empty comment bound to the post,
// whether or not the save succeeded. A successful save is merged into the
// list by id and the list is kept sorted by creation time.
func Transition(s State, ev Event) State {
	next := State{
		PostID:   s.PostID,
		Draft:    s.Draft,
		Comments: slices.Clone(s.Comments),
	}
	if next.Comments == nil {
		next.Comments = []models.Comment{}
	}

	switch e := ev.(type) {
	case Loaded:
		next.Comments = slices.Clone(e.Comments)
		if next.Comments == nil {
			next.Comments = []models.Comment{}
		}
		sortByCreation(next.Comments)
	case Saved:
		next.Draft = models.NewComment(s.PostID)
		if e.Err != nil {
			return next
		}
		next.Comments = merge(next.Comments, e.Comment)
	}

	return next
}

// IsEditing reports whether the draft refers to an already persisted comment.
func (s State) IsEditing() bool {
	return !s.Draft.IsNew()
}

// Edit returns a State whose draft is a copy of the comment with the given id.
// An unknown id leaves the state unchanged.
func (s State) Edit(commentID int64) State {
	i := slices.IndexFunc(s.Comments, func(c models.Comment) bool { return c.CommentID == commentID })
	if i < 0 {
		return s
	}
	next := s
	next.Comments = slices.Clone(s.Comments)
	next.Draft = s.Comments[i]
	return next
}

func merge(comments []models.Comment, saved models.Comment) []models.Comment {
	i := slices.IndexFunc(comments, func(c models.Comment) bool { return c.CommentID == saved.CommentID })
	if i >= 0 {
		comments[i] = saved
	} else {
		comments = append(comments, saved)
	}
	sortByCreation(comments)
	return comments
}

func sortByCreation(comments []models.Comment) {
	slices.SortStableFunc(comments, func(a, b models.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.CommentID < b.CommentID:
			return -1
		case a.CommentID > b.CommentID:
			return 1
		}
		return 0
	})
}
