package commentstate

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func comment(id int64, body string, minute int) models.Comment {
	return models.Comment{CommentID: id, PostID: 5, Body: body, CreatedAt: base.Add(time.Duration(minute) * time.Minute)}
}

func TestNew(t *testing.T) {
	s := New(5)

	assert.Equal(t, int64(5), s.PostID)
	assert.Equal(t, models.Comment{PostID: 5}, s.Draft)
	assert.Empty(t, s.Comments)
	assert.NotNil(t, s.Comments)
	assert.False(t, s.IsEditing())
}

func TestTransition_LoadedSortsByCreation(t *testing.T) {
	s := Transition(New(5), Loaded{Comments: []models.Comment{comment(3, "c", 2), comment(1, "a", 0), comment(2, "b", 0)}})

	require.Len(t, s.Comments, 3)
	assert.Equal(t, []int64{1, 2, 3}, ids(s.Comments))
}

func TestTransition_LoadedNil(t *testing.T) {
	s := Transition(New(5), Loaded{})

	assert.NotNil(t, s.Comments)
	assert.Empty(t, s.Comments)
}

func TestTransition_SavedNewComment(t *testing.T) {
	s := Transition(New(5), Loaded{Comments: []models.Comment{comment(1, "a", 0)}})
	s.Draft.Body = "typed"

	next := Transition(s, Saved{Comment: comment(2, "typed", 1)})

	assert.Equal(t, []int64{1, 2}, ids(next.Comments))
	assert.Equal(t, models.NewComment(5), next.Draft)
	// input is left untouched
	assert.Len(t, s.Comments, 1)
	assert.Equal(t, "typed", s.Draft.Body)
}

func TestTransition_SavedExistingCommentReplaces(t *testing.T) {
	s := Transition(New(5), Loaded{Comments: []models.Comment{comment(1, "a", 0), comment(2, "b", 1)}})
	s = s.Edit(1)
	require.True(t, s.IsEditing())

	next := Transition(s, Saved{Comment: comment(1, "edited", 0)})

	require.Len(t, next.Comments, 2)
	assert.Equal(t, "edited", next.Comments[0].Body)
	assert.Equal(t, "a", s.Comments[0].Body)
	assert.False(t, next.IsEditing())
}

func TestTransition_SavedEmptyBodyIsKept(t *testing.T) {
	next := Transition(New(5), Saved{Comment: comment(9, "", 0)})

	require.Len(t, next.Comments, 1)
	assert.Equal(t, "", next.Comments[0].Body)
}

func TestTransition_SaveFailureResetsDraftOnly(t *testing.T) {
	s := Transition(New(5), Loaded{Comments: []models.Comment{comment(1, "a", 0)}})
	s.Draft.Body = "lost"

	next := Transition(s, Saved{Comment: comment(2, "lost", 1), Err: errors.New("boom")})

	assert.Equal(t, []int64{1}, ids(next.Comments))
	assert.Equal(t, models.NewComment(5), next.Draft)
}

func TestState_EditUnknownID(t *testing.T) {
	s := Transition(New(5), Loaded{Comments: []models.Comment{comment(1, "a", 0)}})

	assert.Equal(t, s, s.Edit(42))
}

func ids(comments []models.Comment) []int64 {
	out := make([]int64, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.CommentID)
	}
	return out
}
