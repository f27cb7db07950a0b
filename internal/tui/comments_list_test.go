// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loadedList(t *testing.T, m tuiMocks, comments ...models.Comment) *CommentsListModel {
	t.Helper()

	list := NewCommentsListModel(context.Background(), m.services(), testPostID, logger.Nop())
	list.Update(commentsLoadedMsg{post: models.Post{PostID: testPostID, Name: "First post"}, comments: comments})
	require.False(t, list.loading)
	return list
}

func TestCommentsList_LoadFetchesPostAndComments(t *testing.T) {
	m := newTUIMocks(t)
	comments := []models.Comment{{CommentID: 1, PostID: testPostID, Body: "a", CreatedAt: t0}}
	m.comments.EXPECT().Post(gomock.Any(), testPostID).Return(models.Post{PostID: testPostID, Name: "First post"}, nil)
	m.comments.EXPECT().List(gomock.Any(), testPostID).Return(comments, nil)

	list := NewCommentsListModel(context.Background(), m.services(), testPostID, logger.Nop())
	msg := list.cmdLoad()()
	list.Update(msg)

	assert.Equal(t, comments, list.State().Comments)
	view := list.View()
	assert.Contains(t, view, "First post")
	assert.Contains(t, view, "a")
	assert.Contains(t, view, "New comment")
}

func TestCommentsList_LoadError(t *testing.T) {
	m := newTUIMocks(t)
	m.comments.EXPECT().Post(gomock.Any(), testPostID).Return(models.Post{}, service.ErrNotFound)

	list := NewCommentsListModel(context.Background(), m.services(), testPostID, logger.Nop())
	list.Update(list.cmdLoad()())

	assert.NotEmpty(t, list.errMsg)
	assert.Empty(t, list.State().Comments)
}

func TestCommentsList_TypeAndCommit(t *testing.T) {
	m := newTUIMocks(t)
	existing := models.Comment{CommentID: 1, PostID: testPostID, Body: "first", CreatedAt: t0}
	saved := models.Comment{CommentID: 2, PostID: testPostID, Body: "second", CreatedAt: t0.Add(time.Minute)}
	m.comments.EXPECT().Save(gomock.Any(), models.Comment{PostID: testPostID, Body: "second"}).Return(saved, nil)

	list := loadedList(t, m, existing)
	list.Update(typeKeys("second"))
	_, cmd := list.Update(enterKey)
	require.NotNil(t, cmd)

	list.Update(cmd())

	state := list.State()
	assert.Equal(t, []models.Comment{existing, saved}, state.Comments)
	assert.Equal(t, models.NewComment(testPostID), state.Draft)
	assert.Equal(t, "", list.editor.Draft().Body)
	assert.False(t, list.editor.Saving())
	assert.Equal(t, 1, list.idx)
}

func TestCommentsList_SaveFailureKeepsList(t *testing.T) {
	m := newTUIMocks(t)
	existing := models.Comment{CommentID: 1, PostID: testPostID, Body: "first", CreatedAt: t0}
	list := loadedList(t, m, existing)
	list.Update(typeKeys("lost"))

	list.Update(CommentSavedMsg{Comment: list.editor.Draft(), Err: errors.New("boom")})

	assert.Equal(t, []models.Comment{existing}, list.State().Comments)
	assert.Equal(t, "", list.editor.Draft().Body)
	assert.Empty(t, list.errMsg)
}

func TestCommentsList_SaveUnauthenticatedGoesToLogin(t *testing.T) {
	m := newTUIMocks(t)
	list := loadedList(t, m)

	_, cmd := list.Update(CommentSavedMsg{Comment: models.NewComment(testPostID), Err: service.ErrNotAuthenticated})

	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var navigated bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		if nav, ok := c().(NavigateTo); ok && nav.Page == pageLogin {
			navigated = true
		}
	}
	assert.True(t, navigated)
}

func TestCommentsList_EditSelectedComment(t *testing.T) {
	m := newTUIMocks(t)
	first := models.Comment{CommentID: 1, PostID: testPostID, Body: "first", CreatedAt: t0}
	second := models.Comment{CommentID: 2, PostID: testPostID, Body: "second", CreatedAt: t0.Add(time.Minute)}
	edited := second
	edited.Body = "second!"
	m.comments.EXPECT().Save(gomock.Any(), edited).Return(edited, nil)

	list := loadedList(t, m, first, second)
	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	list.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.True(t, list.State().IsEditing())
	assert.Equal(t, "second", list.editor.Draft().Body)
	assert.Contains(t, list.View(), "Editing comment")

	list.Update(typeKeys("!"))
	_, cmd := list.Update(enterKey)
	list.Update(cmd())

	assert.Equal(t, []models.Comment{first, edited}, list.State().Comments)
	assert.False(t, list.State().IsEditing())
}

func TestCommentsList_EscCancelsEdit(t *testing.T) {
	m := newTUIMocks(t)
	list := loadedList(t, m, models.Comment{CommentID: 1, PostID: testPostID, Body: "first", CreatedAt: t0})

	list.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.True(t, list.State().IsEditing())
	list.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, list.State().IsEditing())
	assert.Equal(t, "", list.editor.Draft().Body)
}

func TestCommentsList_SelectionBounds(t *testing.T) {
	m := newTUIMocks(t)
	list := loadedList(t, m,
		models.Comment{CommentID: 1, PostID: testPostID, CreatedAt: t0},
		models.Comment{CommentID: 2, PostID: testPostID, CreatedAt: t0.Add(time.Minute)},
	)

	list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, list.idx)
	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.idx)
}

func TestCommentsList_CopySelected(t *testing.T) {
	var copied string
	original := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = original })

	m := newTUIMocks(t)
	list := loadedList(t, m, models.Comment{CommentID: 1, PostID: testPostID, Body: "copy me", CreatedAt: t0})

	_, cmd := list.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	list.Update(cmd())

	assert.Equal(t, "copy me", copied)
	assert.Equal(t, "copied to clipboard", list.status)

	list.Update(clearStatusMsg{})
	assert.Empty(t, list.status)
}

func TestCommentsList_Logout(t *testing.T) {
	m := newTUIMocks(t)
	m.auth.EXPECT().Logout(gomock.Any()).Return(nil)
	list := loadedList(t, m)

	_, cmd := list.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)
	_, next := list.Update(cmd())

	require.NotNil(t, next)
	assert.Equal(t, NavigateTo{Page: pageLogin}, next())
}
