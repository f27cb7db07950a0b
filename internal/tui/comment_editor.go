// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CommentEditor is a single-line input bound to a draft comment.
//
// Enter commits the draft: the typed text becomes the body and the comment is
// sent to the server through [service.ClientCommentService.Save], which
// creates a draft without an id and updates one that has it. The outcome is
// always delivered as a [CommentSavedMsg]. Every other key edits the text.
// An empty body is committed as is.
type CommentEditor struct {
	ctx      context.Context
	comments service.ClientCommentService
	logger   *logger.Logger

	draft  models.Comment
	input  textinput.Model
	saving bool
}

func NewCommentEditor(ctx context.Context, comments service.ClientCommentService, draft models.Comment, logger *logger.Logger) CommentEditor {
	input := textinput.New()
	input.Placeholder = "write a comment"
	input.Width = 60
	input.SetValue(draft.Body)
	input.Focus()

	return CommentEditor{
		ctx:      ctx,
		comments: comments,
		logger:   logger,
		draft:    draft,
		input:    input,
	}
}

func (e CommentEditor) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the comment the editor is bound to, with the body typed so far.
func (e CommentEditor) Draft() models.Comment {
	draft := e.draft
	draft.Body = e.input.Value()
	return draft
}

func (e CommentEditor) Saving() bool {
	return e.saving
}

func (e CommentEditor) Update(msg tea.Msg) (CommentEditor, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if e.saving {
			return e, nil
		}
		e.saving = true
		return e, e.cmdSave(e.Draft())
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e CommentEditor) View() string {
	label := "New comment"
	if !e.draft.IsNew() {
		label = "Editing comment"
	}
	if e.saving {
		label += " (saving...)"
	}
	return editorStyle.Render(label + "\n" + e.input.View())
}

func (e CommentEditor) cmdSave(draft models.Comment) tea.Cmd {
	ctx := e.ctx
	comments := e.comments
	log := e.logger

	return func() tea.Msg {
		saved, err := comments.Save(ctx, draft)
		if err != nil {
			log.Err(err).
				Int64("post_id", draft.PostID).
				Int64("comment_id", draft.CommentID).
				Msg("comment was not saved")
			return CommentSavedMsg{Comment: draft, Err: err}
		}
		return CommentSavedMsg{Comment: saved}
	}
}
