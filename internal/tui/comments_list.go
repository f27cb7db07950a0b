package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/commentstate"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 2 * time.Second

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// CommentsListModel is the comment section of one post. It renders every
// persisted comment followed by exactly one editor bound to the current draft.
type CommentsListModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	post    models.Post
	state   commentstate.State
	editor  CommentEditor
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewCommentsListModel(ctx context.Context, services *service.ClientServices, postID int64, logger *logger.Logger) *CommentsListModel {
	state := commentstate.New(postID)
	return &CommentsListModel{
		ctx:      ctx,
		services: services,
		logger:   logger,
		state:    state,
		editor:   NewCommentEditor(ctx, services.CommentService, state.Draft, logger),
		loading:  true,
	}
}

func (m *CommentsListModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.editor.Init())
}

// State returns the comment section state currently displayed.
func (m *CommentsListModel) State() commentstate.State {
	return m.state
}

func (m *CommentsListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.post = msg.post
		m.state = commentstate.Transition(m.state, commentstate.Loaded{Comments: msg.comments})
		m.clampSelection()
		return m, nil

	case CommentSavedMsg:
		m.state = commentstate.Transition(m.state, commentstate.Saved{Comment: msg.Comment, Err: msg.Err})
		cmd := m.resetEditor()
		switch {
		case msg.Err == nil:
			if i := m.indexOf(msg.Comment.CommentID); i >= 0 {
				m.idx = i
			}
		case errors.Is(msg.Err, service.ErrNotAuthenticated):
			return m, tea.Batch(cmd, func() tea.Msg { return NavigateTo{Page: pageLogin} })
		}
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("copy comment to clipboard")
			m.status = "copy failed"
		} else {
			m.status = "copied to clipboard"
		}
		return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("logout")
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }

	case tea.KeyMsg:
		if m.editor.Saving() {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
			return m, nil
		case key.Matches(msg, keys.down):
			if m.idx < len(m.state.Comments)-1 {
				m.idx++
			}
			return m, nil
		case key.Matches(msg, keys.copy):
			if c, ok := m.selected(); ok {
				return m, cmdCopy(c.Body)
			}
			return m, nil
		case key.Matches(msg, keys.edit):
			if c, ok := m.selected(); ok {
				m.state = m.state.Edit(c.CommentID)
				return m, m.resetEditor()
			}
			return m, nil
		case key.Matches(msg, keys.esc):
			if m.state.IsEditing() {
				m.state.Draft = models.NewComment(m.state.PostID)
				return m, m.resetEditor()
			}
			return m, nil
		case key.Matches(msg, keys.reload):
			m.loading = true
			return m, m.cmdLoad()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *CommentsListModel) View() string {
	var b strings.Builder

	if m.post.PostID != 0 {
		b.WriteString(titleStyle.Render(m.post.Name))
		b.WriteString("\n")
		if m.post.Body != "" {
			b.WriteString(fitText(m.post.Body, 200))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading comments...\n")
	case len(m.state.Comments) == 0:
		b.WriteString("No comments yet.\n")
	default:
		for i, c := range m.state.Comments {
			b.WriteString(NewCommentItem(c, i == m.idx).View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("COMMENTS │ post #%d", m.state.PostID)
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: save │ ↑/↓: select │ ctrl+e: edit │ esc: cancel edit │ ctrl+y: copy │ ctrl+r: reload │ ctrl+l: logout")
}

func (m *CommentsListModel) resetEditor() tea.Cmd {
	m.editor = NewCommentEditor(m.ctx, m.services.CommentService, m.state.Draft, m.logger)
	return m.editor.Init()
}

func (m *CommentsListModel) selected() (models.Comment, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Comments) {
		return models.Comment{}, false
	}
	return m.state.Comments[m.idx], true
}

func (m *CommentsListModel) indexOf(commentID int64) int {
	for i, c := range m.state.Comments {
		if c.CommentID == commentID {
			return i
		}
	}
	return -1
}

func (m *CommentsListModel) clampSelection() {
	if m.idx >= len(m.state.Comments) {
		m.idx = len(m.state.Comments) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *CommentsListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	comments := m.services.CommentService
	postID := m.state.PostID

	return func() tea.Msg {
		post, err := comments.Post(ctx, postID)
		if err != nil {
			return commentsLoadedMsg{err: err}
		}
		list, err := comments.List(ctx, postID)
		return commentsLoadedMsg{post: post, comments: list, err: err}
	}
}

func (m *CommentsListModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}
