package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

const commentTimeLayout = "2006-01-02 15:04"

// CommentItem renders one persisted comment: body, creation time and a
// divider. It is read-only.
type CommentItem struct {
	comment  models.Comment
	selected bool
}

func NewCommentItem(comment models.Comment, selected bool) CommentItem {
	return CommentItem{comment: comment, selected: selected}
}

func (c CommentItem) View() string {
	var b strings.Builder

	body := c.comment.Body
	if c.selected {
		body = selectedStyle.Render("> " + body)
	} else {
		body = "  " + body
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(timeStyle.Render("  " + formatCommentTime(c.comment.CreatedAt)))
	b.WriteString("\n")
	b.WriteString(uiDivider)

	return b.String()
}

func formatCommentTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(commentTimeLayout)
}
