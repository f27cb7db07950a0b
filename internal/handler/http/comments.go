package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// commentBody is accepted by the comment write routes.
type commentBody struct {
	PostID int64  `json:"post_id"`
	Body   string `json:"body"`
}

// listComments serves GET /comments?post_id=.
func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	postID, err := parseID(r.URL.Query().Get("post_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeComments(w, r, postID)
}

func (h *Handler) writeComments(w http.ResponseWriter, r *http.Request, postID int64) {
	comments, err := h.services.CommentService.ListForPost(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	utils.WriteJSON(w, comments, http.StatusOK)
}

// createComment stores a comment for post_id. An empty body is stored as is.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	var req commentBody
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.CommentService.Save(r.Context(), models.Comment{PostID: req.PostID, Body: req.Body})
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("comment_id", created.CommentID).Msg("comment created")
	w.Header().Set("Location", fmt.Sprintf("/comments/%d", created.CommentID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, comment, http.StatusOK)
}

// updateComment replaces the body of the comment.
func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req commentBody
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.CommentService.Save(r.Context(), models.Comment{CommentID: id, PostID: req.PostID, Body: req.Body})
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, updated, http.StatusOK)
}
