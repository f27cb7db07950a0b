package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	if err := decodeJSON(r, &post); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.PostService.Create(r.Context(), post)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/posts/%d", created.PostID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) listPostComments(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.writeComments(w, r, id)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PostUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.PostID = id

	post, err := h.services.PostService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
