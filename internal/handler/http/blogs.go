package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.services.BlogService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, blogs, http.StatusOK)
}

// createBlog stores a blog owned by the acting user.
func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if err := decodeJSON(r, &blog); err != nil {
		writeError(w, r, err)
		return
	}

	actingUser, _ := utils.ActingUser(r.Context())
	blog.UserID = actingUser.UserID

	created, err := h.services.BlogService.Create(r.Context(), blog)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/blogs/%d", created.BlogID))
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	blog, err := h.services.BlogService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListForBlog(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.BlogUpdate
	if err = decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.BlogID = id

	blog, err := h.services.BlogService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BlogService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
