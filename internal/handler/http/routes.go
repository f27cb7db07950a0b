package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Location", traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(h.authenticateFromSession)

	router.Get("/api/version", h.getServerVersion)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/sessions/new", h.newSession)
		r.Post("/sessions", h.createSession)
		r.Delete("/sessions", h.destroySession)
		r.Delete("/sessions/{id}", h.destroySession)

		r.Get("/users", h.listUsers)
		r.Post("/users", h.signUp)
		r.Get("/users/{id}", h.getUser)

		r.Get("/blogs", h.listBlogs)
		r.Get("/blogs/{id}", h.getBlog)
		r.Get("/blogs/{id}/posts", h.listBlogPosts)

		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)
		r.Get("/posts/{id}/comments", h.listPostComments)

		r.Get("/comments", h.listComments)
		r.Get("/comments/{id}", h.getComment)
	})

	// routes behind the login guard
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Put("/users/{id}", h.updateUser)
		r.Patch("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)

		r.Post("/blogs", h.createBlog)
		r.Put("/blogs/{id}", h.updateBlog)
		r.Patch("/blogs/{id}", h.updateBlog)
		r.Delete("/blogs/{id}", h.deleteBlog)

		r.Post("/posts", h.createPost)
		r.Put("/posts/{id}", h.updatePost)
		r.Patch("/posts/{id}", h.updatePost)
		r.Delete("/posts/{id}", h.deletePost)

		r.Post("/comments", h.createComment)
		r.Put("/comments/{id}", h.updateComment)
		r.Patch("/comments/{id}", h.updateComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
