package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/postdeck/postdeck/internal/middleware/metrics"
	"github.com/postdeck/postdeck/internal/setup"
)

// New creates and configures the router for the rendering-layer boundary.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Public.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}))

	h := deps.Handler

	r.Get("/", h.ViewGetHandler)
	r.Get("/health", h.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/tags", h.TagsGetHandler)

	// Query state mutations, one route per UI control
	r.Route("/query", func(r chi.Router) {
		r.Post("/skip", h.SkipPostHandler)
		r.Post("/limit", h.LimitPostHandler)
		r.Post("/sort", h.SortPostHandler)
		r.Post("/tag", h.TagPostHandler)
		r.Post("/search", h.SearchPostHandler)
		r.Post("/search/submit", h.SearchSubmitHandler)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.PostsGetHandler) // URL -> state (external navigation)
		r.Post("/", h.PostCreateHandler)
		r.Route("/{post}", func(r chi.Router) {
			r.Put("/", h.PostUpdateHandler)
			r.Delete("/", h.PostDeleteHandler)
			r.Get("/detail", h.PostDetailHandler)
			r.Get("/comments", h.CommentsGetHandler)
			r.Post("/comments", h.CommentCreateHandler)
			r.Put("/comments/{comment}", h.CommentUpdateHandler)
			r.Delete("/comments/{comment}", h.CommentDeleteHandler)
		})
	})

	r.Route("/dialogs", func(r chi.Router) {
		r.Delete("/", h.DialogCloseHandler)
		r.Post("/add-post", h.DialogAddPostHandler)
		r.Post("/edit-post/{post}", h.DialogEditPostHandler)
		r.Post("/add-comment/{post}", h.DialogAddCommentHandler)
		r.Post("/edit-comment/{post}/{comment}", h.DialogEditCommentHandler)
		r.Post("/author/{user}", h.DialogAuthorHandler)
	})

	return r
}
