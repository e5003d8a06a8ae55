package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/placeholder-api/internal/api/handlers"
	"github.com/baharkarakas/placeholder-api/internal/metrics"
	"github.com/baharkarakas/placeholder-api/internal/middleware"
	"github.com/baharkarakas/placeholder-api/internal/services"
)

type RouterDeps struct {
	Log     *slog.Logger
	UserSvc *services.UserService
	PostSvc *services.PostService
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RequestLogger(log), middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	r.Get("/", handlers.Docs)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	auth := handlers.NewAuthHandler(d.UserSvc)
	r.Post("/login", auth.Login)
	r.Post("/register", auth.Register)

	posts := handlers.NewPostHandler(d.PostSvc)
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Post("/", posts.Create)
		r.Get("/{id}", posts.Get)
		r.Put("/{id}", posts.Update)
		r.Delete("/{id}", posts.Delete)
	})

	users := handlers.NewUserHandler(d.UserSvc)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", users.List)
		r.Post("/", users.Create)
		r.Get("/{id}", users.Get)
		r.Put("/{id}", users.Update)
		r.Delete("/{id}", users.Delete)
	})

	return r
}
