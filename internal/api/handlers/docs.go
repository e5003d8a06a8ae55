package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/baharkarakas/placeholder-api/internal/api/httpx"
	"github.com/baharkarakas/placeholder-api/internal/middleware"
)

//go:embed templates/docs.html
var templatesFS embed.FS

var docsTmpl = template.Must(template.ParseFS(templatesFS, "templates/docs.html"))

type endpoint struct {
	Method      string
	Path        string
	Description string
	Body        string
}

type section struct {
	Title     string
	Endpoints []endpoint
}

var docsSections = []section{
	{Title: "Authentication", Endpoints: []endpoint{
		{"POST", "/login", "Check credentials and return the user. No token is issued.", `{"email": "...", "password": "..."}`},
		{"POST", "/register", "Create a user. name, username, email and password are required.", `{"name": "...", "username": "...", "email": "...", "password": "...", "address": {...}, "phone": "...", "website": "...", "company": {...}}`},
	}},
	{Title: "Posts", Endpoints: []endpoint{
		{"GET", "/posts?page=1&limit=10", "List posts with their author, ordered by id.", ""},
		{"POST", "/posts", "Create a post. title max 50, body max 300 characters.", `{"title": "...", "body": "...", "userId": 1}`},
		{"GET", "/posts/{id}", "Get one post with its author.", ""},
		{"PUT", "/posts/{id}", "Update any of title, body, userId.", `{"title": "..."}`},
		{"DELETE", "/posts/{id}", "Delete a post.", ""},
	}},
	{Title: "Users", Endpoints: []endpoint{
		{"GET", "/users?page=1&limit=10", "List users, ordered by id.", ""},
		{"POST", "/users", "Create a user; same rules as /register.", ""},
		{"GET", "/users/{id}", "Get one user.", ""},
		{"PUT", "/users/{id}", "Update any of name, username, email, address, phone, website, company.", `{"phone": "..."}`},
		{"DELETE", "/users/{id}", "Delete a user and all of their posts.", ""},
	}},
	{Title: "Utilities", Endpoints: []endpoint{
		{"GET", "/health", "Liveness check.", ""},
		{"GET", "/metrics", "Prometheus metrics.", ""},
	}},
}

type docsPage struct {
	BaseURL  string
	Sections []section
}

// Docs renders the HTML endpoint reference.
func Docs(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := docsTmpl.Execute(w, docsPage{BaseURL: scheme + "://" + r.Host, Sections: docsSections})
	if err != nil {
		middleware.Logger(r.Context()).Error("render docs", "err", err)
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound answers unmatched routes and unsupported methods alike.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Route not found")
}
