package handlers

import (
	"net/http"

	"github.com/baharkarakas/placeholder-api/internal/api/httpx"
	"github.com/baharkarakas/placeholder-api/internal/api/validate"
	"github.com/baharkarakas/placeholder-api/internal/models"
	"github.com/baharkarakas/placeholder-api/internal/services"
)

type PostHandler struct {
	Posts *services.PostService
}

func NewPostHandler(ps *services.PostService) *PostHandler {
	return &PostHandler{Posts: ps}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.List(r.Context(), pageParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}

type createPostReq struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID *jsonID `json:"userId"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if !decode(w, r, &req) {
		return
	}
	userID := req.UserID.int64Ptr()
	if err := validate.NewPost(req.Title, req.Body, userID); err != nil {
		writeErr(w, r, err)
		return
	}
	p, err := h.Posts.Create(r.Context(), models.NewPost{
		UserID: *userID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrPostNotFound)
		return
	}
	p, err := h.Posts.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

type updatePostReq struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	UserID *jsonID `json:"userId"`
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePostReq
	if !decode(w, r, &req) {
		return
	}
	patch := models.PostPatch{Title: req.Title, Body: req.Body, UserID: req.UserID.int64Ptr()}
	if err := validate.PostPatch(patch.Title, patch.Body); err != nil {
		writeErr(w, r, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrPostNotFound)
		return
	}
	p, err := h.Posts.Update(r.Context(), id, patch)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrPostNotFound)
		return
	}
	if err := h.Posts.Delete(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
