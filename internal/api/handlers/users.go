package handlers

import (
	"net/http"

	"github.com/baharkarakas/placeholder-api/internal/api/httpx"
	"github.com/baharkarakas/placeholder-api/internal/api/validate"
	"github.com/baharkarakas/placeholder-api/internal/models"
	"github.com/baharkarakas/placeholder-api/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(us *services.UserService) *UserHandler {
	return &UserHandler{Users: us}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context(), pageParams(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	createUser(h.Users, w, r)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrUserNotFound)
		return
	}
	u, err := h.Users.Get(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// Update validates lengths before looking the user up, so an over-long field
// is a 400 even for an unknown id.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p models.UserPatch
	if !decode(w, r, &p) {
		return
	}
	if err := validate.UserPatch(p.Name, p.Username, p.Email, p.Phone, p.Website); err != nil {
		writeErr(w, r, err)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrUserNotFound)
		return
	}
	u, err := h.Users.Update(r.Context(), id, p)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// Delete removes the user and every post it owns.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeErr(w, r, services.ErrUserNotFound)
		return
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
