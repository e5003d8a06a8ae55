package handlers

import (
	"net/http"

	"github.com/baharkarakas/placeholder-api/internal/api/httpx"
	"github.com/baharkarakas/placeholder-api/internal/api/validate"
	"github.com/baharkarakas/placeholder-api/internal/models"
	"github.com/baharkarakas/placeholder-api/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(us *services.UserService) *AuthHandler {
	return &AuthHandler{Users: us}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the credentials and returns the user. There is no session or
// token; the response is the user itself.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password required")
		return
	}
	u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// createUserReq is shared by /register and POST /users.
type createUserReq struct {
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Address  *models.Address `json:"address"`
	Phone    string          `json:"phone"`
	Website  string          `json:"website"`
	Company  *models.Company `json:"company"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	createUser(h.Users, w, r)
}

func createUser(us *services.UserService, w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if !decode(w, r, &req) {
		return
	}
	if err := validate.NewUser(req.Name, req.Username, req.Email, req.Password, req.Phone, req.Website); err != nil {
		writeErr(w, r, err)
		return
	}
	u, err := us.Create(r.Context(), services.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Phone:    req.Phone,
		Website:  req.Website,
		Company:  req.Company,
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}
