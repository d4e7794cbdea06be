package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/maabu025/book-hubs/internal/models"
	"github.com/maabu025/book-hubs/internal/service"
	"github.com/maabu025/book-hubs/internal/validator"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Register
// @Description Creates an account with role "user" and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "account data"
// @Success 201 {object} authResponse
// @Failure 400 {object} map[string]any
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	v := validator.New()
	service.ValidateRegister(v, req.Username, req.Email, req.Password)
	if !v.Valid() {
		validationError(w, v.Errors)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			errorJSON(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		serverError(w, err)
		return
	}

	token, err := h.svc.SignToken(u)
	if err != nil {
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Success: true, Token: token, User: toUserResponse(u)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	v := validator.New()
	service.ValidateLogin(v, req.Email, req.Password)
	if !v.Valid() {
		validationError(w, v.Errors)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		serverError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Success: true, Token: token, User: toUserResponse(u)})
}

// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		serverError(w, err)
		return
	}
	if u == nil {
		errorJSON(w, http.StatusUnauthorized, "Not authorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserResponse(u),
	})
}
