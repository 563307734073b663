package handlers

import (
	"errors"
	"net/http"

	"github.com/aidconnect/backend/auth"
	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/store"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authPayload struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password required")
		return
	}

	token, user, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		// Unknown user and wrong password are deliberately indistinguishable.
		if errors.Is(err, auth.ErrUserNotFound) || errors.Is(err, auth.ErrInvalidPassword) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondStorageError(c, "Error logging in", err)
		return
	}

	c.JSON(http.StatusOK, authPayload{Success: true, Token: token, User: user})
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Username and password required")
		return
	}

	role := models.RoleDonor
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok {
			respondError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		role = parsed
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		respondStorageError(c, "Error registering user", err)
		return
	}

	user, err := h.store.CreateUser(req.Username, hashed, role)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			respondError(c, http.StatusConflict, "Username already taken")
			return
		}
		respondStorageError(c, "Error registering user", err)
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		respondStorageError(c, "Error registering user", err)
		return
	}

	c.JSON(http.StatusOK, authPayload{Success: true, Token: token, User: user})
}
