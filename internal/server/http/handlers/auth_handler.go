package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Registration()); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "User added successfully"})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, token, err := h.facade.Authenticate(c.Request.Context(), req.Credentials())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "success",
		Token:   token,
		User:    dto.NewUserResponse(*profile),
	})
}
