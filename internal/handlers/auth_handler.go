package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type AuthHandler struct {
	Users *services.UserService
	Auth  services.AuthService
}

func NewAuthHandler(users *services.UserService, auth services.AuthService) *AuthHandler {
	return &AuthHandler{Users: users, Auth: auth}
}

// @Summary      Log in
// @Description  Checks staff credentials and returns the user identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "Login and password"
// @Success      200          {object}  models.LoginResponse
// @Failure      400          {object}  map[string]string
// @Failure      401          {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the failure is deliberately the same for unknown login and wrong
	// password
	user, err := h.Users.GetByLogin(strings.TrimSpace(req.Login))
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}
	if err := h.Auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		UserID:   user.ID,
		Login:    user.Login,
		FullName: user.FullName,
		Role:     user.Role,
	})
}
