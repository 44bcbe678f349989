package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymcore/gymcore/auth-service/internal/models"
	"github.com/gymcore/gymcore/auth-service/internal/models/dto"
)

type Registrar interface {
	Register(ctx context.Context, req *dto.RegisterUser) (*models.User, error)
}

type AuthHandler struct {
	Registrar Registrar
}

func NewAuthHandler(r Registrar) *AuthHandler {
	return &AuthHandler{Registrar: r}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.Registrar.Register(c.Request.Context(), &req)
	if errors.Is(err, models.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}
