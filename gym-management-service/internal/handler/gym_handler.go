package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymcore/gymcore/gym-management-service/internal/models"
	"github.com/gymcore/gymcore/gym-management-service/internal/service"
)

type GymService interface {
	CreateGym(ctx context.Context, name string) (*models.Gym, error)
}

type MembershipService interface {
	JoinGym(ctx context.Context, uniqueCode, userID string) (*models.Membership, error)
	GetMembership(ctx context.Context, membershipID string) (*models.Membership, error)
}

type GymHandler struct {
	Gyms        GymService
	Memberships MembershipService
}

func NewGymHandler(gyms GymService, memberships MembershipService) *GymHandler {
	return &GymHandler{Gyms: gyms, Memberships: memberships}
}

type createGymRequest struct {
	Name string `json:"name" binding:"required"`
}

type joinGymRequest struct {
	UniqueCode string `json:"uniqueCode" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// POST /gyms
func (h *GymHandler) CreateGym(c *gin.Context) {
	var req createGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	gym, err := h.Gyms.CreateGym(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// POST /gyms/join
func (h *GymHandler) JoinGym(c *gin.Context) {
	var req joinGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m, err := h.Memberships.JoinGym(c.Request.Context(), req.UniqueCode, req.UserID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// GET /memberships/:id
func (h *GymHandler) GetMembership(c *gin.Context) {
	m, err := h.Memberships.GetMembership(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrGymNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrMembershipNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyMember):
		return http.StatusConflict
	case errors.Is(err, models.ErrGymInactive),
		errors.Is(err, service.ErrInvalidGymName):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
