package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gymcore/gymcore/payment-service/internal/models"
	"github.com/gymcore/gymcore/payment-service/internal/models/dto"
	"github.com/gymcore/gymcore/payment-service/internal/service"
	"gorm.io/gorm"
)

type PaymentService interface {
	RecordCapture(ctx context.Context, capture *dto.Capture) (*models.Payment, error)
	GetPayment(ctx context.Context, transactionID string) (*models.Payment, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /payments/captures
func (h *PaymentHandler) RecordCapture(c *gin.Context) {
	var req dto.Capture
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.Service.RecordCapture(c.Request.Context(), &req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, payment)
	case errors.Is(err, models.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEventPending):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "transactionId": payment.TransactionID})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /payments/:transactionId
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.GetPayment(c.Request.Context(), c.Param("transactionId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payment)
}
