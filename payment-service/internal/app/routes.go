package app

import handlers "github.com/gymcore/gymcore/payment-service/internal/handlers"

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	app := a.Router.Group("/payments")
	app.POST("/captures", h.RecordCapture)
	app.GET("/:transactionId", h.GetPayment)
}
