package app

import "github.com/gymcore/gymcore/auth-service/internal/handler"

func (a *App) RegisterRoutes(h *handler.AuthHandler) {
	app := a.Router.Group("/auth")
	app.POST("/register", h.Register)
}
